package engine

import (
	"errors"
	"testing"
)

func TestLoadPokemon(t *testing.T) {
	csv := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"1,Bulbasaur,Grass,Poison,45,49,49,65,65,45\n" +
		"4,Charmander,Fire,,39,52,43,60,50,65\n"

	pokemon, err := LoadPokemon([]byte(csv))
	if err != nil {
		t.Fatal(err)
	}

	if len(pokemon) != 2 {
		t.Fatalf("expected 2 pokemon, got %d", len(pokemon))
	}

	bulbasaur := pokemon[0]
	if bulbasaur.Name != "Bulbasaur" || bulbasaur.PokedexNumber != 1 {
		t.Fatalf("bad first row: %+v", bulbasaur)
	}

	if bulbasaur.Type1 != &TYPE_GRASS || bulbasaur.Type2 != &TYPE_POISON {
		t.Fatalf("bulbasaur types wrong")
	}

	if pokemon[1].Type2 != nil {
		t.Fatalf("mono-typed pokemon should have no second type")
	}
}

func TestLoadPokemonWrongColumnCount(t *testing.T) {
	csv := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"1,Bulbasaur,Grass,Poison,45,49,49,65,65,45\n" +
		"4;Charmander;Fire\n"

	_, err := LoadPokemon([]byte(csv))
	if err == nil {
		t.Fatalf("expected a load error")
	}

	var loadErr DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected a DataLoadError, got %T", err)
	}
}

func TestLoadPokemonBadStat(t *testing.T) {
	csv := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"1,Bulbasaur,Grass,Poison,lots,49,49,65,65,45\n"

	_, err := LoadPokemon([]byte(csv))

	var loadErr DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected a DataLoadError, got %T", err)
	}

	if loadErr.Row != 1 {
		t.Fatalf("error should point at row 1, got row %d", loadErr.Row)
	}
}

func TestLoadPokemonUnknownType(t *testing.T) {
	csv := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"1,Bulbasaur,Leaf,,45,49,49,65,65,45\n"

	_, err := LoadPokemon([]byte(csv))
	if !errors.Is(err, errUnknownType) {
		t.Fatalf("expected an unknown type error, got %v", err)
	}
}

func TestLoadMovesBadJson(t *testing.T) {
	_, err := LoadMoves([]byte("{not json"), []byte("{}"))

	var loadErr DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected a DataLoadError, got %T", err)
	}

	if loadErr.File != "moves.json" {
		t.Fatalf("error should name the bad file, got %q", loadErr.File)
	}
}

func TestGlobalDataLookups(t *testing.T) {
	if GlobalData.GetMove("tackle") == nil {
		t.Fatalf("tackle should exist in move data")
	}

	if GlobalData.GetMove("not-a-move") != nil {
		t.Fatalf("unknown move names should give nil")
	}

	if GlobalData.GetPokemonByName("BULBASAUR") == nil {
		t.Fatalf("pokemon lookup by name should ignore case")
	}

	if GlobalData.GetPokemonByPokedex(9999) != nil {
		t.Fatalf("unknown pokedex numbers should give nil")
	}

	moves := GlobalData.GetFullMovesForPokemon("bulbasaur")
	if len(moves) == 0 {
		t.Fatalf("bulbasaur should have a learnset")
	}

	abilities := GlobalData.GetPokemonAbilities("bulbasaur")
	if len(abilities) == 0 {
		t.Fatalf("bulbasaur should have abilities")
	}
}
