package engine

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io/fs"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

var GlobalData = pokemonDb{}

type pokemonDb struct {
	moves     MoveRegistry
	Pokemon   []BasePokemon
	abilities AbilityRegistry
	Items     []string
}

type MoveRegistry struct {
	// Moves is a map of move names to full move info
	Moves map[string]Move
	// LearnedPokemonMoves is a map that turns Pokemon names into lists of move names
	LearnedPokemonMoves map[string][]string
}

type AbilityRegistry struct {
	PokemonAbilities map[string][]Ability
}

func SetGlobalMoves(mr MoveRegistry) {
	GlobalData.moves = mr
}

func SetGlobalAbilities(ar AbilityRegistry) {
	GlobalData.abilities = ar
}

func (db pokemonDb) GetMove(name string) *Move {
	move, ok := db.moves.Moves[name]
	if ok {
		return &move
	} else {
		return nil
	}
}

func (db pokemonDb) GetFullMovesForPokemon(pokemonName string) []Move {
	pokemonLowerName := strings.ToLower(pokemonName)
	moves := db.moves.LearnedPokemonMoves[pokemonLowerName]
	movesFull := make([]Move, 0, len(moves))

	for _, moveName := range moves {
		optionalMove := db.GetMove(moveName)
		if optionalMove != nil {
			movesFull = append(movesFull, *optionalMove)
		}
	}

	return movesFull
}

func (db pokemonDb) GetPokemonByPokedex(pkdNumber int) *BasePokemon {
	for _, pkm := range db.Pokemon {
		if pkm.PokedexNumber == uint(pkdNumber) {
			return &pkm
		}
	}

	return nil
}

func (db pokemonDb) GetPokemonByName(pkmName string) *BasePokemon {
	for _, pkm := range db.Pokemon {
		if strings.EqualFold(pkm.Name, pkmName) {
			return &pkm
		}
	}

	return nil
}

func (db pokemonDb) GetRandomPokemon(rng *rand.Rand) BasePokemon {
	pkmIndex := rng.IntN(len(db.Pokemon))

	return db.Pokemon[pkmIndex]
}

func (db pokemonDb) GetPokemonAbilities(name string) []Ability {
	pokemonLowerName := strings.ToLower(name)

	return db.abilities.PokemonAbilities[pokemonLowerName]
}

// LoadPokemon takes in the bytes of a csv file with the columns
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
// in that order, with a header row. Type2 may be empty for mono-typed pokemon.
func LoadPokemon(fileBytes []byte) ([]BasePokemon, error) {
	const fileName = "pokemon.csv"

	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.Read()
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, DataLoadError{File: fileName, Err: err}
	}

	pokemonList := make([]BasePokemon, 0, len(rows))

	internalLogger.Info("Loading Pokemon Data")

	for i, row := range rows {
		// header is row 0, the first data row is row 1
		rowNumber := i + 1

		if len(row) != 10 {
			return nil, DataLoadError{File: fileName, Row: rowNumber, Err: errWrongColumnCount}
		}

		stats := make([]uint, 0, 7)
		for _, col := range []int{0, 4, 5, 6, 7, 8, 9} {
			value, err := strconv.ParseInt(row[col], 10, 16)
			if err != nil {
				return nil, DataLoadError{File: fileName, Row: rowNumber, Err: err}
			}

			stats = append(stats, uint(value))
		}

		name := row[1]
		type1Name := row[2]
		type2Name := row[3]

		type1, ok := TYPE_MAP[type1Name]
		if !ok {
			return nil, DataLoadError{File: fileName, Row: rowNumber, Err: errUnknownType}
		}

		var type2 *PokemonType = nil
		if type2Name != "" {
			type2, ok = TYPE_MAP[type2Name]
			if !ok {
				return nil, DataLoadError{File: fileName, Row: rowNumber, Err: errUnknownType}
			}
		}

		newPokemon := BasePokemon{
			PokedexNumber: stats[0],
			Name:          name,
			Type1:         type1,
			Type2:         type2,
			Hp:            stats[1],
			Attack:        stats[2],
			Def:           stats[3],
			SpAttack:      stats[4],
			SpDef:         stats[5],
			Speed:         stats[6],
		}

		internalLogger.WithName("load_pokemon").V(1).Info("loaded pokemon", "pokedex", newPokemon.PokedexNumber, "name", name)

		pokemonList = append(pokemonList, newPokemon)
	}

	internalLogger.Info("Loaded pokemon", "count", len(pokemonList))

	return pokemonList, nil
}

// LoadMoves takes in json that lists out move information and json that maps pokemon names to what moves they can learn
func LoadMoves(moveBytes []byte, moveMapBytes []byte) (MoveRegistry, error) {
	internalLogger.Info("Loading Move Data")

	parsedMoves := make([]Move, 0, 1000)
	moveMap := make(map[string][]string)
	moveRegistry := MoveRegistry{Moves: make(map[string]Move)}

	if err := json.Unmarshal(moveBytes, &parsedMoves); err != nil {
		return moveRegistry, DataLoadError{File: "moves.json", Err: err}
	}
	if err := json.Unmarshal(moveMapBytes, &moveMap); err != nil {
		return moveRegistry, DataLoadError{File: "movesMap.json", Err: err}
	}

	// convert move slice to move name -> move map
	for _, parsedMove := range parsedMoves {
		moveRegistry.Moves[parsedMove.Name] = parsedMove
	}

	moveRegistry.LearnedPokemonMoves = moveMap

	internalLogger.Info("Loaded moves", "count", len(moveRegistry.Moves), "pokemon_count", len(moveRegistry.LearnedPokemonMoves))

	return moveRegistry, nil
}

// LoadAbilities takes in json that maps pokemon names to their possible abilities
func LoadAbilities(abilitiesMapBytes []byte) (AbilityRegistry, error) {
	abilityMap := make(map[string][]Ability)

	if err := json.Unmarshal(abilitiesMapBytes, &abilityMap); err != nil {
		return AbilityRegistry{}, DataLoadError{File: "abilities.json", Err: err}
	}

	internalLogger.Info("Loaded abilities", "pokemon_count", len(abilityMap))

	return AbilityRegistry{PokemonAbilities: abilityMap}, nil
}

func LoadItems(itemBytes []byte) ([]string, error) {
	items := make([]string, 0)
	if err := json.Unmarshal(itemBytes, &items); err != nil {
		return items, DataLoadError{File: "items.json", Err: err}
	}

	internalLogger.Info("Loaded items", "count", len(items))
	return items, nil
}

// DefaultLoader fills the global registry from a data/ directory in files.
// The loads run concurrently and every failure is reported, not just the first.
func DefaultLoader(files fs.FS) []error {
	var wg sync.WaitGroup
	wg.Add(4)
	errChan := make(chan error, 8)

	go func() {
		defer wg.Done()

		pokemonBytes, err := fs.ReadFile(files, "data/pokemon.csv")
		if err != nil {
			errChan <- err
			return
		}

		pokemon, err := LoadPokemon(pokemonBytes)
		if err != nil {
			errChan <- err
			return
		}

		GlobalData.Pokemon = pokemon
	}()
	go func() {
		defer wg.Done()

		moveBytes, err := fs.ReadFile(files, "data/moves.json")
		if err != nil {
			errChan <- err
			return
		}

		moveMapBytes, err := fs.ReadFile(files, "data/movesMap.json")
		if err != nil {
			errChan <- err
			return
		}

		moves, err := LoadMoves(moveBytes, moveMapBytes)
		if err != nil {
			errChan <- err
			return
		}

		SetGlobalMoves(moves)
	}()
	go func() {
		defer wg.Done()

		abilityBytes, err := fs.ReadFile(files, "data/abilities.json")
		if err != nil {
			errChan <- err
			return
		}

		abilities, err := LoadAbilities(abilityBytes)
		if err != nil {
			errChan <- err
			return
		}

		SetGlobalAbilities(abilities)
	}()
	go func() {
		defer wg.Done()

		itemBytes, err := fs.ReadFile(files, "data/items.json")
		if err != nil {
			errChan <- err
			return
		}

		items, err := LoadItems(itemBytes)
		if err != nil {
			errChan <- err
			return
		}

		GlobalData.Items = items
	}()

	wg.Wait()
	close(errChan)

	errs := make([]error, 0)
	for err := range errChan {
		errs = append(errs, err)
	}

	return errs
}
