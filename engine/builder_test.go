package engine

import "testing"

func TestPerfectIvs(t *testing.T) {
	pkm := NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), testRng()).SetPerfectIvs().Build()

	ivs := []uint{pkm.Hp.Iv, pkm.Attack.Iv, pkm.Def.Iv, pkm.SpAttack.Iv, pkm.SpDef.Iv, pkm.RawSpeed.Iv}
	for _, iv := range ivs {
		if iv != MAX_IV {
			t.Fatalf("expected all IVs to be %d, got %v", MAX_IV, ivs)
		}
	}
}

func TestRandomEvSpread(t *testing.T) {
	for range 100 {
		pkm := NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), testRng()).SetRandomEvs().Build()

		evs := []uint{pkm.Hp.Ev, pkm.Attack.Ev, pkm.Def.Ev, pkm.SpAttack.Ev, pkm.SpDef.Ev, pkm.RawSpeed.Ev}

		total := uint(0)
		for _, ev := range evs {
			if ev > MAX_EV {
				t.Fatalf("single stat over the EV cap: %v", evs)
			}

			total += ev
		}

		if total > MAX_TOTAL_EV {
			t.Fatalf("EV total over %d: got %d", MAX_TOTAL_EV, total)
		}
	}
}

func TestRandomLevelStaysInRange(t *testing.T) {
	rng := testRng()

	for range 100 {
		pkm := NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), rng).SetRandomLevel(80, 100).Build()

		if pkm.Level < 80 || pkm.Level > 100 {
			t.Fatalf("level outside range: %d", pkm.Level)
		}
	}
}

func TestBuildInitsBattleState(t *testing.T) {
	base := GlobalData.GetPokemonByName("bulbasaur")
	moves := GlobalData.GetFullMovesForPokemon("bulbasaur")

	pkm := NewPokeBuilder(base, testRng()).
		SetLevel(50).
		SetRandomMoves(moves).
		Build()

	if pkm.Hp.Value != pkm.MaxHp {
		t.Fatalf("a fresh pokemon should be at full health: %d/%d", pkm.Hp.Value, pkm.MaxHp)
	}

	for i, move := range pkm.Moves {
		if move.IsNil() {
			continue
		}

		if pkm.BattleMoves[i].PP != move.PP {
			t.Fatalf("move slot %d should start with full pp", i)
		}
	}
}

func TestHpClamps(t *testing.T) {
	pkm := levelHundredBulbasaur()

	pkm.Damage(pkm.MaxHp * 2)
	if pkm.Hp.Value != 0 {
		t.Fatalf("overkill damage should clamp hp to 0: got %d", pkm.Hp.Value)
	}

	if pkm.Alive() {
		t.Fatalf("a pokemon at 0 hp is fainted")
	}

	pkm.Heal(pkm.MaxHp * 2)
	if pkm.Hp.Value != pkm.MaxHp {
		t.Fatalf("overheal should clamp hp to max: got %d/%d", pkm.Hp.Value, pkm.MaxHp)
	}
}
