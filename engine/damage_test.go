package engine

import (
	"testing"
)

const iterCount = 1000

func levelHundredBulbasaur() Pokemon {
	return NewPokeBuilder(GlobalData.GetPokemonByName("bulbasaur"), testRng()).SetPerfectIvs().SetLevel(100).Build()
}

func TestDamage(t *testing.T) {
	rng := testRng()

	for range iterCount {
		pokemon := levelHundredBulbasaur()
		enemyPokemon := levelHundredBulbasaur()

		pokemon.Moves[0] = *GlobalData.GetMove("tackle")

		damage := Damage(pokemon, enemyPokemon, pokemon.Moves[0], false, rng)

		checkDamageRange(t, damage, 29, 35)
	}
}

func TestCritDamage(t *testing.T) {
	rng := testRng()

	for range iterCount {
		pokemon := levelHundredBulbasaur()
		enemyPokemon := levelHundredBulbasaur()

		pokemon.Moves[0] = *GlobalData.GetMove("tackle")

		damage := Damage(pokemon, enemyPokemon, pokemon.Moves[0], true, rng)

		checkDamageRange(t, damage, 44, 52)
	}
}

func TestBurnHalvesPhysicalDamage(t *testing.T) {
	rng := testRng()

	for range iterCount {
		pokemon := levelHundredBulbasaur()
		enemyPokemon := levelHundredBulbasaur()

		pokemon.Moves[0] = *GlobalData.GetMove("tackle")
		pokemon.Status = STATUS_BURN

		damage := Damage(pokemon, enemyPokemon, pokemon.Moves[0], false, rng)

		checkDamageRange(t, damage, 14, 17)
	}
}

func TestTypeImmunity(t *testing.T) {
	pokemon := levelHundredBulbasaur()
	enemyPokemon := NewPokeBuilder(GlobalData.GetPokemonByName("gastly"), testRng()).SetLevel(100).Build()

	tackle := *GlobalData.GetMove("tackle")

	if damage := Damage(pokemon, enemyPokemon, tackle, false, testRng()); damage != 0 {
		t.Fatalf("normal attack should not damage a ghost type: got %d", damage)
	}
}

func TestLevitateGroundImmunity(t *testing.T) {
	pokemon := NewPokeBuilder(GlobalData.GetPokemonByName("geodude"), testRng()).SetLevel(100).Build()
	enemyPokemon := getDummyPokemonWithAbility(ABILITY_LEVITATE)

	earthquake := *GlobalData.GetMove("earthquake")

	if damage := Damage(pokemon, enemyPokemon, earthquake, false, testRng()); damage != 0 {
		t.Fatalf("ground move should not damage a pokemon with levitate: got %d", damage)
	}
}

func TestStatusMoveDealsNoDamage(t *testing.T) {
	pokemon := levelHundredBulbasaur()
	enemyPokemon := levelHundredBulbasaur()

	growl := *GlobalData.GetMove("growl")

	if damage := Damage(pokemon, enemyPokemon, growl, false, testRng()); damage != 0 {
		t.Fatalf("status move dealt damage: got %d", damage)
	}
}

func TestMinimumDamage(t *testing.T) {
	pokemon := NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), testRng()).SetLevel(1).Build()
	enemyPokemon := NewPokeBuilder(GlobalData.GetPokemonByName("snorlax"), testRng()).SetPerfectIvs().SetLevel(100).Build()

	tackle := *GlobalData.GetMove("tackle")

	if damage := Damage(pokemon, enemyPokemon, tackle, false, testRng()); damage < 1 {
		t.Fatalf("damaging move that hits should deal at least 1 damage: got %d", damage)
	}
}

func checkDamageRange(t *testing.T, damage uint, low uint, high uint) {
	t.Helper()

	if damage < low || damage > high {
		t.Fatalf("outside damage range: should be between %d - %d, got %d", low, high, damage)
	}
}

func TestLowHealthAbilityBonusAppliedOnce(t *testing.T) {
	attacker := buildWithMoves("bulbasaur", 50, "vine-whip")
	attacker.Ability.Name = ABILITY_OVERGROW
	defender := getDummyPokemon()

	vineWhip := attacker.Moves[0]

	fullHealthDamage := Damage(attacker, defender, vineWhip, false, testRng())

	attacker.Hp.Value = attacker.MaxHp / 4
	lowHealthDamage := Damage(attacker, defender, vineWhip, false, testRng())

	// identical rolls, so the boosted hit is exactly one 1.5x step up
	expected := uint(pokeRound(float64(fullHealthDamage) * 1.5))
	if lowHealthDamage != expected {
		t.Fatalf("low health boost off: got %d from a base of %d, expected %d", lowHealthDamage, fullHealthDamage, expected)
	}
}
