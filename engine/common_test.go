package engine

import (
	"fmt"
	"math/rand/v2"
	"os"
)

func init() {
	if errs := DefaultLoader(os.DirFS("..")); len(errs) != 0 {
		panic(fmt.Sprintf("failed to load battle data for tests: %v", errs))
	}
}

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(4025, 1204))
}

func testSeed() rand.PCG {
	return *rand.NewPCG(4025, 1204)
}

func getDummyPokemon() Pokemon {
	return NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), testRng()).Build()
}

func getDummyPokemonWithAbility(ability string) Pokemon {
	pkm := getDummyPokemon()
	pkm.Ability.Name = ability

	return pkm
}

func getSimpleState(trainerOnePkm Pokemon, trainerTwoPkm Pokemon) BattleState {
	return NewState("Ash", []Pokemon{trainerOnePkm}, "Gary", []Pokemon{trainerTwoPkm}, testSeed())
}
