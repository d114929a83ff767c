package engine

import (
	"math/rand/v2"
	"strings"
)

func RandomTeam() []Pokemon {
	team := make([]Pokemon, 6)

	for i := range 6 {
		rndBasePkm := GlobalData.GetRandomPokemon(internalRng)
		rndPkm := NewPokeBuilder(&rndBasePkm, internalRng).
			SetRandomEvs().
			SetRandomIvs().
			SetRandomLevel(80, 100).
			SetRandomNature().
			SetRandomMoves(GlobalData.GetFullMovesForPokemon(rndBasePkm.Name)).
			SetRandomAbility(GlobalData.GetPokemonAbilities(strings.ToLower(rndBasePkm.Name))).
			SetRandomItem(GlobalData.Items).
			Build()
		team[i] = rndPkm
	}

	return team
}

// NewState builds a fresh battle state over two named teams. The same teams
// and seed always give the same battle.
func NewState(trainerOneName string, teamOne []Pokemon, trainerTwoName string, teamTwo []Pokemon, seed rand.PCG) BattleState {
	// Make sure pokemon are inited correctly
	for i, p := range teamOne {
		initPokemon := p
		initPokemon.Init()

		teamOne[i] = initPokemon
	}

	for i, p := range teamTwo {
		initPokemon := p
		initPokemon.Init()

		teamTwo[i] = initPokemon
	}

	trainerOne := Trainer{
		Name: trainerOneName,
		Team: teamOne,
	}
	trainerTwo := Trainer{
		Name: trainerTwoName,
		Team: teamTwo,
	}

	// Turn counting starts at 1 and moves after each fully resolved turn
	return BattleState{
		TrainerOne: trainerOne,
		TrainerTwo: trainerTwo,
		Turn:       1,
		RngSource:  seed,
	}
}
