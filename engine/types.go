package engine

import (
	"math/rand/v2"
	"slices"
)

// Trainer indexes. Starting at 1 keeps the zero value of action contexts
// from silently pointing at a real trainer.
const (
	TRAINER1 = iota + 1
	TRAINER2
)

// BattleState is the full state of a battle in progress. It is a value type:
// Clone gives an independent copy that turns can be played out on without
// committing them.
type BattleState struct {
	TrainerOne Trainer
	TrainerTwo Trainer
	Turn       int

	// The rng seed is stored here directly instead of inside a rand.Rand so
	// that cloned states keep and advance their own copy
	RngSource rand.PCG
}

type Trainer struct {
	Name            string
	Team            []Pokemon
	ActivePokeIndex int

	// Whether the trainer's active pokemon was KOed this turn. Separate from
	// ActivePokemon.Alive() since it persists until the forced switch resolves
	ActiveKOed bool
}

func (t Trainer) Defeated() bool {
	for _, pokemon := range t.Team {
		if pokemon.Alive() {
			return false
		}
	}

	return true
}

func (t Trainer) GetActivePokemon() *Pokemon {
	return t.GetPokemon(t.ActivePokeIndex)
}

func (t Trainer) GetPokemon(index int) *Pokemon {
	return &t.Team[index]
}

func (t Trainer) GetAllAlivePokemon() []*Pokemon {
	alivePokemon := make([]*Pokemon, 0)

	for i, pokemon := range t.Team {
		if pokemon.Hp.Value > 0 {
			alivePokemon = append(alivePokemon, &t.Team[i])
		}
	}

	return alivePokemon
}

func (s *BattleState) GetTrainer(index int) *Trainer {
	if index == TRAINER1 {
		return &s.TrainerOne
	}

	return &s.TrainerTwo
}

// Winner returns the trainer index that has won, or -1 while both trainers
// still have pokemon standing. Trainer one is checked first.
func (s *BattleState) Winner() int {
	if s.TrainerOne.Defeated() {
		return TRAINER2
	}

	if s.TrainerTwo.Defeated() {
		return TRAINER1
	}

	return -1
}

// Clone creates a copy of this state, handling new slice allocation.
func (s BattleState) Clone() BattleState {
	newState := s
	newState.TrainerOne.Team = slices.Clone(s.TrainerOne.Team)
	newState.TrainerTwo.Team = slices.Clone(s.TrainerTwo.Team)

	return newState
}

// CreateRng returns a rand.Rand over the state's seed. Draws advance the
// state's stored seed.
func (s *BattleState) CreateRng() *rand.Rand {
	return rand.New(&s.RngSource)
}

// CreateNewRng creates a rand.Rand over a COPY of the state's seed, so that
// speculative draws (like the auto-battle policy ranking moves) do not
// disturb battle randomness.
func (s *BattleState) CreateNewRng() rand.Rand {
	seedCopy := s.RngSource
	return *rand.New(&seedCopy)
}

// InvertTrainerIndex gives the opposing trainer's index.
func InvertTrainerIndex(initial int) int {
	if initial == TRAINER1 {
		return TRAINER2
	}

	return TRAINER1
}

// getTrainerPair returns the trainer with the given index first and the opposing trainer second.
func getTrainerPair(state *BattleState, activeTrainerIndex int) (*Trainer, *Trainer) {
	return state.GetTrainer(activeTrainerIndex), state.GetTrainer(InvertTrainerIndex(activeTrainerIndex))
}
