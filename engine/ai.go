package engine

import "fmt"

// BestAction determines the best action for a trainer. A trainer that is not
// defeated always has a legal action, so running out of options here is a bug
// and comes back as an ErrInternal error.
func BestAction(state *BattleState, trainerID int) (Action, error) {
	trainer, opposingTrainer := getTrainerPair(state, trainerID)

	if !trainer.GetActivePokemon().Alive() {
		// Switch on death
		for i, pokemon := range trainer.Team {
			if pokemon.Alive() {
				return NewSwitchAction(state, trainerID, i), nil
			}
		}

		return nil, fmt.Errorf("%s has no living pokemon to send in: %w", trainer.Name, ErrInternal)
	}

	trainerPokemon := trainer.GetActivePokemon()
	opposingPokemon := opposingTrainer.GetActivePokemon()

	rngCopy := state.CreateNewRng()

	hasAnyMoves := false
	for i, move := range trainerPokemon.Moves {
		if !move.IsNil() && trainerPokemon.BattleMoves[i].PP > 0 {
			hasAnyMoves = true
			break
		}
	}

	if !hasAnyMoves {
		// Out of pp everywhere means struggle
		for _, move := range trainerPokemon.Moves {
			if !move.IsNil() {
				return NewAttackAction(trainerID, STRUGGLE_MOVE_ID), nil
			}
		}

		return nil, fmt.Errorf("%s has no moves at all: %w", trainerPokemon.Name(), ErrInternal)
	}

	bestMoveIndex := -1

	if trainerPokemon.Speed() < opposingPokemon.Speed() {
		bestMoveIndex = bestSlowingMove(state, trainerID)
	} else {
		bestMoveIndex = bestAttackingMove(state, trainerID)
	}

	bestMove := Move{}
	if bestMoveIndex != -1 && bestMoveIndex < len(trainerPokemon.Moves) {
		bestMove = trainerPokemon.Moves[bestMoveIndex]
	}

	if bestMove.IsNil() {
		// Randomly select a usable move if no best move is available
		for {
			rMoveIndex := rngCopy.IntN(len(trainerPokemon.Moves))
			randMove := trainerPokemon.Moves[rMoveIndex]
			if !randMove.IsNil() && trainerPokemon.BattleMoves[rMoveIndex].PP > 0 {
				return NewAttackAction(trainerID, rMoveIndex), nil
			}
		}
	}

	return NewAttackAction(trainerID, bestMoveIndex), nil
}

func bestAttackingMove(state *BattleState, trainerID int) int {
	trainer, opposingTrainer := getTrainerPair(state, trainerID)

	trainerPokemon := trainer.GetActivePokemon()
	opposingPokemon := opposingTrainer.GetActivePokemon()

	bestMoveIndex := -1
	var bestMoveDamage uint = 0

	for i, move := range trainerPokemon.Moves {
		if move.IsNil() || trainerPokemon.BattleMoves[i].PP <= 0 {
			continue
		}

		rng := state.CreateNewRng()

		// assume no crits
		moveDamage := Damage(*trainerPokemon, *opposingPokemon, move, false, &rng)
		if moveDamage > bestMoveDamage {
			bestMoveIndex = i
			bestMoveDamage = moveDamage
		}
	}

	return bestMoveIndex
}

func bestSlowingMove(state *BattleState, trainerID int) int {
	trainer, opposingTrainer := getTrainerPair(state, trainerID)

	trainerPokemon := trainer.GetActivePokemon()
	opposingPokemon := opposingTrainer.GetActivePokemon()

	bestSlowChance := 0
	bestMove := -1

	for i, move := range trainerPokemon.Moves {
		if move.IsNil() || trainerPokemon.BattleMoves[i].PP <= 0 {
			continue
		}

		moveCanSlow := false
		for _, statChange := range move.StatChanges {
			if statChange.StatName == STAT_SPEED && statChange.Change < 0 {
				moveCanSlow = true
			}
		}

		if moveCanSlow {
			chance := move.Accuracy
			if chance > bestSlowChance {
				bestMove = i
				bestSlowChance = chance
			}
		} else if move.Meta.Ailment == "paralysis" && opposingPokemon.Status == STATUS_NONE { // only consider para if it can land
			chance := move.Meta.AilmentChance
			if chance == 0 {
				chance = 100
			}

			if chance > bestSlowChance {
				bestMove = i
				bestSlowChance = chance
			}
		}
	}

	return bestMove
}
