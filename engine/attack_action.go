package engine

import (
	"math"

	"github.com/go-logr/logr"
)

var attackEventLogger = func() logr.Logger {
	return internalLogger.WithName("attack_event")
}

type AttackAction struct {
	Ctx ActionCtx

	AttackerMove int
}

func NewAttackAction(attacker int, attackMove int) AttackAction {
	return AttackAction{
		Ctx:          NewActionCtx(attacker),
		AttackerMove: attackMove,
	}
}

func (a AttackAction) UpdateState(state BattleState) []BattleEvent {
	return []BattleEvent{AttackEvent{AttackerID: a.Ctx.TrainerID, MoveID: a.AttackerMove}}
}

func (a AttackAction) GetCtx() ActionCtx {
	return a.Ctx
}

// attackHandlerContext bundles what every move-category handler needs.
type attackHandlerContext struct {
	state    BattleState
	attacker int
	defender int
	move     Move
}

func newAttackHandlerContext(state BattleState, attacker int, defender int, move Move) attackHandlerContext {
	return attackHandlerContext{state, attacker, defender, move}
}

func (ctx attackHandlerContext) attackPokemon() Pokemon {
	return *ctx.state.GetTrainer(ctx.attacker).GetActivePokemon()
}

func (ctx attackHandlerContext) defPokemon() Pokemon {
	return *ctx.state.GetTrainer(ctx.defender).GetActivePokemon()
}

func damageMoveHandler(ctx attackHandlerContext) []BattleEvent {
	events := make([]BattleEvent, 0)
	crit := false

	attackPokemon := ctx.attackPokemon()
	defPokemon := ctx.defPokemon()

	rng := ctx.state.CreateRng()

	critChance := attackPokemon.CritChance()
	if ctx.move.Meta.CritRateBonus > 0 {
		critChance = critStageMultipliers[min(4, 1+ctx.move.Meta.CritRateBonus)]
	}

	if rng.Float32() < critChance {
		crit = true
		attackEventLogger().Info("attack crit", "chance", critChance)
	}

	effectiveness := defPokemon.DefenseEffectiveness(GetAttackTypeMapping(ctx.move.Type))

	damage := Damage(attackPokemon, defPokemon, ctx.move, crit, rng)

	holdOnMessage := ""

	if defPokemon.Ability.Name == ABILITY_STURDY {
		if damage >= defPokemon.Hp.Value && defPokemon.Hp.Value == defPokemon.MaxHp {
			damage = defPokemon.MaxHp - 1
			events = append(events, SimpleAbilityActivationEvent(&ctx.state, ctx.defender))
			holdOnMessage = "%s held on!"
		}
	} else if defPokemon.HeldItem() == ITEM_FOCUS_SASH {
		if damage >= defPokemon.Hp.Value && defPokemon.Hp.Value == defPokemon.MaxHp {
			damage = defPokemon.MaxHp - 1
			events = append(events, ItemConsumedEvent{TrainerIndex: ctx.defender})
			holdOnMessage = "%s hung on using its focus sash!"
		}
	}

	events = append(events, DamageEvent{TrainerIndex: ctx.defender, Damage: damage, Crit: crit})

	if holdOnMessage != "" {
		events = append(events, NewFmtMessageEvent(holdOnMessage, defPokemon.Name()))
	}

	attackEventLogger().Info("attack event", "attacker", attackPokemon.Name(), "defender", defPokemon.Name(), "damage", damage)

	if ctx.move.Meta.Drain > 0 {
		cappedDamage := math.Min(float64(defPokemon.Hp.Value), float64(damage))

		drainPercent := float32(ctx.move.Meta.Drain) / float32(100)
		drainedHealth := uint(float32(cappedDamage) * drainPercent)

		events = append(events, HealEvent{Heal: drainedHealth, TrainerIndex: ctx.attacker})

		attackEventLogger().Info("drain", "percent", drainPercent, "drained_health", drainedHealth)
	}

	// Recoil is negative drain
	if ctx.move.Meta.Drain < 0 {
		recoilPercent := float32(ctx.move.Meta.Drain) / 100
		selfDamage := float32(attackPokemon.MaxHp) * recoilPercent

		events = append(events, NewFmtMessageEvent("%s took %d%% recoil damage!", attackPokemon.Name(), int(math.Abs(float64(ctx.move.Meta.Drain)))))
		events = append(events, DamageEvent{Damage: uint(selfDamage * -1), TrainerIndex: ctx.attacker, SuppressMessage: true})

		attackEventLogger().Info("recoil", "recoil_percent", recoilPercent, "self_damage", selfDamage)
	}

	// Life orb recoil comes after the hit lands
	if attackPokemon.HeldItem() == ITEM_LIFE_ORB && damage > 0 {
		orbDamage := uint(math.Ceil(float64(attackPokemon.MaxHp) / 10))
		events = append(events, NewFmtMessageEvent("%s was hurt by its life orb!", attackPokemon.Name()))
		events = append(events, DamageEvent{Damage: orbDamage, TrainerIndex: ctx.attacker, SuppressMessage: true})
	}

	effectivenessText := ""

	if effectiveness == 0 {
		effectivenessText = "It had no effect"
	} else if effectiveness >= 2 {
		effectivenessText = "It was super effective!"
	} else if effectiveness <= 0.5 {
		effectivenessText = "It was not very effective"
	}

	if effectivenessText != "" {
		events = append(events, NewMessageEvent(effectivenessText))
	}

	return events
}

func ailmentHandler(ctx attackHandlerContext) []BattleEvent {
	defPokemon := ctx.defPokemon()

	ailment, ok := STATUS_NAME_MAP[ctx.move.Meta.Ailment]
	if !ok || defPokemon.Status != STATUS_NONE {
		return nil
	}

	rng := ctx.state.CreateRng()

	ailmentCheck := rng.IntN(100)
	ailmentChance := ctx.move.Meta.AilmentChance

	// a chance of 0 means the ailment always applies (as with toxic or thunder-wave)
	if ailmentChance == 0 {
		ailmentChance = 100
	}

	if ailmentCheck < ailmentChance {
		attackEventLogger().Info("ailment check succeeded", "chance", ailmentChance, "ailment_check", ailmentCheck)

		return []BattleEvent{AilmentEvent{TrainerIndex: ctx.defender, Ailment: ailment}}
	}

	attackEventLogger().Info("ailment check failed", "ailment_chance", ailmentChance, "ailment_check", ailmentCheck)

	return nil
}

// healHandler creates a heal event for the attacker.
func healHandler(ctx attackHandlerContext) BattleEvent {
	healPercent := float64(ctx.move.Meta.Healing) / 100
	return HealPercEvent{TrainerIndex: ctx.attacker, HealPerc: healPercent}
}
