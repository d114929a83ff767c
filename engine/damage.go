package engine

import (
	"math"
	"math/rand/v2"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// Damage calculates the damage an attacking pokemon should do to a defending pokemon
func Damage(attacker Pokemon, defendent Pokemon, move Move, crit bool, rng *rand.Rand) uint {
	attackerLevel := attacker.Level
	var baseA, baseD uint
	var a, d uint
	var aBoost, dBoost int

	// Determine damage type
	switch move.DamageClass {
	case DAMAGETYPE_PHYSICAL:
		baseA = attacker.Attack.RawValue
		a = uint(attacker.Attack.CalcValue())
		aBoost = attacker.Attack.Stage

		baseD = defendent.Def.RawValue
		d = uint(defendent.Def.CalcValue())
		dBoost = defendent.Def.Stage
	case DAMAGETYPE_SPECIAL:
		baseA = attacker.SpAttack.RawValue
		a = uint(attacker.SpAttack.CalcValue())
		aBoost = attacker.SpAttack.Stage

		baseD = defendent.SpDef.RawValue
		d = uint(defendent.SpDef.CalcValue())
		dBoost = defendent.SpDef.Stage
	default:
		return 0
	}

	power := move.Power

	if power == 0 {
		return 0
	}

	damageLogger().V(2).Info("Type 1", "type", defendent.Base.Type1)
	damageLogger().V(2).Info("Type 2", "type", defendent.Base.Type2)

	attackType := GetAttackTypeMapping(move.Type)

	effectiveness := defendent.DefenseEffectiveness(attackType)

	if effectiveness == 0 {
		return 0
	}

	if defendent.Ability.Name == ABILITY_LEVITATE && move.Type == TYPENAME_GROUND {
		return 0
	}

	var critBoost float64 = 1
	if crit {
		critBoost = 1.5
		a = baseA
		d = baseD
	}

	lowHealthBonus := 1.0
	if float32(attacker.Hp.Value) <= float32(attacker.MaxHp)*0.33 {
		if (attacker.Ability.Name == ABILITY_OVERGROW && move.Type == TYPENAME_GRASS) ||
			(attacker.Ability.Name == ABILITY_BLAZE && move.Type == TYPENAME_FIRE) ||
			(attacker.Ability.Name == ABILITY_TORRENT && move.Type == TYPENAME_WATER) ||
			(attacker.Ability.Name == ABILITY_SWARM && move.Type == TYPENAME_BUG) {
			lowHealthBonus = 1.5
		}
	}

	var burn float64 = 1
	if attacker.Status == STATUS_BURN && move.DamageClass == DAMAGETYPE_PHYSICAL {
		burn = 0.5
		damageLogger().V(2).Info("Attacker is burned and is using a physical move", "attacker_name", attacker.Nickname)
	}

	itemBonus := itemDamageModifier(attacker, move)

	// Calculate the part of the damage function in brackets
	damageInner := math.Floor(math.Floor(math.Floor((float64(2*attackerLevel)/5+2)*float64(power))*(float64(a)/float64(d)))/50 + 2)
	randomSpread := float64(rng.UintN(16)+85) / 100.0
	var stab float64 = 1

	if attacker.HasType(attackType) {
		stab = 1.5
	}

	damage := damageInner
	damage = math.Floor(damage * critBoost)
	damage = math.Floor(damage * randomSpread)
	damage = pokeRound(damage * stab)
	damage = math.Floor(damage * effectiveness)
	damage = pokeRound(damage * burn)
	damage = pokeRound(damage * lowHealthBonus)
	damage = pokeRound(damage * itemBonus)

	// A move that can do damage always does at least 1
	damage = math.Max(damage, 1)

	finalDamage := uint(damage)

	damageLogger().Info("final damage",
		"power", power,
		"attackerLevel", attackerLevel,
		"attackValue", a,
		"attackChange", aBoost,
		"defValue", d,
		"defenseChange", dBoost,
		"attackType", move.Type,
		"lowHealthBonus", lowHealthBonus,
		"damageInner", damageInner,
		"randomSpread", randomSpread,
		"STAB", stab,
		"Net Type Effectiveness", effectiveness,
		"crit", critBoost,
		"itemBonus", itemBonus,
		"damage", finalDamage)

	return finalDamage
}

func pokeRound(x float64) float64 {
	intPart := math.Trunc(x)
	distance := math.Abs(x - intPart)

	if distance > 0.5 {
		return intPart + 1
	} else {
		return intPart
	}
}
