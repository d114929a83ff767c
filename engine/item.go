package engine

// Held item names with battle effects. Like abilities, item effects run at
// fixed points in resolution and the working set is closed.
const (
	ITEM_LEFTOVERS    = "leftovers"
	ITEM_LIFE_ORB     = "life-orb"
	ITEM_MUSCLE_BAND  = "muscle-band"
	ITEM_WISE_GLASSES = "wise-glasses"
	ITEM_FOCUS_SASH   = "focus-sash"
	ITEM_LUM_BERRY    = "lum-berry"
)

// itemDamageModifier gives the held item's multiplier on outgoing damage.
func itemDamageModifier(attacker Pokemon, move Move) float64 {
	switch attacker.Item {
	case ITEM_LIFE_ORB:
		return 1.3
	case ITEM_MUSCLE_BAND:
		if move.DamageClass == DAMAGETYPE_PHYSICAL {
			return 1.1
		}
	case ITEM_WISE_GLASSES:
		if move.DamageClass == DAMAGETYPE_SPECIAL {
			return 1.1
		}
	}

	return 1
}
