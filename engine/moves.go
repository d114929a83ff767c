package engine

// Move category names in move data. They decide which effect handlers run for an attack.
const (
	CATEGORY_DAMAGE         = "damage"
	CATEGORY_AILMENT        = "ailment"
	CATEGORY_DAMAGE_AILMENT = "damage+ailment"
	CATEGORY_NET_GOOD_STATS = "net-good-stats"
	CATEGORY_DAMAGE_LOWER   = "damage+lower"
	CATEGORY_DAMAGE_RAISE   = "damage+raise"
	CATEGORY_DAMAGE_HEAL    = "damage+heal"
	CATEGORY_HEAL           = "heal"
	CATEGORY_OHKO           = "ohko"
)

type StatChange struct {
	Change   int    `json:"change"`
	StatName string `json:"stat_name"`
}

type MoveMeta struct {
	Category string `json:"category"`
	// Ailment is the status this move may inflict, empty for none
	Ailment string `json:"ailment"`
	// AilmentChance of 0 means the ailment always applies
	AilmentChance int `json:"ailment_chance"`
	FlinchChance  int `json:"flinch_chance"`
	StatChance    int `json:"stat_chance"`

	// Drain is the percent of dealt damage healed. Negative values are recoil
	// against the attacker's max HP
	Drain int `json:"drain"`
	// Healing is the percent of the user's max HP restored
	Healing       int `json:"healing"`
	CritRateBonus int `json:"crit_rate"`
}

type Move struct {
	Name string `json:"name"`
	Type string `json:"type"`
	// Accuracy of 0 means the move cannot miss
	Accuracy    int          `json:"accuracy"`
	Power       int          `json:"power"`
	PP          int          `json:"pp"`
	Priority    int          `json:"priority"`
	DamageClass string       `json:"damage_class"`
	StatChanges []StatChange `json:"stat_changes"`
	Meta        MoveMeta     `json:"meta"`
}

func (m Move) IsNil() bool {
	return m.Name == ""
}

// BattleMove is the per-battle view of a move slot, tracking remaining PP.
type BattleMove struct {
	Info Move
	PP   int
}

var STATUS_NAME_MAP = map[string]int{
	"paralysis": STATUS_PARA,
	"sleep":     STATUS_SLEEP,
	"freeze":    STATUS_FROZEN,
	"burn":      STATUS_BURN,
	"poison":    STATUS_POISON,
	"toxic":     STATUS_TOXIC,
}

// struggleMove is used in place of a real move when a pokemon has no PP left
// on any slot. It is typeless and recoils for a quarter of the user's max HP.
var struggleMove = Move{
	Name:        "struggle",
	Type:        "typeless",
	Accuracy:    100,
	Power:       50,
	DamageClass: DAMAGETYPE_PHYSICAL,
	Meta: MoveMeta{
		Category: CATEGORY_DAMAGE,
		Drain:    -25,
	},
}

// STRUGGLE_MOVE_ID is the move slot value that stands for struggle.
const STRUGGLE_MOVE_ID = -1
