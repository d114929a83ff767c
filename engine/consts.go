package engine

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 510
)

const (
	DAMAGETYPE_PHYSICAL = "physical"
	DAMAGETYPE_SPECIAL  = "special"
	DAMAGETYPE_STATUS   = "status"
)

const (
	STATUS_NONE = iota
	STATUS_BURN
	STATUS_PARA
	STATUS_SLEEP
	STATUS_FROZEN
	STATUS_POISON
	STATUS_TOXIC
)

const (
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
	STAT_ACCURACY = "accuracy"
	STAT_EVASION  = "evasion"
)

var StageMultipliers = map[int]float32{
	-6: 2.0 / 8.0,
	-5: 2.0 / 7.0,
	-4: 2.0 / 6.0,
	-3: 2.0 / 5.0,
	-2: 2.0 / 4.0,
	-1: 2.0 / 3.0,
	0:  1,
	1:  3.0 / 2.0,
	2:  4.0 / 2.0,
	3:  5.0 / 2.0,
	4:  6.0 / 2.0,
	5:  7.0 / 2.0,
	6:  8.0 / 2.0,
}

var critStageMultipliers = map[int]float32{
	1: 1.0 / 24.0,
	2: 1.0 / 8.0,
	3: 1.0 / 2.0,
	4: 1.0,
}

var accuracyStageMult = map[int]float32{
	6:  9.0 / 3.0,
	5:  8.0 / 3.0,
	4:  7.0 / 3.0,
	3:  6.0 / 3.0,
	2:  5.0 / 3.0,
	1:  4.0 / 3.0,
	0:  1,
	-1: 3.0 / 4.0,
	-2: 3.0 / 5.0,
	-3: 3.0 / 6.0,
	-4: 3.0 / 7.0,
	-5: 3.0 / 8.0,
	-6: 3.0 / 9.0,
}

var evasionStageMult = map[int]float32{
	-6: 9.0 / 3.0,
	-5: 8.0 / 3.0,
	-4: 7.0 / 3.0,
	-3: 6.0 / 3.0,
	-2: 5.0 / 3.0,
	-1: 4.0 / 3.0,
	0:  1,
	1:  3.0 / 4.0,
	2:  3.0 / 5.0,
	3:  3.0 / 6.0,
	4:  3.0 / 7.0,
	5:  3.0 / 8.0,
	6:  3.0 / 9.0,
}

type Nature struct {
	Name string
	// Multipliers for attack, defense, special attack, special defense and speed, in that order
	StatModifiers [5]float32
}

var NATURE_HARDY = Nature{"Hardy", [5]float32{1, 1, 1, 1, 1}}

var NATURES = [...]Nature{
	NATURE_HARDY,
	{"Docile", [5]float32{1, 1, 1, 1, 1}},
	{"Bashful", [5]float32{1, 1, 1, 1, 1}},
	{"Quirky", [5]float32{1, 1, 1, 1, 1}},
	{"Serious", [5]float32{1, 1, 1, 1, 1}},

	{"Bold", [5]float32{.9, 1.1, 1, 1, 1}},
	{"Modest", [5]float32{.9, 1, 1.1, 1, 1}},
	{"Calm", [5]float32{.9, 1, 1, 1.1, 1}},
	{"Timid", [5]float32{.9, 1, 1, 1, 1.1}},

	{"Lonely", [5]float32{1.1, .9, 1, 1, 1}},
	{"Mild", [5]float32{1, .9, 1.1, 1, 1}},
	{"Gentle", [5]float32{1, .9, 1, 1.1, 1}},
	{"Hasty", [5]float32{1, .9, 1, 1, 1.1}},

	{"Adamant", [5]float32{1.1, 1, .9, 1, 1}},
	{"Impish", [5]float32{1, 1.1, .9, 1, 1}},
	{"Careful", [5]float32{1, 1, .9, 1.1, 1}},
	{"Jolly", [5]float32{1, 1, .9, 1, 1.1}},

	{"Naughty", [5]float32{1.1, 1, 1, .9, 1}},
	{"Lax", [5]float32{1, 1.1, 1, .9, 1}},
	{"Rash", [5]float32{1, 1, 1.1, .9, 1}},
	{"Naive", [5]float32{1, 1, 1, .9, 1.1}},

	{"Brave", [5]float32{1.1, 1, 1, 1, .9}},
	{"Relaxed", [5]float32{1, 1.1, 1, 1, .9}},
	{"Quiet", [5]float32{1, 1, 1.1, 1, .9}},
	{"Sassy", [5]float32{1, 1, 1, 1.1, .9}},
}
