package engine

// Ability is a passive effect tied to a pokemon. Effects are dispatched by
// name at fixed points in battle resolution (switch-in, damage calculation,
// ailment application, end of turn) rather than through callbacks, so the
// set of working abilities is closed.
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

func (a Ability) IsNil() bool {
	return a.Name == ""
}

// Ability names with battle effects.
const (
	ABILITY_INTIMIDATE  = "intimidate"
	ABILITY_LEVITATE    = "levitate"
	ABILITY_SPEED_BOOST = "speed-boost"
	ABILITY_STURDY      = "sturdy"
	ABILITY_STATIC      = "static"
	ABILITY_LIMBER      = "limber"
	ABILITY_IMMUNITY    = "immunity"
	ABILITY_WATER_VEIL  = "water-veil"
	ABILITY_INSOMNIA    = "insomnia"
	ABILITY_OVERGROW    = "overgrow"
	ABILITY_BLAZE       = "blaze"
	ABILITY_TORRENT     = "torrent"
	ABILITY_SWARM       = "swarm"
)
