package engine

import (
	"errors"
	"fmt"
	"math"
)

// BasePokemon is the species data for a pokemon: base stats and typing, as if it were a pokedex entry.
type BasePokemon struct {
	PokedexNumber uint
	Name          string
	Type1         *PokemonType
	Type2         *PokemonType
	Hp            uint
	Attack        uint
	Def           uint
	SpAttack      uint
	SpDef         uint
	Speed         uint
}

// Stat is one of a pokemon's stats, keeping the raw computed value alongside its battle stage.
type Stat struct {
	RawValue uint
	Ev       uint
	Iv       uint
	Stage    int `json:"-"`
}

// HpStat has no stage since HP cannot be staged up or down.
type HpStat struct {
	Value uint
	Ev    uint
	Iv    uint
}

// CalcValue gets the effective value of the stat after stage modifiers.
func (s Stat) CalcValue() int {
	return int(float32(s.RawValue) * StageMultipliers[s.Stage])
}

// ChangeStat raises the stage when change is positive and lowers it when negative.
func (s *Stat) ChangeStat(change int) {
	if change > 0 {
		s.IncreaseStage(change)
	} else {
		s.DecreaseStage(change)
	}
}

func (s *Stat) IncreaseStage(inc int) {
	s.Stage = stageIncrease(inc, s.Stage, 6)
}

func (s *Stat) DecreaseStage(dec int) {
	s.Stage = stageDecrease(dec, s.Stage, -6)
}

// Pokemon is a single battle-ready pokemon: species data plus level, stats,
// moves, ability, held item and the transient battle state that goes with them.
type Pokemon struct {
	Base     *BasePokemon
	Nickname string
	Level    uint
	Hp       HpStat
	MaxHp    uint
	Attack   Stat
	Def      Stat
	SpAttack Stat
	SpDef    Stat
	RawSpeed Stat
	Moves    [4]Move
	Nature   Nature
	Ability  Ability
	Item     string

	Status             int           `json:"-"`
	ToxicCount         int           `json:"-"`
	SleepCount         int           `json:"-"`
	CritStage          int           `json:"-"`
	AccuracyStage      int           `json:"-"`
	EvasionStage       int           `json:"-"`
	CanAttackThisTurn  bool          `json:"-"`
	SwitchedInThisTurn bool          `json:"-"`
	ItemConsumed       bool          `json:"-"`
	BattleMoves        [4]BattleMove `json:"-"`
}

// Init fills in transient battle state before a battle starts.
func (p *Pokemon) Init() {
	for i, move := range p.Moves {
		p.BattleMoves[i] = BattleMove{Info: move, PP: move.PP}
	}
}

func (p Pokemon) Name() string {
	return p.Nickname
}

func (p Pokemon) IsNil() bool {
	return p.Base == nil
}

func (p Pokemon) HasType(pokemonType *PokemonType) bool {
	if p.Base.Type1 != nil && p.Base.Type1.Name == pokemonType.Name {
		return true
	}

	if p.Base.Type2 != nil && p.Base.Type2.Name == pokemonType.Name {
		return true
	}

	return false
}

// HeldItem returns the pokemon's item name, or empty if it has been consumed.
func (p Pokemon) HeldItem() string {
	if p.ItemConsumed {
		return ""
	}

	return p.Item
}

func (p *Pokemon) ReCalcStats() {
	hpNumerator := (2*p.Base.Hp + p.Hp.Iv + (p.Hp.Ev / 4)) * p.Level
	p.Hp.Value = (hpNumerator / 100) + p.Level + 10
	p.MaxHp = p.Hp.Value

	p.Attack.RawValue = calcStat(p.Base.Attack, p.Level, p.Attack.Iv, p.Attack.Ev, p.Nature.StatModifiers[0])
	p.Def.RawValue = calcStat(p.Base.Def, p.Level, p.Def.Iv, p.Def.Ev, p.Nature.StatModifiers[1])
	p.SpAttack.RawValue = calcStat(p.Base.SpAttack, p.Level, p.SpAttack.Iv, p.SpAttack.Ev, p.Nature.StatModifiers[2])
	p.SpDef.RawValue = calcStat(p.Base.SpDef, p.Level, p.SpDef.Iv, p.SpDef.Ev, p.Nature.StatModifiers[3])
	p.RawSpeed.RawValue = calcStat(p.Base.Speed, p.Level, p.RawSpeed.Iv, p.RawSpeed.Ev, p.Nature.StatModifiers[4])
}

func (p Pokemon) GetCurrentEvTotal() int {
	return int(p.Hp.Ev) + int(p.Attack.Ev) + int(p.Def.Ev) + int(p.SpAttack.Ev) + int(p.SpDef.Ev) + int(p.RawSpeed.Ev)
}

func (p Pokemon) Alive() bool {
	return p.Hp.Value > 0
}

// Damage lowers HP, clamping at zero. Damaging an already fainted pokemon does nothing.
func (p *Pokemon) Damage(dmg uint) {
	cappedNewHealth := uint(math.Max(0, float64(int(p.Hp.Value)-int(dmg))))
	p.Hp.Value = cappedNewHealth
}

// Heal raises HP, clamping at max.
func (p *Pokemon) Heal(heal uint) {
	cappedNewHealth := uint(math.Min(float64(p.MaxHp), float64(p.Hp.Value+heal)))
	p.Hp.Value = cappedNewHealth
}

func (p *Pokemon) HealPerc(heal float64) {
	healAmount := math.Ceil(float64(p.MaxHp) * heal)
	p.Heal(uint(healAmount))
}

// Speed is the pokemon's effective speed, halved while paralyzed.
func (p Pokemon) Speed() int {
	calcedSpeed := p.RawSpeed.CalcValue()

	if p.Status == STATUS_PARA {
		calcedSpeed = calcedSpeed / 2
	}

	return calcedSpeed
}

// CritChance gets the chance for this pokemon's next damaging move to crit.
func (p Pokemon) CritChance() float32 {
	mult, ok := critStageMultipliers[p.CritStage]
	if ok {
		return mult
	}

	return critStageMultipliers[1]
}

func (p *Pokemon) ChangeAccuracy(change int) {
	if change < 0 {
		p.AccuracyStage = stageDecrease(change, p.AccuracyStage, -6)
	} else {
		p.AccuracyStage = stageIncrease(change, p.AccuracyStage, 6)
	}
}

func (p Pokemon) Accuracy() float32 {
	return accuracyStageMult[p.AccuracyStage]
}

func (p *Pokemon) ChangeEvasion(change int) {
	if change < 0 {
		p.EvasionStage = stageDecrease(change, p.EvasionStage, -6)
	} else {
		p.EvasionStage = stageIncrease(change, p.EvasionStage, 6)
	}
}

func (p Pokemon) Evasion() float32 {
	return evasionStageMult[p.EvasionStage]
}

// ClearStatChanges resets every stage modifier, as happens on switch-out.
func (p *Pokemon) ClearStatChanges() {
	p.Attack.Stage = 0
	p.Def.Stage = 0
	p.SpAttack.Stage = 0
	p.SpDef.Stage = 0
	p.RawSpeed.Stage = 0
	p.AccuracyStage = 0
	p.EvasionStage = 0
	p.CritStage = 0
}

// DefenseEffectiveness gets the combined effectiveness of an attack type against this pokemon's one or two types.
func (p Pokemon) DefenseEffectiveness(attackType *PokemonType) float64 {
	effectiveness1 := attackType.AttackEffectiveness(*p.Base.Type1)

	var effectiveness2 float64 = 1
	if p.Base.Type2 != nil {
		effectiveness2 = attackType.AttackEffectiveness(*p.Base.Type2)
	}

	return effectiveness1 * effectiveness2
}

func CreateEVSpread(hp uint, attack uint, def uint, spAttack uint, spDef uint, speed uint) ([6]uint, error) {
	var evs [6]uint

	for _, ev := range []uint{hp, attack, def, spAttack, spDef, speed} {
		if ev > MAX_EV {
			return evs, errors.New("single ev over the max")
		}
	}

	evTotal := hp + attack + def + spAttack + spDef + speed
	if evTotal > MAX_TOTAL_EV {
		return evs, fmt.Errorf("ev total (%d) is greater than the max allowed: %d", evTotal, MAX_TOTAL_EV)
	}

	return [6]uint{hp, attack, def, spAttack, spDef, speed}, nil
}

func CreateIVSpread(hp uint, attack uint, def uint, spAttack uint, spDef uint, speed uint) ([6]uint, error) {
	var ivs [6]uint

	for _, iv := range []uint{hp, attack, def, spAttack, spDef, speed} {
		if iv > MAX_IV {
			return ivs, errors.New("single iv over the max")
		}
	}

	return [6]uint{hp, attack, def, spAttack, spDef, speed}, nil
}

func calcStat(baseValue uint, level uint, iv uint, ev uint, natureMod float32) uint {
	statNumerator := (2*baseValue + iv + (ev / 4)) * level
	statValue := (float32(statNumerator)/100 + 5) * natureMod

	return uint(statValue)
}

// stageIncrease raises a stage, clamping at the given max. Generalized since
// crit stages top out at 4 rather than 6.
func stageIncrease(inc int, currentStage int, maxStage int) int {
	inc = int(math.Abs(float64(inc)))
	return int(math.Min(float64(maxStage), float64(currentStage+inc)))
}

func stageDecrease(dec int, currentStage int, minStage int) int {
	dec = int(math.Abs(float64(dec)))
	return int(math.Max(float64(minStage), float64(currentStage-dec)))
}
