package engine

import "testing"

func TestAttackEffectiveness(t *testing.T) {
	cases := []struct {
		attack   *PokemonType
		defense  *PokemonType
		expected float64
	}{
		{&TYPE_FIRE, &TYPE_GRASS, 2},
		{&TYPE_WATER, &TYPE_FIRE, 2},
		{&TYPE_FIRE, &TYPE_WATER, 0.5},
		{&TYPE_ELECTRIC, &TYPE_GROUND, 0},
		{&TYPE_NORMAL, &TYPE_GHOST, 0},
		{&TYPE_NORMAL, &TYPE_NORMAL, 1},
		{&TYPE_TYPELESS, &TYPE_STEEL, 1},
	}

	for _, c := range cases {
		got := c.attack.AttackEffectiveness(*c.defense)
		if got != c.expected {
			t.Errorf("%s vs %s: expected %.1f, got %.1f", c.attack.Name, c.defense.Name, c.expected, got)
		}
	}
}

func TestDualTypeDefenseEffectiveness(t *testing.T) {
	// grass/poison doubles up against bug
	bulbasaur := getDummyPokemon()

	if eff := bulbasaur.DefenseEffectiveness(&TYPE_FIRE); eff != 2 {
		t.Errorf("fire vs grass/poison: expected 2, got %.2f", eff)
	}

	if eff := bulbasaur.DefenseEffectiveness(&TYPE_GRASS); eff != 0.25 {
		t.Errorf("grass vs grass/poison: expected 0.25, got %.2f", eff)
	}
}

func TestUnknownTypeMapsToTypeless(t *testing.T) {
	mapped := GetAttackTypeMapping("???")
	if mapped != &TYPE_TYPELESS {
		t.Fatalf("unknown type name should map to typeless, got %s", mapped.Name)
	}
}
