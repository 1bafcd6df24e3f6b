// Package typechart is the static attack-type versus defense-type
// lookup. It is pure data plus scans: no randomness, no battle state.
package typechart

import "sort"

// Elemental type names used by the chart. The chart treats any unknown
// type as Neutral.
const (
	Normal  = "normal"
	Ember   = "ember"
	Tide    = "tide"
	Verdant = "verdant"
	Volt    = "volt"
	Frost   = "frost"
	Stone   = "stone"
	Gale    = "gale"
	Venom   = "venom"
	Spirit  = "spirit"
)

// Single-type multipliers. Only non-neutral matchups are listed; every
// missing pair is 1.0. Values are restricted to {0, 0.5, 1, 2}.
var chart = map[string]map[string]float64{
	Normal: {Spirit: 0, Stone: 0.5},
	Ember:  {Verdant: 2, Frost: 2, Tide: 0.5, Stone: 0.5, Ember: 0.5},
	Tide:   {Ember: 2, Stone: 2, Verdant: 0.5, Tide: 0.5},
	Verdant: {
		Tide: 2, Stone: 2,
		Ember: 0.5, Gale: 0.5, Venom: 0.5, Verdant: 0.5,
	},
	Volt:  {Tide: 2, Gale: 2, Verdant: 0.5, Volt: 0.5, Stone: 0},
	Frost: {Verdant: 2, Gale: 2, Ember: 0.5, Tide: 0.5, Frost: 0.5},
	Stone: {Ember: 2, Gale: 2, Frost: 2, Verdant: 0.5},
	Gale:  {Verdant: 2, Volt: 0.5, Stone: 0.5},
	Venom: {Verdant: 2, Stone: 0.5, Venom: 0.5, Spirit: 0.5},
	Spirit: {
		Spirit: 2, Normal: 0,
	},
}

// AllTypes returns the chart's type roster, sorted.
func AllTypes() []string {
	out := []string{Normal, Ember, Tide, Verdant, Volt, Frost, Stone, Gale, Venom, Spirit}
	sort.Strings(out)
	return out
}

// Known reports whether t is a type the chart recognizes.
func Known(t string) bool {
	_, ok := chart[t]
	return ok
}

// single returns the one-vs-one multiplier; unknown or empty defense
// types are neutral.
func single(attack, defense string) float64 {
	if defense == "" {
		return 1.0
	}
	row, ok := chart[attack]
	if !ok {
		return 1.0
	}
	if m, ok := row[defense]; ok {
		return m
	}
	return 1.0
}

// Effectiveness returns the combined multiplier of attack against a
// mono- or dual-typed defender: single(attack, type1) multiplied by
// single(attack, type2). Pass an empty type2 for mono-typed defenders.
// Composition is order-independent.
func Effectiveness(attack, type1, type2 string) float64 {
	return single(attack, type1) * single(attack, type2)
}

// SuperEffectiveAgainst lists defense types the attack type hits at 2x.
func SuperEffectiveAgainst(attack string) []string {
	return scanFor(attack, func(m float64) bool { return m > 1 })
}

// NotVeryEffectiveAgainst lists defense types the attack type hits below
// 1x but above 0.
func NotVeryEffectiveAgainst(attack string) []string {
	return scanFor(attack, func(m float64) bool { return m > 0 && m < 1 })
}

// NoEffectAgainst lists defense types the attack type cannot hurt.
func NoEffectAgainst(attack string) []string {
	return scanFor(attack, func(m float64) bool { return m == 0 })
}

func scanFor(attack string, keep func(float64) bool) []string {
	out := []string{}
	for _, def := range AllTypes() {
		if keep(single(attack, def)) {
			out = append(out, def)
		}
	}
	return out
}
