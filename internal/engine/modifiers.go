package engine

import "github.com/Dorely/beastbound/internal/game"

// --- Stat helpers ------------------------------------------------------

// Stat modifier keys recognized on a creature's StatModifiers map.
const (
	StatPower   = "power"
	StatMind    = "mind"
	StatDefense = "defense"
	StatSpirit  = "spirit"
	StatAgility = "agility"
)

// effectiveStat returns the participant's stat level with any temporary
// creature modifiers applied. Levels never go below zero.
func effectiveStat(p *game.Participant, stat string) int {
	levels := p.StatLevels()
	v := 0
	switch stat {
	case StatPower:
		v = levels.Power
	case StatMind:
		v = levels.Mind
	case StatDefense:
		v = levels.Defense
	case StatSpirit:
		v = levels.Spirit
	case StatAgility:
		v = levels.Agility
	}
	if c := p.Creature(); c != nil {
		v += c.StatModifiers[stat]
	}
	if v < 0 {
		v = 0
	}
	return v
}

// creatureTypes returns the defender's elemental types; handlers are
// untyped and read as neutral.
func creatureTypes(p *game.Participant) (string, string) {
	c := p.Creature()
	if c == nil || len(c.Species.Types) == 0 {
		return "", ""
	}
	if len(c.Species.Types) == 1 {
		return c.Species.Types[0], ""
	}
	return c.Species.Types[0], c.Species.Types[1]
}
