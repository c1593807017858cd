package threshold

import (
	"fmt"
	"strconv"

	"lifegrid/internal/core"
	"lifegrid/pkg/sims/life"
)

// Settings is everything needed to start a run: board size, the initial
// survival chance, the thresholds and the seed for generation.
type Settings struct {
	Width          int
	Height         int
	SurvivalChance float64
	Rules          life.Rules
	Seed           int64
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		Width:          64,
		Height:         64,
		SurvivalChance: 0.3,
		Rules:          life.Classic(),
		Seed:           1337,
	}
}

// Settings keys. "size" sets both dimensions, matching the single size box of
// the settings dialog; "w" and "h" override it.
const (
	keySize           = "size"
	keyWidth          = "w"
	keyHeight         = "h"
	keySurvivalChance = "survival_chance"
	keyStarvation     = "starvation"
	keyOverpopulation = "overpopulation"
	keyBirth          = "birth"
	keySeed           = "seed"
	keyCountMode      = "count_mode"
)

var fieldOrder = []string{
	keySize, keyWidth, keyHeight, keySurvivalChance,
	keyStarvation, keyOverpopulation, keyBirth, keySeed, keyCountMode,
}

// ParseSettings converts textual settings into Settings on top of the
// defaults. The first field that fails to parse or is out of range aborts
// with a *core.ParseError.
func ParseSettings(fields map[string]string) (Settings, error) {
	return DefaultSettings().With(fields)
}

// With returns a copy of s with the given fields applied. On error s is
// returned unchanged.
func (s Settings) With(fields map[string]string) (Settings, error) {
	out := s
	for _, key := range fieldOrder {
		if err := out.apply(fields, key); err != nil {
			return s, err
		}
	}
	return out, nil
}

func (s *Settings) apply(fields map[string]string, key string) error {
	switch key {
	case keySize, keyWidth, keyHeight:
		v, ok, err := core.ParseInt(fields, key, 0)
		if err != nil || !ok {
			return err
		}
		if key != keyHeight {
			s.Width = v
		}
		if key != keyWidth {
			s.Height = v
		}
	case keySurvivalChance:
		v, ok, err := core.ParseFloat(fields, key, 0, 1)
		if err != nil || !ok {
			return err
		}
		s.SurvivalChance = v
	case keyStarvation, keyOverpopulation, keyBirth:
		v, ok, err := core.ParseInt(fields, key, 0)
		if err != nil || !ok {
			return err
		}
		switch key {
		case keyStarvation:
			s.Rules.Starvation = v
		case keyOverpopulation:
			s.Rules.Overpopulation = v
		default:
			s.Rules.Birth = v
		}
	case keySeed:
		raw, ok := fields[key]
		if !ok {
			return nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return &core.ParseError{Key: key, Value: raw, Err: err}
		}
		s.Seed = v
	case keyCountMode:
		raw, ok := fields[key]
		if !ok {
			return nil
		}
		mode, valid := life.ParseNeighborMode(raw)
		if !valid {
			return &core.ParseError{Key: key, Value: raw, Err: fmt.Errorf("want %q or %q", life.CountLiving, life.CountInBounds)}
		}
		s.Rules.Counting = mode
	}
	return nil
}

// FromMap populates Settings from a string map, skipping any field that
// does not parse.
func FromMap(cfg map[string]string) Settings {
	s := DefaultSettings()
	for _, key := range fieldOrder {
		next := s
		if err := next.apply(cfg, key); err == nil {
			s = next
		}
	}
	return s
}

// Fields renders the settings back into key/value form.
func (s Settings) Fields() map[string]string {
	return map[string]string{
		keyWidth:          strconv.Itoa(s.Width),
		keyHeight:         strconv.Itoa(s.Height),
		keySurvivalChance: strconv.FormatFloat(s.SurvivalChance, 'f', -1, 64),
		keyStarvation:     strconv.Itoa(s.Rules.Starvation),
		keyOverpopulation: strconv.Itoa(s.Rules.Overpopulation),
		keyBirth:          strconv.Itoa(s.Rules.Birth),
		keySeed:           strconv.FormatInt(s.Seed, 10),
		keyCountMode:      s.Rules.Counting.String(),
	}
}
