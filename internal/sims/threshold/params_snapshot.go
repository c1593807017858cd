package threshold

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters reports the settings of the current run for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	cfg := s.settings
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam(keyWidth, "Width", cfg.Width),
				intParam(keyHeight, "Height", cfg.Height),
				floatParam(keySurvivalChance, "Survival chance", cfg.SurvivalChance),
				int64Param(keySeed, "Seed", cfg.Seed),
			},
		},
		{
			Name:    "Rules",
			Summary: "Alive cells die below starvation or above overpopulation; dead cells are born at exactly birth.",
			Params: []core.Parameter{
				intParam(keyStarvation, "Starvation", cfg.Rules.Starvation),
				intParam(keyOverpopulation, "Overpopulation", cfg.Rules.Overpopulation),
				intParam(keyBirth, "Birth", cfg.Rules.Birth),
				{
					Key:         keyCountMode,
					Label:       "Neighbor count",
					Type:        core.ParamTypeChoice,
					Value:       cfg.Rules.Counting.String(),
					Description: "living counts alive neighbors; in_bounds counts every neighbor on the board",
				},
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	threshold := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeInt,
			Step: 1, Min: 0, Max: 9, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		{
			Key: keySurvivalChance, Label: "Survival chance", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		threshold(keyStarvation, "Starvation"),
		threshold(keyOverpopulation, "Overpopulation"),
		threshold(keyBirth, "Birth"),
	}
}

// SetIntParameter starts a new run with one integer setting changed. Rules
// stay fixed for the lifetime of a run, so every change regenerates the
// board with the current seed.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case keyStarvation, keyOverpopulation, keyBirth, keyWidth, keyHeight, keySize:
	default:
		return false
	}
	return s.Apply(map[string]string{key: strconv.Itoa(value)}) == nil
}

// SetFloatParameter starts a new run with a different survival chance.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != keySurvivalChance {
		return false
	}
	return s.Apply(map[string]string{key: strconv.FormatFloat(value, 'f', -1, 64)}) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
