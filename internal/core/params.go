package core

import (
	"fmt"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeChoice denotes one of a fixed set of string tokens.
	ParamTypeChoice ParamType = "choice"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Fields flattens the snapshot into the key/value form accepted by
// simulation settings parsers.
func (s ParameterSnapshot) Fields() map[string]string {
	fields := map[string]string{}
	for _, group := range s.Groups {
		for _, p := range group.Params {
			fields[p.Key] = p.Value
		}
	}
	return fields
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ParseError reports a settings field whose text could not be converted or
// fell outside its allowed range.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parameter %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseInt reads fields[key] as an integer no smaller than min. ok is false
// when the key is absent.
func ParseInt(fields map[string]string, key string, min int) (v int, ok bool, err error) {
	raw, ok := fields[key]
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.Atoi(raw)
	if err != nil {
		return 0, true, &ParseError{Key: key, Value: raw, Err: err}
	}
	if v < min {
		return 0, true, &ParseError{Key: key, Value: raw, Err: fmt.Errorf("must be >= %d", min)}
	}
	return v, true, nil
}

// ParseFloat reads fields[key] as a float within [min, max].
func ParseFloat(fields map[string]string, key string, min, max float64) (v float64, ok bool, err error) {
	raw, ok := fields[key]
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, &ParseError{Key: key, Value: raw, Err: err}
	}
	if v < min || v > max {
		return 0, true, &ParseError{Key: key, Value: raw, Err: fmt.Errorf("must be within [%g, %g]", min, max)}
	}
	return v, true, nil
}
