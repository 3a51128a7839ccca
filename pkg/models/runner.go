package models

import (
	"fmt"
	"math"
)

// DefaultSpeed is the speed used by NewDefaultRunner
const DefaultSpeed = 5

// Runner tracks the distance covered at a fixed speed.
// Fields are validated once in NewRunner and never re-checked.
type Runner struct {
	name     string
	speed    float64
	distance float64
}

// NewRunner validates name and speed and returns a runner at distance 0.
// name must be a string; speed must be a Go numeric value greater than zero.
// On failure the returned runner is nil and the error is a *ValidationError.
func NewRunner(name interface{}, speed interface{}) (*Runner, error) {
	s, ok := name.(string)
	if !ok {
		return nil, newTypeError("name", "name must be a string, got %s", typeName(name))
	}

	v, ok := toFloat(speed)
	if !ok {
		return nil, newTypeError("speed", "speed must be a number, got %s", typeName(speed))
	}
	// !(v > 0) also rejects NaN
	if !(v > 0) {
		return nil, newValueError("speed", "speed must be positive, got %v", speed)
	}

	return &Runner{name: s, speed: v}, nil
}

// NewDefaultRunner creates a runner moving at DefaultSpeed
func NewDefaultRunner(name interface{}) (*Runner, error) {
	return NewRunner(name, DefaultSpeed)
}

// Run advances the runner by twice its speed
func (r *Runner) Run() {
	r.distance += r.speed * 2
}

// Walk advances the runner by its speed
func (r *Runner) Walk() {
	r.distance += r.speed
}

// Name returns the runner's name
func (r *Runner) Name() string {
	return r.name
}

// Speed returns the speed fixed at construction
func (r *Runner) Speed() float64 {
	return r.speed
}

// Distance returns the accumulated distance
func (r *Runner) Distance() float64 {
	return r.distance
}

// String renders the runner as its name
func (r *Runner) String() string {
	return r.name
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return math.NaN(), false
	}
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
