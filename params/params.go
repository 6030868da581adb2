// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides the named parameters that demos expose for
// tweaking: numbers with ranges, switches, colors and choices. Values
// can be loaded from and saved to TOML files, and a watched file queues
// its changes until [Set.Apply] is called from the frame function, so
// that scenes are only changed between frames.
package params

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"slices"
	"sync"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/colors"
)

// ErrUnknown is returned for a parameter name that is not in a [Set].
var ErrUnknown = errors.New("params: unknown parameter")

// Kinds are the kinds of parameters.
type Kinds int32

const (
	// Float is a floating point number in a range.
	Float Kinds = iota

	// Int is an integer in a range.
	Int

	// Bool is a switch.
	Bool

	// Color is a color, written as a hex string in files.
	Color

	// Choice is one of a list of named numbers.
	Choice
)

// ChoiceItem is one named number of a [Choice] parameter.
type ChoiceItem struct {
	Name  string
	Value float64
}

// Param is one named parameter.
type Param struct {

	// Name is the unique name of the parameter in its set.
	Name string

	// Kind is the kind of value.
	Kind Kinds

	// Min, Max and Step bound number values. Max <= Min means unbounded,
	// and a zero Step does not round.
	Min, Max, Step float64

	// Choices are the items of a [Choice] parameter.
	Choices []ChoiceItem

	num      float64
	color    color.RGBA
	onChange []func(p *Param)
}

// Float returns the value of a number, bool (0 or 1) or choice parameter.
func (p *Param) Float() float64 {
	return p.num
}

// Float32 returns [Param.Float] as a float32.
func (p *Param) Float32() float32 {
	return float32(p.num)
}

// Int returns [Param.Float] as an int.
func (p *Param) Int() int {
	return int(math.Round(p.num))
}

// Bool returns whether the value is non-zero.
func (p *Param) Bool() bool {
	return p.num != 0
}

// Color returns the value of a color parameter.
func (p *Param) Color() color.RGBA {
	return p.color
}

// NRGBA returns the value of a color parameter as NRGBA.
func (p *Param) NRGBA() color.NRGBA {
	return color.NRGBAModel.Convert(p.color).(color.NRGBA)
}

// Choice returns the name of the current item of a choice parameter.
func (p *Param) Choice() string {
	for _, c := range p.Choices {
		if c.Value == p.num {
			return c.Name
		}
	}
	return ""
}

// OnChange adds a function called after the value changes.
func (p *Param) OnChange(fn func(p *Param)) *Param {
	p.onChange = append(p.onChange, fn)
	return p
}

// Value returns the value as written in files: a float64, int64,
// bool, or a string for colors and choices.
func (p *Param) Value() any {
	switch p.Kind {
	case Int:
		return int64(p.Int())
	case Bool:
		return p.Bool()
	case Color:
		return colors.AsHex(p.color)
	case Choice:
		return p.Choice()
	}
	return p.num
}

// set sets the value from v, which is converted to the kind of
// the parameter, and returns whether it changed.
func (p *Param) set(v any) (bool, error) {
	if p.Kind == Color {
		c, err := toColor(v)
		if err != nil {
			return false, fmt.Errorf("params: %s: %w", p.Name, err)
		}
		changed := c != p.color
		p.color = c
		return changed, nil
	}
	if s, ok := v.(string); ok && p.Kind == Choice {
		i := slices.IndexFunc(p.Choices, func(c ChoiceItem) bool { return c.Name == s })
		if i < 0 {
			return false, fmt.Errorf("params: %s: no choice %q", p.Name, s)
		}
		v = p.Choices[i].Value
	}
	f, err := toFloat(v)
	if err != nil {
		return false, fmt.Errorf("params: %s: %w", p.Name, err)
	}
	f = p.bound(f)
	if p.Kind == Choice && !slices.ContainsFunc(p.Choices, func(c ChoiceItem) bool { return c.Value == f }) {
		return false, fmt.Errorf("params: %s: no choice with value %g", p.Name, f)
	}
	changed := f != p.num
	p.num = f
	return changed, nil
}

// bound returns f rounded to the step and clamped to the range.
func (p *Param) bound(f float64) float64 {
	switch p.Kind {
	case Int:
		f = math.Round(f)
	case Bool:
		if f != 0 {
			f = 1
		}
		return f
	case Choice:
		return f
	}
	if p.Step > 0 {
		f = p.Min + math.Round((f-p.Min)/p.Step)*p.Step
	}
	if p.Max > p.Min {
		f = min(max(f, p.Min), p.Max)
	}
	return f
}

func (p *Param) changed() {
	for _, fn := range p.onChange {
		fn(p)
	}
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot use %v (%T) as a number", v, v)
}

func toColor(v any) (color.RGBA, error) {
	switch v := v.(type) {
	case string:
		return colors.FromHex(v)
	case color.Color:
		return colors.AsRGBA(v), nil
	case int64:
		return colors.FromNumber(uint32(v)), nil
	case int:
		return colors.FromNumber(uint32(v)), nil
	}
	return color.RGBA{}, fmt.Errorf("cannot use %v (%T) as a color", v, v)
}

// Set is a named set of parameters.
type Set struct {
	Name string

	params []*Param

	mu     sync.Mutex
	queued map[string]any
}

// NewSet returns a new empty set of parameters.
func NewSet(name string) *Set {
	return &Set{Name: name}
}

func (s *Set) add(p *Param, v any) *Param {
	if i := slices.IndexFunc(s.params, func(o *Param) bool { return o.Name == p.Name }); i >= 0 {
		s.params[i] = p
	} else {
		s.params = append(s.params, p)
	}
	errors.Log1(p.set(v))
	return p
}

// AddFloat adds a number parameter with the given range and step.
func (s *Set) AddFloat(name string, value, min, max, step float64) *Param {
	return s.add(&Param{Name: name, Kind: Float, Min: min, Max: max, Step: step}, value)
}

// AddInt adds an integer parameter with the given range and step.
func (s *Set) AddInt(name string, value, min, max, step int) *Param {
	return s.add(&Param{Name: name, Kind: Int, Min: float64(min), Max: float64(max), Step: float64(step)}, value)
}

// AddBool adds a switch.
func (s *Set) AddBool(name string, value bool) *Param {
	return s.add(&Param{Name: name, Kind: Bool, Max: 1}, value)
}

// AddColor adds a color parameter.
func (s *Set) AddColor(name string, value color.Color) *Param {
	return s.add(&Param{Name: name, Kind: Color}, value)
}

// AddChoice adds a choice among the given items, with the named item selected.
func (s *Set) AddChoice(name, value string, choices ...ChoiceItem) *Param {
	return s.add(&Param{Name: name, Kind: Choice, Choices: choices}, value)
}

// Param returns the parameter with the given name, or nil.
func (s *Set) Param(name string) *Param {
	i := slices.IndexFunc(s.params, func(p *Param) bool { return p.Name == name })
	if i < 0 {
		return nil
	}
	return s.params[i]
}

// Params returns the parameters in the order they were added.
func (s *Set) Params() []*Param {
	return s.params
}

// Set sets the value of the named parameter now, calling its
// change functions if it changed. It must be called from the
// frame thread.
func (s *Set) Set(name string, v any) error {
	p := s.Param(name)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	changed, err := p.set(v)
	if err != nil {
		return err
	}
	if changed {
		p.changed()
	}
	return nil
}

// Values returns the values of all parameters, as written in files.
func (s *Set) Values() map[string]any {
	vals := make(map[string]any, len(s.params))
	for _, p := range s.params {
		vals[p.Name] = p.Value()
	}
	return vals
}

// Queue queues values to be set by the next call to [Set.Apply].
// It can be called from any goroutine.
func (s *Set) Queue(vals map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queued == nil {
		s.queued = map[string]any{}
	}
	for k, v := range vals {
		s.queued[k] = v
	}
}

// Apply sets the queued values and returns how many parameters
// changed. Errors are logged. It must be called from the frame thread.
func (s *Set) Apply() int {
	s.mu.Lock()
	q := s.queued
	s.queued = nil
	s.mu.Unlock()
	if len(q) == 0 {
		return 0
	}
	n := 0
	for _, p := range s.params {
		v, ok := q[p.Name]
		if !ok {
			continue
		}
		delete(q, p.Name)
		changed, err := p.set(v)
		if errors.Log(err) != nil || !changed {
			continue
		}
		n++
		p.changed()
	}
	for name := range q {
		slog.Warn("params: ignoring unknown parameter", "set", s.Name, "param", name)
	}
	return n
}
