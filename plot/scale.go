/*
Copyright 2021 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultTickTarget is the tick count used when a caller doesn't
// request one.
const DefaultTickTarget = 5

// Tick is a chosen representative value within a domain, paired with
// its display label.
type Tick struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
}

// Scale maps a numeric domain onto the unit interval and produces
// readable tick values.  It's an immutable value: Inverted and Union
// return new scales.
type Scale struct {
	lo, hi   float64
	target   int
	inverted bool
}

// ScaleFromBounds builds a scale over [lo, hi] aiming for roughly
// target ticks.  Non-finite bounds and lo > hi are rejected with
// ErrInvalidDomain; reversed bounds are never silently swapped.  A
// degenerate domain (lo == hi) is valid.  A non-positive target falls
// back to DefaultTickTarget.
func ScaleFromBounds(lo, hi float64, target int) (Scale, error) {
	if !isFinite(lo) || !isFinite(hi) {
		return Scale{}, fmt.Errorf("%w: [%v, %v] is not finite", ErrInvalidDomain, lo, hi)
	}
	if lo > hi {
		return Scale{}, fmt.Errorf("%w: lo %v > hi %v", ErrInvalidDomain, lo, hi)
	}
	if target <= 0 {
		target = DefaultTickTarget
	}
	return Scale{lo: lo, hi: hi, target: target}, nil
}

// ScaleForDomain builds a scale over one dimension of a bounded
// domain.  Domains built by DomainFromPoints always have finite,
// ordered bounds, so this cannot fail.
func ScaleForDomain(d Domain, dim Dim, target int) Scale {
	s, err := ScaleFromBounds(d.Min(dim), d.Max(dim), target)
	if err != nil {
		// only reachable with a hand-assembled Domain
		panic(err)
	}
	return s
}

// Min returns the scale's lower bound.
func (s Scale) Min() float64 { return s.lo }

// Max returns the scale's upper bound.
func (s Scale) Max() float64 { return s.hi }

// IsInverted reports whether the scale runs opposite to increasing
// pixel coordinates.
func (s Scale) IsInverted() bool { return s.inverted }

// Normalize converts a domain value into a fractional position in
// [0, 1] relative to the scale's bounds.  A degenerate scale
// (lo == hi) maps every value to exactly 0.5 rather than dividing by
// zero.
func (s Scale) Normalize(v float64) float64 {
	n := 0.5
	if s.hi > s.lo {
		n = (v - s.lo) / (s.hi - s.lo)
	}
	if s.inverted {
		return 1 - n
	}
	return n
}

// Inverted returns a new scale whose Normalize is the mirror of this
// one.  It's used for axes whose increasing data direction is opposite
// to increasing pixel coordinate (e.g. the y axis, since pages grow
// downward).
func (s Scale) Inverted() Scale {
	s.inverted = !s.inverted
	return s
}

// Union returns a new scale over the combined extents of both scales,
// for multiple series sharing one axis.  Ticks are regenerated over
// the combined bounds, not merged.
func (s Scale) Union(other Scale) Scale {
	s.lo = math.Min(s.lo, other.lo)
	s.hi = math.Max(s.hi, other.hi)
	return s
}

// step returns the tick step: the raw span/target step snapped up to
// the nearest value in the {1, 2, 5} x 10^k family.
func (s Scale) step() float64 {
	raw := (s.hi - s.lo) / float64(s.target)
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)
	frac := raw / pow
	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * pow
}

// Ticks generates the scale's tick set: strictly increasing multiples
// of the nice step, from the first multiple at or above the lower
// bound through the last multiple at or below the upper bound, both
// bounds inclusive.  The set is regenerated on every call.
func (s Scale) Ticks() []Tick {
	if s.hi == s.lo {
		// degenerate domain: a single tick at the shared bound
		return []Tick{{Value: s.lo, Label: formatTick(s.lo, valuePrecision(s.lo))}}
	}
	step := s.step()
	prec := stepPrecision(step)

	// generate by multiple index rather than accumulating, so float
	// drift can't skip the final tick
	first := int64(math.Ceil(s.lo / step))
	last := int64(math.Floor(s.hi / step))
	// a bound sitting a hair past an exact multiple still owns its tick
	const tol = 1e-9
	if float64(first-1)*step >= s.lo-step*tol {
		first--
	}
	if float64(last+1)*step <= s.hi+step*tol {
		last++
	}

	ticks := make([]Tick, 0, last-first+1)
	for i := first; i <= last; i++ {
		v := float64(i) * step
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v, prec)})
	}
	return ticks
}

// stepPrecision returns the decimal places needed to render multiples
// of a nice step exactly.  Nice steps are 1, 2 or 5 times a power of
// ten, so the step's own exponent decides the shared precision.
func stepPrecision(step float64) int {
	exp := int(math.Floor(math.Log10(step) + 1e-9))
	if exp >= 0 {
		return 0
	}
	return -exp
}

// valuePrecision returns enough decimal places to render a single
// value without loss, capped for readability.  Used only for the
// degenerate single-tick case.
func valuePrecision(v float64) int {
	for prec := 0; prec < 12; prec++ {
		s := strconv.FormatFloat(v, 'f', prec, 64)
		if parsed, err := strconv.ParseFloat(s, 64); err == nil && parsed == v {
			return prec
		}
	}
	return 12
}

// formatTick renders a tick value at the set's shared precision,
// trimming trailing zeros.
func formatTick(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if prec > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
