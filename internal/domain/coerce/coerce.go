// Package coerce turns loosely typed field values into numbers and strings.
//
// Every function here is total: a nil, NaN, infinite, unparsable or
// unsupported input yields the caller-supplied default and never an error.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// Float returns v as a float64, or def when v cannot be read as a finite number.
func Float(v any, def float64) float64 {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// Int returns Float(v, def) rounded to the nearest integer, half to even.
// 2.5 -> 2, 3.5 -> 4, -2.5 -> -2.
func Int(v any, def int) int {
	f := math.RoundToEven(Float(v, float64(def)))
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return def
	}
	return int(f)
}

// String returns v as a string. Nil and empty values yield fallback.
func String(v any, fallback string) string {
	var s string
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		s = t
	case *string:
		if t == nil {
			return fallback
		}
		s = *t
	case []byte:
		s = string(t)
	default:
		f, ok := toFloat(v)
		if !ok {
			return fallback
		}
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if s == "" {
		return fallback
	}
	return s
}

// Clamp01 clips v into [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Normalize linearly scales v from [lo, hi] into [0, 1], clamped. A degenerate
// range (hi <= lo) yields 0.5 for any v. With invert the result is 1 - x.
func Normalize(v, lo, hi float64, invert bool) float64 {
	x := 0.5
	if hi > lo {
		x = (v - lo) / (hi - lo)
	}
	x = Clamp01(x)
	if invert {
		return 1 - x
	}
	return x
}

// Round rounds v to places decimal digits using the exact binary value of v,
// ties to even. Round(2.675, 2) is 2.67 because 2.675 is stored below the tie.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	// Normalise -0 so encoded output never shows "-0".
	if r == 0 {
		return 0
	}
	return r
}

// Percent clamps a [0,1] share, scales it to [0,100] and rounds to one decimal.
func Percent(v any) float64 {
	return Round(Clamp01(Float(v, 0))*100, 1)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case []byte:
		return toFloat(string(t))
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case *float64:
		if t == nil {
			return 0, false
		}
		return *t, true
	case *float32:
		if t == nil {
			return 0, false
		}
		return float64(*t), true
	case *int64:
		if t == nil {
			return 0, false
		}
		return float64(*t), true
	case *int32:
		if t == nil {
			return 0, false
		}
		return float64(*t), true
	case *int:
		if t == nil {
			return 0, false
		}
		return float64(*t), true
	case *string:
		if t == nil {
			return 0, false
		}
		return toFloat(*t)
	case *bool:
		if t == nil {
			return 0, false
		}
		return toFloat(*t)
	default:
		return 0, false
	}
}
