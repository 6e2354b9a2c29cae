package coerce_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/okian/scoutboard/internal/domain/coerce"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr[T any](v T) *T { return &v }

func TestFloat(t *testing.T) {
	Convey("Given values that cannot be read as a finite number", t, func() {
		bad := []any{
			nil,
			math.NaN(),
			math.Inf(1),
			math.Inf(-1),
			"",
			"abc",
			"nan",
			"1,5",
			struct{}{},
			map[string]any{"a": 1},
			[]float64{1},
			(*float64)(nil),
			(*string)(nil),
			ptr(math.NaN()),
		}

		Convey("Then Float returns exactly the supplied default", func() {
			for _, v := range bad {
				So(coerce.Float(v, -7.25), ShouldEqual, -7.25)
			}
		})

		Convey("And Int returns exactly the supplied default", func() {
			for _, v := range bad {
				So(coerce.Int(v, 42), ShouldEqual, 42)
			}
		})
	})

	Convey("Given readable numeric values", t, func() {
		So(coerce.Float(3.5, 0), ShouldEqual, 3.5)
		So(coerce.Float(float32(0.25), 0), ShouldEqual, 0.25)
		So(coerce.Float(int64(12), 0), ShouldEqual, 12)
		So(coerce.Float(uint8(7), 0), ShouldEqual, 7)
		So(coerce.Float(" 1.5e2 ", 0), ShouldEqual, 150)
		So(coerce.Float(true, 0), ShouldEqual, 1)
		So(coerce.Float(json.Number("2.75"), 0), ShouldEqual, 2.75)
		So(coerce.Float(ptr(9.5), 0), ShouldEqual, 9.5)
		So(coerce.Float(ptr(int64(-3)), 0), ShouldEqual, -3)
		So(coerce.Float(ptr("4"), 0), ShouldEqual, 4)
	})
}

func TestInt(t *testing.T) {
	Convey("Given half-way values", t, func() {
		Convey("Then Int rounds half to even", func() {
			So(coerce.Int(0.5, 0), ShouldEqual, 0)
			So(coerce.Int(1.5, 0), ShouldEqual, 2)
			So(coerce.Int(2.5, 0), ShouldEqual, 2)
			So(coerce.Int(3.5, 0), ShouldEqual, 4)
			So(coerce.Int(-2.5, 0), ShouldEqual, -2)
			So(coerce.Int("89.5", 0), ShouldEqual, 90)
		})

		Convey("And non-ties round to nearest", func() {
			So(coerce.Int(2.4999, 0), ShouldEqual, 2)
			So(coerce.Int(2.5001, 0), ShouldEqual, 3)
		})
	})

	Convey("Given a value beyond the int64 range", t, func() {
		So(coerce.Int(1e300, 5), ShouldEqual, 5)
	})
}

func TestString(t *testing.T) {
	Convey("Given absent or empty values", t, func() {
		So(coerce.String(nil, "Unknown"), ShouldEqual, "Unknown")
		So(coerce.String("", "Unknown"), ShouldEqual, "Unknown")
		So(coerce.String((*string)(nil), "unknown-club"), ShouldEqual, "unknown-club")
		So(coerce.String(struct{}{}, "x"), ShouldEqual, "x")
	})

	Convey("Given present values", t, func() {
		So(coerce.String("FW", "Unknown"), ShouldEqual, "FW")
		So(coerce.String(ptr("psg"), ""), ShouldEqual, "psg")
		So(coerce.String(12.0, ""), ShouldEqual, "12")
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given a degenerate range", t, func() {
		Convey("Then the result is exactly 0.5 for any value", func() {
			for _, v := range []float64{-1e9, -1, 0, 0.5, 3, 1e9} {
				So(coerce.Normalize(v, 3, 3, false), ShouldEqual, 0.5)
				So(coerce.Normalize(v, 5, 1, false), ShouldEqual, 0.5)
				So(coerce.Normalize(v, 5, 1, true), ShouldEqual, 0.5)
			}
		})
	})

	Convey("Given a proper range", t, func() {
		Convey("Then the result is monotonic and clamped", func() {
			prev := -1.0
			for v := -20.0; v <= 120.0; v += 0.5 {
				x := coerce.Normalize(v, 0, 100, false)
				So(x, ShouldBeGreaterThanOrEqualTo, prev)
				So(x, ShouldBeBetweenOrEqual, 0, 1)
				prev = x
			}
			So(coerce.Normalize(25, 0, 100, false), ShouldEqual, 0.25)
			So(coerce.Normalize(-5, 0, 100, false), ShouldEqual, 0)
			So(coerce.Normalize(500, 0, 100, false), ShouldEqual, 1)
		})
	})

	Convey("Given the inverted form", t, func() {
		Convey("Then it mirrors the plain form", func() {
			cases := [][3]float64{{0, 0, 10}, {2.5, 0, 10}, {11, 0, 10}, {-3, 0, 10}, {4, 4, 4}, {1, 9, 2}}
			for _, c := range cases {
				plain := coerce.Normalize(c[0], c[1], c[2], false)
				So(coerce.Normalize(c[0], c[1], c[2], true), ShouldEqual, 1-plain)
			}
		})
	})
}

func TestRound(t *testing.T) {
	Convey("Given values to round", t, func() {
		So(coerce.Round(2.675, 2), ShouldEqual, 2.67)
		So(coerce.Round(0.125, 2), ShouldEqual, 0.12)
		So(coerce.Round(0.375, 2), ShouldEqual, 0.38)
		So(coerce.Round(66.66666, 1), ShouldEqual, 66.7)
		So(coerce.Round(1.23456, 3), ShouldEqual, 1.235)
		So(math.Signbit(coerce.Round(-0.001, 1)), ShouldBeFalse)
	})
}

func TestClampAndPercent(t *testing.T) {
	Convey("Given shares outside [0,1]", t, func() {
		So(coerce.Clamp01(-0.2), ShouldEqual, 0)
		So(coerce.Clamp01(1.7), ShouldEqual, 1)
		So(coerce.Clamp01(0.42), ShouldEqual, 0.42)
		So(coerce.Percent(1.7), ShouldEqual, 100)
		So(coerce.Percent(0.8234), ShouldEqual, 82.3)
		So(coerce.Percent(nil), ShouldEqual, 0)
	})
}
