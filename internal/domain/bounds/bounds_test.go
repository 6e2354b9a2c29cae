package bounds_test

import (
	"testing"

	"github.com/okian/scoutboard/internal/domain/bounds"
	"github.com/okian/scoutboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func f(v float64) *float64 { return &v }

func TestCollect(t *testing.T) {
	Convey("Given players with well-formed KPI blocks", t, func() {
		records := []model.PlayerRecord{
			{KPIs: &model.ReadableKPIs{FormScore: f(40), Volatility: f(12), MinutesLast5: f(450)}},
			{KPIs: &model.ReadableKPIs{FormScore: f(70), Volatility: f(3), MinutesLast5: f(90)}},
			{KPIs: nil},
			{KPIs: &model.ReadableKPIs{FormScore: f(55), MinutesLast5: f(300)}},
		}

		Convey("When bounds are collected", func() {
			b := bounds.Collect(records)

			Convey("Then each key spans the population", func() {
				So(b.Get(model.KPIFormScore), ShouldResemble, bounds.Range{Min: 40, Max: 70, Samples: 3})
				So(b.Get(model.KPIMinutesLast5), ShouldResemble, bounds.Range{Min: 90, Max: 450, Samples: 3})
			})

			Convey("And a missing key inside a block counts as zero", func() {
				So(b.Get(model.KPIVolatility), ShouldResemble, bounds.Range{Min: 0, Max: 12, Samples: 3})
			})
		})
	})

	Convey("Given a population without any KPI block", t, func() {
		records := []model.PlayerRecord{{}, {}}

		Convey("When bounds are collected", func() {
			b := bounds.Collect(records)

			Convey("Then every key is still present with a degenerate range", func() {
				So(len(b), ShouldEqual, len(bounds.Keys))
				for _, key := range bounds.Keys {
					r, ok := b[key]
					So(ok, ShouldBeTrue)
					So(r.Samples, ShouldEqual, 0)
					So(r.Normalize(123, false), ShouldEqual, 0.5)
					So(r.Normalize(123, true), ShouldEqual, 0.5)
				}
			})
		})
	})

	Convey("Given an unknown key", t, func() {
		b := bounds.Collect(nil)
		So(b.Get("nope"), ShouldResemble, bounds.Range{})
	})
}
