package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/scoutboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayer_WithGlobalRank(t *testing.T) {
	Convey("Given a built player", t, func() {
		p := model.Player{Slug: "a", Rankings: model.RankSnapshot{PositionRank: 4, RankScore: 1.5}}

		Convey("When a global rank is attached", func() {
			ranked := p.WithGlobalRank(7)

			Convey("Then the copy carries the rank and the original is untouched", func() {
				So(ranked.Rankings.GlobalRank, ShouldEqual, 7)
				So(ranked.Rankings.PositionRank, ShouldEqual, 4)
				So(p.Rankings.GlobalRank, ShouldEqual, 0)
			})
		})
	})
}

func TestRadar_Value(t *testing.T) {
	Convey("Given a radar", t, func() {
		r := model.Radar{Creation: 1, Progression: 2, Defending: 3, Finishing: 4, Form: 5, Reliability: 6, Minutes: 7, Stability: 8}

		Convey("Then every metric id resolves to its field", func() {
			So(r.Value(model.MetricCreation), ShouldEqual, 1)
			So(r.Value(model.MetricProgression), ShouldEqual, 2)
			So(r.Value(model.MetricDefending), ShouldEqual, 3)
			So(r.Value(model.MetricFinishing), ShouldEqual, 4)
			So(r.Value(model.MetricForm), ShouldEqual, 5)
			So(r.Value(model.MetricReliability), ShouldEqual, 6)
			So(r.Value(model.MetricMinutes), ShouldEqual, 7)
			So(r.Value(model.MetricStability), ShouldEqual, 8)
			So(r.Value("speed"), ShouldEqual, 0)
		})
	})
}

func TestReadableKPIs_Value(t *testing.T) {
	Convey("Given a nil KPI block", t, func() {
		var k *model.ReadableKPIs
		So(k.Value(model.KPIFormScore), ShouldBeNil)
	})

	Convey("Given a KPI block with one field set", t, func() {
		v := 61.5
		k := &model.ReadableKPIs{FormScore: &v}

		So(k.Value(model.KPIFormScore), ShouldEqual, &v)
		So(k.Value(model.KPIVolatility), ShouldBeNil)
		So(k.Value("not_a_kpi"), ShouldBeNil)
	})
}

func TestPresets_MarshalJSON(t *testing.T) {
	Convey("Given presets declared out of alphabetical order", t, func() {
		p := model.Presets{
			{Name: "zeta", Metrics: []string{"form", "minutes"}},
			{Name: "alpha", Metrics: nil},
		}

		Convey("When encoded", func() {
			b, err := json.Marshal(p)

			Convey("Then keys keep declaration order and nil lists become empty", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `{"zeta":["form","minutes"],"alpha":[]}`)
			})
		})
	})
}
