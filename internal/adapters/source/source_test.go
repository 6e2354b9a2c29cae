package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/scoutboard/internal/adapters/source"
	"github.com/okian/scoutboard/internal/domain/model"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64     { return &i }

func TestTables(t *testing.T) {
	Convey("Given players and rankings tables on disk", t, func() {
		dir := t.TempDir()
		playersPath := filepath.Join(dir, "players_kpi.parquet")
		rankingsPath := filepath.Join(dir, "player_rankings.parquet")

		players := []model.PlayerRecord{
			{
				Slug:     strPtr("ana-lima"),
				Name:     strPtr("Ana Lima"),
				Position: strPtr("Forward"),
				ClubSlug: strPtr("fc-nord"),
				KPIs:     &model.ReadableKPIs{FormScore: f64Ptr(61.5)},
				Matches: []*model.RawMatch{
					{Date: strPtr("2024-03-01"), Score: f64Ptr(55), HomeSlug: strPtr("fc-nord"), AwaySlug: strPtr("ac-sud")},
				},
			},
			{Slug: strPtr("bo-park")},
		}
		rankings := []model.RankingRecord{
			{Slug: strPtr("ana-lima"), Rank: i64Ptr(3), RankScore: f64Ptr(0.812)},
		}
		So(source.WriteTable(playersPath, players), ShouldBeNil)
		So(source.WriteTable(rankingsPath, rankings), ShouldBeNil)

		tables := source.NewTables(playersPath, rankingsPath)
		ctx := context.Background()

		Convey("When both tables are read", func() {
			gotPlayers, err := tables.Players(ctx)
			So(err, ShouldBeNil)
			gotRankings, err := tables.Rankings(ctx)
			So(err, ShouldBeNil)

			Convey("Then rows come back in file order with optional fields preserved", func() {
				So(len(gotPlayers), ShouldEqual, 2)
				So(*gotPlayers[0].Slug, ShouldEqual, "ana-lima")
				So(gotPlayers[0].KPIs, ShouldNotBeNil)
				So(*gotPlayers[0].KPIs.FormScore, ShouldEqual, 61.5)
				So(gotPlayers[0].KPIs.Volatility, ShouldBeNil)
				So(len(gotPlayers[0].Matches), ShouldEqual, 1)
				So(*gotPlayers[0].Matches[0].HomeSlug, ShouldEqual, "fc-nord")
				So(gotPlayers[1].Name, ShouldBeNil)

				So(len(gotRankings), ShouldEqual, 1)
				So(*gotRankings[0].Rank, ShouldEqual, 3)
			})
		})

		Convey("Then Files reports the base names, players first", func() {
			So(tables.Files(), ShouldResemble, []string{"players_kpi.parquet", "player_rankings.parquet"})
		})
	})
}

func TestReadTableErrors(t *testing.T) {
	Convey("Given a missing table", t, func() {
		path := filepath.Join(t.TempDir(), "absent.parquet")

		Convey("When it is read", func() {
			_, err := source.ReadTable[model.RankingRecord](context.Background(), path)

			Convey("Then the error is an open failure that keeps the cause", func() {
				So(errors.Is(err, source.ErrOpenTable), ShouldBeTrue)
				So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, path)
			})
		})
	})

	Convey("Given a file that is not parquet", t, func() {
		path := filepath.Join(t.TempDir(), "garbage.parquet")
		So(os.WriteFile(path, []byte("not a parquet file"), 0o600), ShouldBeNil)

		Convey("When it is read", func() {
			_, err := source.ReadTable[model.RankingRecord](context.Background(), path)

			Convey("Then the error is a decode failure", func() {
				So(errors.Is(err, source.ErrDecodeTable), ShouldBeTrue)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := source.ReadTable[model.RankingRecord](ctx, "whatever.parquet")
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}
