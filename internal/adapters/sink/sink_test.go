package sink_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/scoutboard/internal/adapters/sink"
	"github.com/okian/scoutboard/internal/domain/model"
)

func samplePayload() *model.Payload {
	return &model.Payload{
		GeneratedAtUTC: "2024-05-01T10:00:00Z",
		SourceFiles:    []string{"players_kpi.parquet", "player_rankings.parquet"},
		MetricPresets: model.Presets{
			{Name: "balanced", Metrics: []string{"form", "creation"}},
		},
		Positions: []string{"Forward"},
		Clubs:     []string{"fc-nord"},
		Players: []model.Player{
			{Slug: "jose-nunez", Name: "José Núñez", Position: "Forward", ClubSlug: "fc-nord", ClubName: "Fc Nord"},
		},
	}
}

func TestJSONWriter_Write(t *testing.T) {
	Convey("Given a writer targeting a directory that does not exist yet", t, func() {
		out := filepath.Join(t.TempDir(), "data", "players.json")
		w := sink.NewJSONWriter(out)
		ctx := context.Background()

		Convey("When a payload is written", func() {
			receipt, err := w.Write(ctx, samplePayload())
			So(err, ShouldBeNil)
			raw, readErr := os.ReadFile(out)
			So(readErr, ShouldBeNil)
			text := string(raw)

			Convey("Then the file is indented JSON with non-ASCII kept literal", func() {
				So(text, ShouldContainSubstring, "José Núñez")
				So(text, ShouldContainSubstring, "\n  \"generated_at_utc\": \"2024-05-01T10:00:00Z\"")
				So(strings.HasSuffix(text, "}"), ShouldBeTrue)

				var decoded map[string]any
				So(json.Unmarshal(raw, &decoded), ShouldBeNil)
				So(decoded["radar_metrics"], ShouldResemble, []any{})
			})

			Convey("And the receipt describes what was written", func() {
				So(receipt.Path, ShouldEqual, out)
				So(receipt.Bytes, ShouldEqual, int64(len(raw)))
				So(receipt.Players, ShouldEqual, 1)
				So(len(receipt.Digest), ShouldEqual, 16)
			})

			Convey("And no temporary file is left behind", func() {
				entries, err := os.ReadDir(filepath.Dir(out))
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 1)
			})
		})

		Convey("When the same payload is written twice", func() {
			first, err := w.Write(ctx, samplePayload())
			So(err, ShouldBeNil)
			a, _ := os.ReadFile(out)
			second, err := w.Write(ctx, samplePayload())
			So(err, ShouldBeNil)
			b, _ := os.ReadFile(out)

			Convey("Then the output and the digest are identical", func() {
				So(string(b), ShouldEqual, string(a))
				So(second.Digest, ShouldEqual, first.Digest)
			})
		})
	})

	Convey("Given a custom indent", t, func() {
		out := filepath.Join(t.TempDir(), "players.json")
		w := sink.NewJSONWriter(out, sink.WithIndent(4), sink.WithFileMode(0o600))

		_, err := w.Write(context.Background(), samplePayload())
		So(err, ShouldBeNil)
		raw, _ := os.ReadFile(out)
		So(string(raw), ShouldContainSubstring, "\n    \"generated_at_utc\"")
	})

	Convey("Given an output path under a regular file", t, func() {
		blocker := filepath.Join(t.TempDir(), "blocker")
		So(os.WriteFile(blocker, []byte("x"), 0o600), ShouldBeNil)
		w := sink.NewJSONWriter(filepath.Join(blocker, "players.json"))

		Convey("When a payload is written", func() {
			_, err := w.Write(context.Background(), samplePayload())

			Convey("Then the write fails with ErrWritePayload", func() {
				So(errors.Is(err, sink.ErrWritePayload), ShouldBeTrue)
			})
		})
	})
}

func TestDigest(t *testing.T) {
	Convey("Given two player lists that differ in one field", t, func() {
		a := []model.Player{{Slug: "a", Name: "A"}}
		b := []model.Player{{Slug: "a", Name: "B"}}

		da, err := sink.Digest(a)
		So(err, ShouldBeNil)
		db, err := sink.Digest(b)
		So(err, ShouldBeNil)
		again, _ := sink.Digest(a)

		So(da, ShouldNotEqual, db)
		So(again, ShouldEqual, da)
	})
}
