package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gridrank/gridrank/internal/adapters/mq/queue"
	"github.com/gridrank/gridrank/internal/app"
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func submit(ctx context.Context, svc *app.Service, id, player, week, role string, score float64) bool {
	if svc.SeenAndRecord(ctx, id) {
		return false
	}
	return svc.Enqueue(ctx, queue.Submission{
		ID: id, Player: player, Week: week, Role: role, Score: score,
	})
}

func TestService(t *testing.T) {
	_ = logger.Init()
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := app.New(app.WithWorkerCount(2), app.WithQueueSize(100))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When valid picks are submitted", func() {
			So(submit(ctx, svc, "sub-1", "Alice", "Week 1", "Passing", 10), ShouldBeTrue)
			So(submit(ctx, svc, "sub-2", "Bob", "Week 1", "Rushing", 20), ShouldBeTrue)
			So(waitFor(func() bool { return len(svc.Picks(ctx)) == 2 }), ShouldBeTrue)

			Convey("Then the season table reflects them", func() {
				rows := svc.Standings(ctx)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].Player, ShouldEqual, "Alice")
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].PointsFromFirst, ShouldEqual, 10.0)
			})

			Convey("And the weekly trajectory ranks both players", func() {
				snaps, err := svc.WeeklyRanks(ctx)
				So(err, ShouldBeNil)
				So(len(snaps), ShouldEqual, 2)
			})

			Convey("And the role breakdown pivots the scores", func() {
				rows, err := svc.RoleBreakdown(ctx)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Totals["Passing"], ShouldEqual, 10.0)
				So(rows[0].Totals["Rushing"], ShouldEqual, 20.0)
			})

			Convey("And a player's week can be inspected", func() {
				picks := svc.PlayerWeekPicks(ctx, "Alice", "Week 1")
				So(picks, ShouldHaveLength, 1)
				So(picks[0].Score, ShouldEqual, 10.0)
			})
		})

		Convey("When the same submission ID arrives twice", func() {
			So(submit(ctx, svc, "sub-1", "Alice", "Week 1", "Passing", 10), ShouldBeTrue)
			So(svc.SeenAndRecord(ctx, "sub-1"), ShouldBeTrue)

			Convey("Then only one pick lands", func() {
				So(waitFor(func() bool { return len(svc.Picks(ctx)) == 1 }), ShouldBeTrue)
				So(svc.Size(), ShouldEqual, 1)
			})
		})

		Convey("When a submission fails validation downstream", func() {
			So(submit(ctx, svc, "sub-bad", "Alice", "Week 99", "Passing", 10), ShouldBeTrue)

			Convey("Then the ID is released so it can be retried", func() {
				So(waitFor(func() bool { return svc.Size() == 0 }), ShouldBeTrue)
				So(svc.Picks(ctx), ShouldBeEmpty)
			})
		})

		Convey("When asking for service stats", func() {
			stats := svc.GetStats()

			Convey("Then they describe the running pipeline", func() {
				So(stats["started"], ShouldEqual, true)
				So(stats["weeks"], ShouldEqual, 17)
				So(stats, ShouldContainKey, "picks")
				So(stats, ShouldContainKey, "queueLength")
			})
		})

		Convey("When asking for the week labels", func() {
			labels := svc.WeekLabels()

			Convey("Then they come back in domain order", func() {
				So(labels, ShouldHaveLength, 17)
				So(labels[0], ShouldEqual, "Week 1")
				So(labels[16], ShouldEqual, "Bowls")
			})
		})
	})

	Convey("Given a service seeded from season sheet exports", t, func() {
		dir := t.TempDir()
		picksPath := filepath.Join(dir, "picks.csv")
		err := os.WriteFile(picksPath, []byte(
			"Player,Week,Role,Pick,Team,Opponent,Score\n"+
				"Alice,Week 1,Passing,QB One,Team A,Team B,12\n"+
				"Bob,Week 1,Rushing,RB Two,Team C,Team D,7\n"), 0o600)
		So(err, ShouldBeNil)

		svc := app.New(app.WithSeedFiles(picksPath, "", ""))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then the seed is ranked immediately", func() {
			rows := svc.Standings(ctx)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Player, ShouldEqual, "Bob")
		})
	})

	Convey("Given a custom week domain", t, func() {
		weeks, err := season.New([]string{"Opening", "Finale"})
		So(err, ShouldBeNil)

		svc := app.New(app.WithWeeks(weeks))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When a pick uses the default labels instead", func() {
			So(submit(ctx, svc, "sub-1", "Alice", "Week 1", "Passing", 10), ShouldBeTrue)

			Convey("Then it is rejected against the configured domain", func() {
				So(waitFor(func() bool { return svc.Size() == 0 }), ShouldBeTrue)
				So(svc.Picks(ctx), ShouldBeEmpty)
			})
		})

		Convey("When a pick uses the configured labels", func() {
			So(submit(ctx, svc, "sub-2", "Alice", "Opening", "Passing", 10), ShouldBeTrue)

			Convey("Then it is ingested", func() {
				So(waitFor(func() bool { return len(svc.Picks(ctx)) == 1 }), ShouldBeTrue)
			})
		})
	})

	Convey("Given a stopped service", t, func() {
		svc := app.New()
		So(svc.Start(ctx), ShouldBeNil)
		svc.Stop()

		Convey("Then stopping again is harmless", func() {
			svc.Stop()
			So(svc.GetStats()["started"], ShouldEqual, false)
		})
	})
}
