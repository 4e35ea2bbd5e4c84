package standings_test

import (
	"errors"
	"testing"

	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func mustWeeks(labels ...string) season.Weeks {
	w, err := season.New(labels)
	if err != nil {
		panic(err)
	}
	return w
}

func snapshotsFor(snaps []standings.RankSnapshot, week string) map[string]int {
	out := make(map[string]int)
	for _, s := range snaps {
		if s.Week == week {
			out[s.Player] = s.Rank
		}
	}
	return out
}

func TestComputeStandings(t *testing.T) {
	Convey("Given scored picks across a season", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 1", Score: 10},
			{Player: "Alice", Week: "Week 2", Score: 5},
			{Player: "Bob", Week: "Week 1", Score: 20},
			{Player: "Carol", Week: "Week 1", Score: 8},
			{Player: "Carol", Week: "Week 2", Score: 4},
		}

		Convey("When computing the season table", func() {
			rows := standings.ComputeStandings(events)

			Convey("Then totals are ascending with lower scores first", func() {
				So(rows, ShouldHaveLength, 3)
				So(rows[0].Player, ShouldEqual, "Carol")
				So(rows[0].TotalScore, ShouldEqual, 12.0)
				So(rows[1].Player, ShouldEqual, "Alice")
				So(rows[1].TotalScore, ShouldEqual, 15.0)
				So(rows[2].Player, ShouldEqual, "Bob")
				So(rows[2].TotalScore, ShouldEqual, 20.0)
			})

			Convey("And points from first measures distance to the leader", func() {
				So(rows[0].PointsFromFirst, ShouldEqual, 0.0)
				So(rows[1].PointsFromFirst, ShouldEqual, 3.0)
				So(rows[2].PointsFromFirst, ShouldEqual, 8.0)
			})

			Convey("And ranks are sequential when totals differ", func() {
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Rank, ShouldEqual, 2)
				So(rows[2].Rank, ShouldEqual, 3)
			})
		})

		Convey("When two players finish on the same total", func() {
			tied := append(events, model.ScoreEvent{Player: "Dave", Week: "Week 1", Score: 12})
			rows := standings.ComputeStandings(tied)

			Convey("Then they share the minimum rank and the next player skips it", func() {
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Rank, ShouldEqual, 1)
				So(rows[2].Rank, ShouldEqual, 3)
				So(rows[0].Player, ShouldEqual, "Carol")
				So(rows[1].Player, ShouldEqual, "Dave")
			})

			Convey("And both tied players sit zero points from first", func() {
				So(rows[0].PointsFromFirst, ShouldEqual, 0.0)
				So(rows[1].PointsFromFirst, ShouldEqual, 0.0)
			})
		})

		Convey("When the input is empty", func() {
			rows := standings.ComputeStandings(nil)

			Convey("Then the table is empty but not nil", func() {
				So(rows, ShouldNotBeNil)
				So(rows, ShouldBeEmpty)
			})
		})

		Convey("When player names carry stray whitespace", func() {
			rows := standings.ComputeStandings([]model.ScoreEvent{
				{Player: "  Alice ", Week: "Week 1", Score: 10},
				{Player: "Alice", Week: "Week 2", Score: 5},
				{Player: "   ", Week: "Week 1", Score: 99},
			})

			Convey("Then trimmed names merge and blank names are dropped", func() {
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Player, ShouldEqual, "Alice")
				So(rows[0].TotalScore, ShouldEqual, 15.0)
			})
		})
	})
}

func TestComputeTrajectory(t *testing.T) {
	weeks := mustWeeks("Week 1", "Week 2", "Week 3", "Week 4")

	Convey("Given a player who skips a week mid-season", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 1", Score: 10},
			{Player: "Alice", Week: "Week 3", Score: 5},
		}

		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)
			So(err, ShouldBeNil)

			Convey("Then the bye week carries the previous cumulative rank forward", func() {
				week1 := snapshotsFor(snaps, "Week 1")
				week2 := snapshotsFor(snaps, "Week 2")
				week3 := snapshotsFor(snaps, "Week 3")
				So(week1["Alice"], ShouldEqual, 1)
				So(week2["Alice"], ShouldEqual, 1)
				So(week3["Alice"], ShouldEqual, 1)
			})

			Convey("And no snapshot exists past the last active week", func() {
				So(snapshotsFor(snaps, "Week 4"), ShouldBeEmpty)
			})
		})
	})

	Convey("Given events arriving out of week order", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 3", Score: 5},
			{Player: "Alice", Week: "Week 1", Score: 10},
		}

		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)
			So(err, ShouldBeNil)

			Convey("Then accumulation follows domain order, not arrival order", func() {
				// Cumulative 10 at week 1, carried to week 2, 15 at week 3.
				So(snapshotsFor(snaps, "Week 1"), ShouldContainKey, "Alice")
				So(snapshotsFor(snaps, "Week 2"), ShouldContainKey, "Alice")
				So(snapshotsFor(snaps, "Week 3"), ShouldContainKey, "Alice")
				So(snapshotsFor(snaps, "Week 4"), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a late joiner and an early dropout", t, func() {
		events := []model.ScoreEvent{
			{Player: "Early", Week: "Week 1", Score: 10},
			{Player: "Early", Week: "Week 2", Score: 10},
			{Player: "Late", Week: "Week 3", Score: 1},
			{Player: "Late", Week: "Week 4", Score: 1},
		}

		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)
			So(err, ShouldBeNil)

			Convey("Then the late joiner is absent before their first event", func() {
				So(snapshotsFor(snaps, "Week 1"), ShouldNotContainKey, "Late")
				So(snapshotsFor(snaps, "Week 2"), ShouldNotContainKey, "Late")
				So(snapshotsFor(snaps, "Week 3"), ShouldContainKey, "Late")
			})

			Convey("And the dropout is absent after their last event", func() {
				So(snapshotsFor(snaps, "Week 2"), ShouldContainKey, "Early")
				So(snapshotsFor(snaps, "Week 3"), ShouldNotContainKey, "Early")
				So(snapshotsFor(snaps, "Week 4"), ShouldNotContainKey, "Early")
			})

			Convey("And weeks where only one player is active rank them first", func() {
				So(snapshotsFor(snaps, "Week 1")["Early"], ShouldEqual, 1)
				So(snapshotsFor(snaps, "Week 4")["Late"], ShouldEqual, 1)
			})
		})
	})

	Convey("Given three players with a cumulative tie", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 1", Score: 10},
			{Player: "Bob", Week: "Week 1", Score: 10},
			{Player: "Carol", Week: "Week 1", Score: 30},
		}

		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)
			So(err, ShouldBeNil)

			Convey("Then tied players share rank 1 and the next rank is 3", func() {
				week1 := snapshotsFor(snaps, "Week 1")
				So(week1["Alice"], ShouldEqual, 1)
				So(week1["Bob"], ShouldEqual, 1)
				So(week1["Carol"], ShouldEqual, 3)
			})
		})
	})

	Convey("Given duplicate events for the same player and week", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 1", Score: 6},
			{Player: "Alice", Week: "Week 1", Score: 4},
			{Player: "Bob", Week: "Week 1", Score: 11},
		}

		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)
			So(err, ShouldBeNil)

			Convey("Then the scores sum before ranking", func() {
				// Alice 10 beats Bob 11.
				week1 := snapshotsFor(snaps, "Week 1")
				So(week1["Alice"], ShouldEqual, 1)
				So(week1["Bob"], ShouldEqual, 2)
			})
		})
	})

	Convey("Given an event with a week outside the domain", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 1", Score: 10},
			{Player: "Bob", Week: "Week 99", Score: 5},
		}

		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)

			Convey("Then the whole batch fails with the invalid-week kind", func() {
				So(snaps, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, standings.ErrInvalidWeek), ShouldBeTrue)

				var weekErr *standings.InvalidWeekError
				So(errors.As(err, &weekErr), ShouldBeTrue)
				So(weekErr.Week, ShouldEqual, "Week 99")
				So(weekErr.Player, ShouldEqual, "Bob")
			})
		})
	})

	Convey("Given no events at all", t, func() {
		Convey("When computing the trajectory", func() {
			snaps, err := standings.ComputeTrajectory(nil, weeks)

			Convey("Then the trajectory is empty and no error is returned", func() {
				So(err, ShouldBeNil)
				So(snaps, ShouldBeEmpty)
			})
		})
	})

	Convey("Given the same events submitted twice", t, func() {
		events := []model.ScoreEvent{
			{Player: "Alice", Week: "Week 2", Score: 10},
			{Player: "Bob", Week: "Week 1", Score: 20},
			{Player: "Bob", Week: "Week 2", Score: -5},
		}

		Convey("When computing the trajectory both times", func() {
			first, err1 := standings.ComputeTrajectory(events, weeks)
			second, err2 := standings.ComputeTrajectory(events, weeks)

			Convey("Then the output is identical and deterministically ordered", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestRankingLaws(t *testing.T) {
	weeks := mustWeeks("Week 1", "Week 2", "Week 3")

	Convey("Given a season where one player leads every week", t, func() {
		events := []model.ScoreEvent{
			{Player: "Leader", Week: "Week 1", Score: 1},
			{Player: "Leader", Week: "Week 2", Score: 1},
			{Player: "Leader", Week: "Week 3", Score: 1},
			{Player: "Chaser", Week: "Week 1", Score: 10},
			{Player: "Chaser", Week: "Week 2", Score: 10},
			{Player: "Chaser", Week: "Week 3", Score: 10},
		}

		Convey("When computing both views", func() {
			snaps, err := standings.ComputeTrajectory(events, weeks)
			So(err, ShouldBeNil)
			rows := standings.ComputeStandings(events)

			Convey("Then the final week ranks agree with the season table", func() {
				final := snapshotsFor(snaps, "Week 3")
				for _, row := range rows {
					So(final[row.Player], ShouldEqual, row.Rank)
				}
			})
		})
	})
}
