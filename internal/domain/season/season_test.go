package season_test

import (
	"errors"
	"testing"

	"github.com/gridrank/gridrank/internal/domain/season"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a list of ordered week labels", t, func() {
		labels := []string{"Week 1", "Week 2", "Bowls"}

		Convey("When building the domain", func() {
			weeks, err := season.New(labels)
			So(err, ShouldBeNil)

			Convey("Then positions follow list order, not lexicographic order", func() {
				one, ok := weeks.Index("Week 1")
				So(ok, ShouldBeTrue)
				So(one, ShouldEqual, 0)

				bowls, ok := weeks.Index("Bowls")
				So(ok, ShouldBeTrue)
				So(bowls, ShouldEqual, 2)
			})

			Convey("And membership checks work by exact label", func() {
				So(weeks.Contains("Week 2"), ShouldBeTrue)
				So(weeks.Contains("Week 9"), ShouldBeFalse)
				So(weeks.Len(), ShouldEqual, 3)
			})

			Convey("And Labels returns a copy the caller cannot corrupt", func() {
				got := weeks.Labels()
				got[0] = "mutated"
				So(weeks.Label(0), ShouldEqual, "Week 1")
			})
		})

		Convey("When labels carry surrounding whitespace", func() {
			weeks, err := season.New([]string{" Week 1 ", "Week 2"})
			So(err, ShouldBeNil)

			Convey("Then they are trimmed before indexing", func() {
				So(weeks.Contains("Week 1"), ShouldBeTrue)
				So(weeks.Label(0), ShouldEqual, "Week 1")
			})
		})

		Convey("When the list is empty", func() {
			_, err := season.New(nil)

			Convey("Then construction fails", func() {
				So(errors.Is(err, season.ErrEmptyDomain), ShouldBeTrue)
			})
		})

		Convey("When a label is blank", func() {
			_, err := season.New([]string{"Week 1", "   "})

			Convey("Then construction fails", func() {
				So(errors.Is(err, season.ErrEmptyLabel), ShouldBeTrue)
			})
		})

		Convey("When a label repeats after trimming", func() {
			_, err := season.New([]string{"Week 1", " Week 1"})

			Convey("Then construction fails", func() {
				So(errors.Is(err, season.ErrDuplicateLabel), ShouldBeTrue)
			})
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Given the default season", t, func() {
		weeks := season.Default()

		Convey("Then it spans sixteen numbered weeks plus the bowl slate", func() {
			So(weeks.Len(), ShouldEqual, 17)
			So(weeks.Label(0), ShouldEqual, "Week 1")
			So(weeks.Label(15), ShouldEqual, "Week 16")
			So(weeks.Label(16), ShouldEqual, "Bowls")
		})

		Convey("And double-digit weeks sort positionally after single-digit ones", func() {
			nine, _ := weeks.Index("Week 9")
			ten, _ := weeks.Index("Week 10")
			So(ten, ShouldBeGreaterThan, nine)
		})
	})
}
