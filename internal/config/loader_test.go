package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gridrank/gridrank/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"GRIDRANK_CONFIG",
		"GRIDRANK_LOG_LEVEL",
		"GRIDRANK_ADDR",
		"GRIDRANK_QUEUE_SIZE",
		"GRIDRANK_WORKER_COUNT",
		"GRIDRANK_DEDUPE_SIZE",
		"GRIDRANK_PICKS_FILE",
		"GRIDRANK_LOGOS_FILE",
		"GRIDRANK_WINNERS_FILE",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	Convey("Given a config loader", t, func() {
		ctx := context.Background()

		Convey("When loading with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			Convey("Then defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.QueueSize, ShouldEqual, 10_000)
				So(cfg.WorkerCount, ShouldEqual, runtime.NumCPU()*2)
				So(cfg.DedupeSize, ShouldEqual, 50_000)
				So(cfg.PicksFile, ShouldBeEmpty)
			})

			Convey("And the default season runs through the bowls", func() {
				So(cfg.Weeks, ShouldHaveLength, 17)
				So(cfg.Weeks[0], ShouldEqual, "Week 1")
				So(cfg.Weeks[16], ShouldEqual, "Bowls")
			})
		})

		Convey("When environment variables are set", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GRIDRANK_ADDR", ":8080")
			_ = os.Setenv("GRIDRANK_QUEUE_SIZE", "5000")
			_ = os.Setenv("GRIDRANK_WORKER_COUNT", "4")
			_ = os.Setenv("GRIDRANK_PICKS_FILE", "picks.csv")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			Convey("Then env values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.QueueSize, ShouldEqual, 5000)
				So(cfg.WorkerCount, ShouldEqual, 4)
				So(cfg.PicksFile, ShouldEqual, "picks.csv")
			})

			Convey("And untouched fields keep their defaults", func() {
				So(cfg.DedupeSize, ShouldEqual, 50_000)
			})
		})

		Convey("When a YAML file is provided", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yamlContent := `
addr: ":7070"
log_level: debug
weeks:
  - "Week 1"
  - "Week 2"
  - "Championship"
`
			So(os.WriteFile(path, []byte(yamlContent), 0o600), ShouldBeNil)
			_ = os.Setenv("GRIDRANK_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			Convey("Then file values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.Weeks, ShouldResemble, []string{"Week 1", "Week 2", "Championship"})
			})

			Convey("And env still wins over the file", func() {
				_ = os.Setenv("GRIDRANK_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
			})
		})

		Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GRIDRANK_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			Convey("Then loading fails with the load kind", func() {
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When the loaded config clears the listen address", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			So(os.WriteFile(path, []byte(`addr: ""`), 0o600), ShouldBeNil)
			_ = os.Setenv("GRIDRANK_CONFIG", path)
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			Convey("Then validation rejects it", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
