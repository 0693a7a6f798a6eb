// Command nekosim drives a companion headlessly along a scripted or
// recorded target path and prints every decision as YAML.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/neko/companion"
	"github.com/milk9111/neko/obj"
	"github.com/milk9111/neko/prefabs"
	"github.com/milk9111/neko/targetpath"
)

type options struct {
	config   string
	path     string
	ticks    int
	seed     uint64
	sleepAt  int
	wakeAt   int
	realtime bool
}

// record is one tick of output.
type record struct {
	Tick     int     `yaml:"tick"`
	TargetX  float64 `yaml:"target_x"`
	TargetY  float64 `yaml:"target_y"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Mode     string  `yaml:"mode"`
	Idle     string  `yaml:"idle,omitempty"`
	Cooldown int     `yaml:"cooldown,omitempty"`
	Key      string  `yaml:"key"`
	Frame    int     `yaml:"frame"`
	CellX    int     `yaml:"cell_x"`
	CellY    int     `yaml:"cell_y"`
	Size     int     `yaml:"size"`
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", prefabs.DefaultCompanion, "companion prefab (basename in prefabs/)")
	flag.StringVar(&opts.path, "path", "", "target path: a .tengo script or a trace .yaml (default: the prefab's path_script)")
	flag.IntVar(&opts.ticks, "ticks", 200, "number of ticks to simulate")
	flag.Uint64Var(&opts.seed, "seed", 0, "idle RNG seed (0 uses the prefab's seed)")
	flag.IntVar(&opts.sleepAt, "sleep-at", -1, "put the companion to sleep before this tick")
	flag.IntVar(&opts.wakeAt, "wake-at", -1, "wake the companion before this tick")
	flag.BoolVar(&opts.realtime, "realtime", false, "pace ticks at the prefab's tick period")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, w io.Writer) error {
	spec, err := prefabs.LoadCompanionSpec(opts.config)
	if err != nil {
		return err
	}
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	b := companion.Bounds{Width: spec.Bounds.Width, Height: spec.Bounds.Height}

	path, err := loadPath(opts.path, spec.PathScript, b)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = spec.Seed
	}
	var copts []companion.Option
	if seed != 0 {
		copts = append(copts, companion.WithRand(companion.NewSeededRand(seed)))
	}

	reg := obj.NewRegistry()
	feed := obj.NewTargetFeed()
	t, err := obj.Spawn(reg, feed, cfg, copts...)
	if err != nil {
		return err
	}
	defer t.Destroy()

	var pace <-chan time.Time
	if opts.realtime {
		ticker := time.NewTicker(spec.TickPeriod())
		defer ticker.Stop()
		pace = ticker.C
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	for i := 0; i < opts.ticks; i++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		switch i {
		case opts.sleepAt:
			t.Sleep()
		case opts.wakeAt:
			t.Wake()
		}

		if path != nil {
			p, err := path.At(i)
			if err != nil {
				return fmt.Errorf("nekosim: tick %d: %w", i, err)
			}
			feed.Publish(p)
		}

		d, err := t.Tick()
		if err != nil {
			return fmt.Errorf("nekosim: tick %d: %w", i, err)
		}
		target := t.Companion().Target()
		if err := enc.Encode(newRecord(i, target, d)); err != nil {
			return fmt.Errorf("nekosim: encode: %w", err)
		}
	}
	return nil
}

// loadPath resolves the target path. An empty name falls back to the
// prefab's script; no path at all leaves the companion at rest.
func loadPath(name, fallback string, b companion.Bounds) (targetpath.Path, error) {
	if name == "" {
		name = fallback
	}
	switch {
	case name == "":
		return nil, nil
	case strings.HasSuffix(name, ".tengo"):
		return targetpath.LoadScript(name, b)
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return targetpath.LoadTrace(name)
	}
	return nil, errors.New("nekosim: path must be a .tengo script or a .yaml trace: " + name)
}

func newRecord(tick int, target companion.Point, d companion.Decision) record {
	r := record{
		Tick:     tick,
		TargetX:  target.X,
		TargetY:  target.Y,
		X:        d.Position.X,
		Y:        d.Position.Y,
		Mode:     d.State.Mode.String(),
		Cooldown: d.State.Cooldown,
		Key:      string(d.Key),
		Frame:    d.Frame,
		CellX:    d.Cell.X,
		CellY:    d.Cell.Y,
		Size:     int(d.Size),
	}
	if d.State.IdleKind != companion.IdleNone {
		r.Idle = d.State.IdleKind.String()
	}
	return r
}
