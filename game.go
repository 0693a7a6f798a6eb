package main

import (
	"fmt"
	"image/color"
	"log"
	"path"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/neko/common"
	"github.com/milk9111/neko/companion"
	"github.com/milk9111/neko/obj"
	"github.com/milk9111/neko/prefabs"
	"github.com/milk9111/neko/targetpath"
)

type GameOptions struct {
	Config    string
	Sheet     string
	Debug     bool
	Watch     bool
	Reduced   bool
	Autopilot bool
}

type Game struct {
	frames int
	opts   GameOptions

	spec     prefabs.CompanionSpec
	specMod  time.Time
	input    *Input
	registry *obj.Registry
	feed     *obj.TargetFeed
	clock    *obj.Clock
	pets     []*pet
	sheet    *Sheet
	face     ebtext.Face

	autopilot     targetpath.Path
	autopilotOn   bool
	autopilotTick int

	panel     *ebitenui.UI
	showPanel bool
	watcher   *prefabs.Watcher
}

// pet is one live companion and the last frame it asked for.
type pet struct {
	tracked *obj.Tracked
	last    companion.Decision
	ready   bool
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadCompanionSpec(opts.Config)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		spec:     spec,
		input:    NewInput(),
		registry: obj.NewRegistry(),
		feed:     obj.NewTargetFeed(),
		clock:    obj.NewClock(spec.TickPeriod()),
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.specMod, _ = prefabs.ModTime(opts.Config)
	g.sheet = g.loadSheet()

	if opts.Reduced {
		log.Printf("neko: reduced motion requested, companions disabled")
	} else if err := g.spawn(nil); err != nil {
		return nil, err
	}

	g.loadAutopilot()
	g.autopilotOn = opts.Autopilot && g.autopilot != nil
	g.panel = NewControlUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("neko: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) loadSheet() *Sheet {
	p := g.opts.Sheet
	if p == "" {
		p = g.spec.Sheet
	}
	if p == "" {
		return PlaceholderSheet()
	}
	s, err := LoadSheet(p)
	if err != nil {
		log.Printf("neko: %v; using placeholder sheet", err)
		return PlaceholderSheet()
	}
	return s
}

func (g *Game) loadAutopilot() {
	if g.spec.PathScript == "" {
		g.autopilot = nil
		g.autopilotOn = false
		return
	}
	s, err := targetpath.LoadScript(g.spec.PathScript, g.bounds())
	if err != nil {
		log.Printf("neko: autopilot: %v", err)
		return
	}
	g.autopilot = s
	g.autopilotTick = 0
}

func (g *Game) bounds() companion.Bounds {
	return companion.Bounds{Width: g.spec.Bounds.Width, Height: g.spec.Bounds.Height}
}

// spawn adds a companion built from the current prefab. A non-nil origin
// replaces the prefab's.
func (g *Game) spawn(origin *companion.Point) error {
	cfg, err := g.spec.Config()
	if err != nil {
		return err
	}
	if g.registry.Active(cfg.ID) {
		cfg.ID = g.registry.NextID()
	}
	if origin != nil {
		cfg.Origin = origin
	}

	var opts []companion.Option
	if g.spec.Seed != 0 {
		opts = append(opts, companion.WithRand(companion.NewSeededRand(g.spec.Seed+uint64(cfg.ID))))
	}

	t, err := obj.Spawn(g.registry, g.feed, cfg, opts...)
	if err != nil {
		return fmt.Errorf("neko: spawn %d: %w", cfg.ID, err)
	}
	g.pets = append(g.pets, &pet{tracked: t})
	return nil
}

// Spawn adds a companion resting where the pointer is.
func (g *Game) Spawn() {
	if g.opts.Reduced {
		return
	}
	origin := g.input.Pointer
	if err := g.spawn(&origin); err != nil {
		log.Printf("%v", err)
	}
}

// DestroyLast removes the most recently spawned companion.
func (g *Game) DestroyLast() {
	if len(g.pets) == 0 {
		return
	}
	last := g.pets[len(g.pets)-1]
	last.tracked.Destroy()
	g.pets = g.pets[:len(g.pets)-1]
}

func (g *Game) SleepAll() {
	for _, p := range g.pets {
		p.tracked.Sleep()
	}
}

func (g *Game) WakeAll() {
	for _, p := range g.pets {
		p.tracked.Wake()
	}
}

// ToggleSleep wakes everyone if any companion sleeps, otherwise puts all
// of them to sleep.
func (g *Game) ToggleSleep() {
	for _, p := range g.pets {
		if !p.tracked.Companion().Awake() {
			g.WakeAll()
			return
		}
	}
	g.SleepAll()
}

func (g *Game) SetSize(size companion.Size) {
	for _, p := range g.pets {
		if err := p.tracked.Companion().SetSize(size); err != nil {
			log.Printf("neko: resize %d: %v", p.tracked.Companion().ID(), err)
		}
	}
}

func (g *Game) ToggleAutopilot() {
	if g.autopilot == nil {
		log.Printf("neko: no path script configured")
		return
	}
	g.autopilotOn = !g.autopilotOn
}

// reload rebuilds every companion from a fresh prefab. The old ones stay
// when the new prefab is broken.
func (g *Game) reload() {
	mod, ok := prefabs.ModTime(g.opts.Config)
	if ok && !mod.After(g.specMod) {
		return
	}
	spec, err := prefabs.LoadCompanionSpec(g.opts.Config)
	if err != nil {
		log.Printf("neko: reload: %v", err)
		return
	}
	if _, err := spec.Config(); err != nil {
		log.Printf("neko: reload: %v", err)
		return
	}

	count := len(g.pets)
	for len(g.pets) > 0 {
		g.DestroyLast()
	}
	g.spec = spec
	g.specMod = mod
	g.clock = obj.NewClock(spec.TickPeriod())
	g.sheet = g.loadSheet()
	g.loadAutopilot()

	if g.opts.Reduced {
		return
	}
	for range max(count, 1) {
		if err := g.spawn(nil); err != nil {
			log.Printf("neko: reload: %v", err)
			return
		}
	}
	log.Printf("neko: reloaded %s", g.opts.Config)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			switch {
			case ch.Kind == prefabs.SpecChanged && ch.Name() == path.Base(g.opts.Config):
				g.reload()
			case ch.Kind == prefabs.ScriptChanged && ch.Name() == path.Base(g.spec.PathScript):
				g.loadAutopilot()
				log.Printf("neko: reloaded path script %s", ch.Name())
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("neko: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.input.Update()

	switch {
	case g.input.ToggleSleep:
		g.ToggleSleep()
	case g.input.Spawn:
		g.Spawn()
	case g.input.Destroy:
		g.DestroyLast()
	case g.input.TogglePanel:
		g.showPanel = !g.showPanel
	case g.input.ToggleAutopilot:
		g.ToggleAutopilot()
	case g.input.Size != 0:
		g.SetSize(g.input.Size)
	}

	if g.showPanel {
		g.panel.Update()
	}

	if !g.autopilotOn && g.input.PointerMoved {
		g.feed.Publish(g.input.Pointer)
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	for range g.clock.Advance(time.Second / time.Duration(tps)) {
		g.tick()
	}

	return nil
}

// tick runs one engine tick for every companion.
func (g *Game) tick() {
	if g.autopilotOn {
		p, err := g.autopilot.At(g.autopilotTick)
		if err != nil {
			log.Printf("neko: autopilot: %v", err)
			g.autopilotOn = false
		} else {
			g.feed.Publish(p)
		}
		g.autopilotTick++
	}

	live := g.pets[:0]
	for _, p := range g.pets {
		d, err := p.tracked.Tick()
		if err != nil {
			log.Printf("neko: companion %d: %v", p.tracked.Companion().ID(), err)
			p.tracked.Destroy()
			continue
		}
		p.last, p.ready = d, true
		live = append(live, p)
	}
	g.pets = live
}

var background = color.NRGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, p := range g.pets {
		if p.ready {
			g.sheet.Draw(screen, p.last)
		}
	}

	if g.opts.Debug {
		g.drawDebug(screen)
	}
	if g.opts.Reduced {
		ebitenutil.DebugPrintAt(screen, "reduced motion: companions disabled", 8, common.BaseHeight-20)
	}
	if g.showPanel {
		g.panel.Draw(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	mode := "pointer"
	if g.autopilotOn {
		mode = "autopilot"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Ticks: %d    Target: %s", g.frames, ebiten.ActualFPS(), g.clock.Ticks(), mode))

	for _, p := range g.pets {
		if !p.ready {
			continue
		}
		d := p.last
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(d.Position.X-d.Size.Half(), d.Position.Y+d.Size.Half()+2)
		op.ColorScale.ScaleWithColor(colornames.Darkslategray)
		label := fmt.Sprintf("#%d %s %s/%d", p.tracked.Companion().ID(), d.State.Mode, d.Key, d.Frame)
		ebtext.Draw(screen, label, g.face, op)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
