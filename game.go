package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/weihouang/folio/common"
	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/entity"
	"github.com/weihouang/folio/ecs/system"
	"github.com/weihouang/folio/section"
)

type Game struct {
	cfg  Config
	spec *content.Spec

	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	store     *section.Store

	input      *system.SectionInputSystem
	transition *system.SceneTransitionSystem
	camera     *system.CameraFollowSystem
	idle       *system.IdleMotionSystem
	renderer   *system.RenderSystem

	header  *HeaderUI
	watcher *content.Watcher

	releases  []func()
	closeOnce sync.Once
}

// NewGame builds the world from cfg's content and registers every
// per-frame system. Callers must Close the game.
func NewGame(cfg Config, links system.LinkSink) (*Game, error) {
	spec, err := content.Load(cfg.Content)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	sc, err := entity.Build(world, spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		spec:      spec,
		world:     world,
		scheduler: ecs.NewScheduler(),
		scene:     sc,
		store:     section.NewStore(len(spec.Sections)),
	}

	binding, releaseBinding := section.Bind(g.store, section.EbitenKeys(), section.DefaultAdvanceKey, section.DefaultRetreatKey)
	g.releases = append(g.releases, releaseBinding)

	g.input = system.NewSectionInputSystem(binding)
	g.transition = system.NewSceneTransitionSystem(g.store, spec.Damping)
	g.camera = system.NewCameraFollowSystem(g.store, spec.Damping)
	g.idle = system.NewIdleMotionSystem(content.LoadScript)
	g.renderer = system.NewRenderSystem(g.store, cfg.Dark, cfg.Debug)

	// Input first so the frame that handles a key also steps toward it.
	for _, s := range []ecs.System{
		g.input,
		g.transition,
		g.camera,
		system.NewOrbitSystem(system.EbitenCursor()),
		g.idle,
		system.NewParticleSystem(),
		system.NewPointerSystem(g.store, system.EbitenCursor()),
		system.NewLinkSystem(links, !cfg.NoOpen),
		g.renderer,
	} {
		g.releases = append(g.releases, g.scheduler.Register(s))
	}

	g.header = NewHeaderUI(spec, g.store, g.toggleTheme)
	g.header.SetDark(cfg.Dark)

	if cfg.Watch {
		if err := g.startWatcher(); err != nil {
			log.Printf("content: watch disabled: %v", err)
		}
	}
	return g, nil
}

func (g *Game) toggleTheme() {
	g.renderer.SetDark(!g.renderer.Dark())
	g.header.SetDark(g.renderer.Dark())
}

func (g *Game) startWatcher() error {
	dirs := []string{content.Dir}
	if g.cfg.Content != "" {
		dirs = append(dirs, filepath.Dir(g.cfg.Content))
	}
	var existing []string
	seen := map[string]bool{}
	for _, dir := range append(dirs, filepath.Join(content.Dir, "scripts")) {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() || seen[dir] {
			continue
		}
		seen[dir] = true
		existing = append(existing, dir)
	}
	if len(existing) == 0 {
		return errors.New("no content directory on disk")
	}

	w, err := content.NewWatcher(existing)
	if err != nil {
		return err
	}
	g.watcher = w
	log.Printf("content: watching %v", existing)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("content: changed %s", name)
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("content: watch error: %v", err)
			continue
		default:
		}
		break
	}
	if changed {
		g.reload()
	}
}

// reload rebuilds the copy and retargets in place. Current values are kept
// so nothing snaps.
func (g *Game) reload() {
	spec, err := content.Load(g.cfg.Content)
	if err != nil {
		log.Printf("content: reload: %v", err)
		return
	}
	if err := entity.Reload(g.world, g.scene, spec); err != nil {
		log.Printf("content: reload: %v", err)
		return
	}
	g.transition.SetFactor(spec.Damping)
	g.camera.SetFactor(spec.Damping)
	g.idle.Invalidate()
	g.spec = spec
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.pollWatcher()
	g.world.Clock().Tick(1 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)

	g.header.Update(g.input.Consumed())
	g.header.SetSection(g.store.Current())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	g.header.ui.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = common.BaseWidth, common.BaseHeight
	}
	vp := g.world.Viewport()
	vp.Width, vp.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases every registration and stops the watcher. Only the first
// call has an effect.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		for i := len(g.releases) - 1; i >= 0; i-- {
			g.releases[i]()
		}
		g.releases = nil
		if g.watcher != nil {
			if err := g.watcher.Close(); err != nil {
				log.Printf("content: close watcher: %v", err)
			}
			g.watcher = nil
		}
	})
}
