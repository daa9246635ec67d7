package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/chase/common"
	"github.com/milk9111/chase/config"
	"github.com/milk9111/chase/ecs"
	"github.com/milk9111/chase/ecs/component"
	"github.com/milk9111/chase/ecs/entity"
	"github.com/milk9111/chase/ecs/system"
	"github.com/milk9111/chase/level"
	"github.com/milk9111/chase/levels"
	"github.com/milk9111/chase/nav"
	"github.com/milk9111/chase/prefabs"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler

	// Runs every frame, even paused, so the menu can be dismissed.
	inputSystem *system.InputSystem

	renderSystem *system.RenderSystem
	debugSystem  *system.DebugSystem
	levelDraw    *level.Renderer

	spawnSystem    *system.SpawnSystem
	steeringSystem *system.SteeringSystem

	configPath    string
	configWatcher *config.Watcher
	prefabWatcher *prefabs.Watcher

	paused  bool
	pauseUI *PauseUI
}

func NewGame(levelName, configPath string, debug bool) (*Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}

	walls, outlines, err := lvl.BuildNav()
	if err != nil {
		return nil, fmt.Errorf("build nav: %w", err)
	}

	flow, err := nav.NewFlowfield(lvl.Width, lvl.Height, walls)
	if err != nil {
		return nil, fmt.Errorf("new flowfield: %w", err)
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	chaserSpec, err := prefabs.LoadChaserSpec()
	if err != nil {
		return nil, err
	}

	views := &config.DebugViews{PerfOverlay: debug}

	pw := ecs.NewPhysicsWorld()
	pw.AddWalls(outlines)
	pw.AddBounds(lvl.PixelWidth(), lvl.PixelHeight())

	w := ecs.NewWorld()
	w.SetPhysicsWorld(pw)
	w.SetFlowfield(flow)
	w.SetConfig(cfg)
	w.SetDebugViews(views)
	w.SetLevel(lvl)

	if _, err := entity.NewInput(w); err != nil {
		return nil, err
	}
	if err := entity.Populate(w, lvl, playerSpec); err != nil {
		return nil, err
	}

	inputSystem := system.NewInputSystem()
	spawnSystem := system.NewSpawnSystem(chaserSpec)
	steeringSystem := system.NewSteeringSystem(chaserSpec)
	scheduler := ecs.NewScheduler(
		system.NewPlayerControllerSystem(),
		system.NewTargetSystem(),
		system.NewFlowfieldSystem(),
		spawnSystem,
		steeringSystem,
		system.NewSeparationSystem(),
		system.NewPhysicsSystem(),
		system.NewCameraSystem(),
	)

	g := &Game{
		world:          w,
		scheduler:      scheduler,
		inputSystem:    inputSystem,
		spawnSystem:    spawnSystem,
		steeringSystem: steeringSystem,
		renderSystem:   system.NewRenderSystem(),
		debugSystem:    system.NewDebugSystem(outlines),
		levelDraw:      level.NewRenderer(lvl),
		configPath:     configPath,
	}
	g.pauseUI = NewPauseUI(g)

	if watcher, err := config.NewWatcher(configPath); err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		g.configWatcher = watcher
	}
	if watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts")); err != nil {
		log.Printf("prefab watch disabled: %v", err)
	} else {
		g.prefabWatcher = watcher
	}

	return g, nil
}

func (g *Game) Update() error {
	g.drainConfigWatcher()
	g.drainPrefabWatcher()

	g.inputSystem.Update(g.world)
	if pauseToggled(g.world) {
		g.paused = !g.paused
		g.world.SetPaused(g.paused)
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.SetDelta(1.0 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY, zoom := system.CameraView(g.world)
	g.levelDraw.Draw(screen, camX, camY, zoom)
	g.renderSystem.Draw(g.world, screen)
	g.debugSystem.Draw(g.world, screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.configWatcher != nil {
		_ = g.configWatcher.Close()
	}
	if g.prefabWatcher != nil {
		_ = g.prefabWatcher.Close()
	}
}

// drainConfigWatcher applies config file changes without blocking the
// frame.
func (g *Game) drainConfigWatcher() {
	if g.configWatcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.configWatcher.Configs:
			if !ok {
				g.configWatcher = nil
				return
			}
			log.Printf("config reloaded from %s", g.configPath)
			g.world.SetConfig(cfg)
		case err, ok := <-g.configWatcher.Errors:
			if !ok {
				g.configWatcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

// drainPrefabWatcher reloads entity specs after any prefab or script
// file changes. Live entities get their tuning updated in place; bodies
// keep their current radius until respawned.
func (g *Game) drainPrefabWatcher() {
	if g.prefabWatcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.prefabWatcher.Events:
			if !ok {
				g.prefabWatcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			changed = true
		case err, ok := <-g.prefabWatcher.Errors:
			if !ok {
				g.prefabWatcher = nil
				return
			}
			log.Printf("prefab watch: %v", err)
		default:
			if changed {
				g.reloadPrefabs()
			}
			return
		}
	}
}

func (g *Game) reloadPrefabs() {
	if playerSpec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("reload player prefab: %v", err)
	} else {
		applyPlayerSpec(g.world, playerSpec)
	}

	if chaserSpec, err := prefabs.LoadChaserSpec(); err != nil {
		log.Printf("reload chaser prefab: %v", err)
	} else {
		g.spawnSystem.SetChaserSpec(chaserSpec)
		g.steeringSystem.SetChaserSpec(chaserSpec)
	}
}

func applyPlayerSpec(w *ecs.World, spec *prefabs.PlayerSpec) {
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.PlayerControllerComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, controller *component.PlayerController) {
			controller.MoveSpeed = spec.MoveSpeed
			controller.BoostMultiplier = spec.BoostMultiplier
			controller.Accel = spec.Accel
			controller.Brake = spec.Brake
			controller.Drag = spec.Drag
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.Color = spec.Color.RGBA8()
			}
		})
}

// pauseToggled reports whether the pause key went down this frame. The
// input system records it on the snapshot entity; we also run the input
// system while paused so the menu can be dismissed from the keyboard.
func pauseToggled(w *ecs.World) bool {
	inputEntity, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return false
	}
	input, ok := ecs.Get(w, inputEntity, component.InputComponent.Kind())
	if !ok {
		return false
	}
	return input.Pause
}
