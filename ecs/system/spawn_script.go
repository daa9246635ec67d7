package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/chase/prefabs"
)

// spawnScriptRuntime runs the optional per-spawn tengo hook. The script
// defines on_spawn(engine, state); state persists across spawns.
type spawnScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
}

const spawnDispatchScript = `
if __phase == "spawn" {
	on_spawn(__engine, __state)
}
`

// spawnTweak is what a script may adjust for a single spawn.
type spawnTweak struct {
	offsetX, offsetY float64
	forceScale       float64
}

func newSpawnScriptRuntime(scriptPath string) (*spawnScriptRuntime, error) {
	scriptBytes, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + spawnDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &spawnScriptRuntime{
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}

	// First run only defines globals so a missing on_spawn fails here,
	// at load, not mid-game.
	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := rt.runPhase("noop", noop); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("on_spawn") {
		return nil, fmt.Errorf("spawn script %s does not define on_spawn", scriptPath)
	}

	return rt, nil
}

func (rt *spawnScriptRuntime) runPhase(phase string, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil spawn script runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// run invokes on_spawn and returns the tweak the script requested.
func (rt *spawnScriptRuntime) run(spawnerX, spawnerY, playerX, playerY float64, count int) (spawnTweak, error) {
	tweak := spawnTweak{forceScale: 1}

	values := map[string]tengo.Object{}
	values["get_count"] = &tengo.UserFunction{Name: "get_count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(count)}, nil
	}}
	values["get_spawner_position"] = &tengo.UserFunction{Name: "get_spawner_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: spawnerX}, &tengo.Float{Value: spawnerY}}}, nil
	}}
	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: playerX}, &tengo.Float{Value: playerY}}}, nil
	}}
	values["set_offset"] = &tengo.UserFunction{Name: "set_offset", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, xok := tengo.ToFloat64(args[0])
		y, yok := tengo.ToFloat64(args[1])
		if !xok || !yok {
			return tengo.FalseValue, nil
		}
		tweak.offsetX = x
		tweak.offsetY = y
		return tengo.TrueValue, nil
	}}
	values["set_force_scale"] = &tengo.UserFunction{Name: "set_force_scale", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		scale, ok := tengo.ToFloat64(args[0])
		if !ok || scale <= 0 {
			return tengo.FalseValue, nil
		}
		tweak.forceScale = scale
		return tengo.TrueValue, nil
	}}

	engine := &tengo.ImmutableMap{Value: values}
	if err := rt.runPhase("spawn", engine); err != nil {
		return spawnTweak{forceScale: 1}, err
	}
	return tweak, nil
}
