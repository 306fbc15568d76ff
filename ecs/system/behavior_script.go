package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tactical/ecs/component"
)

// BehaviorProgram is a compiled tengo script deciding the next behavior
// state. The script reads the intent globals (shoot, reload, crouch,
// moving) plus the current state name, and assigns the result to `next`.
// Re-running the same compiled program each tick keeps allocation out of
// the frame loop; the bridge replaces the whole program on hot reload.
type BehaviorProgram struct {
	path     string
	compiled *tengo.Compiled
}

var behaviorGlobals = []string{"shoot", "reload", "crouch", "moving"}

// CompileBehavior compiles a behavior script. The path is only used in
// error messages.
func CompileBehavior(path string, src []byte) (*BehaviorProgram, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("behavior: %s: empty script", path)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "text"))
	for _, name := range behaviorGlobals {
		if err := script.Add(name, false); err != nil {
			return nil, fmt.Errorf("behavior: %s: add global %s: %w", path, name, err)
		}
	}
	if err := script.Add("current", ""); err != nil {
		return nil, fmt.Errorf("behavior: %s: add global current: %w", path, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("behavior: %s: compile: %w", path, err)
	}

	return &BehaviorProgram{path: path, compiled: compiled}, nil
}

// Path returns the source path the program was compiled from.
func (p *BehaviorProgram) Path() string {
	return p.path
}

// Next runs the program for one tick of input.
func (p *BehaviorProgram) Next(in component.Intent, current component.State) (component.State, error) {
	c := p.compiled
	vals := map[string]any{
		"shoot":   in.Shoot,
		"reload":  in.Reload,
		"crouch":  in.Crouch,
		"moving":  in.Left || in.Right,
		"current": current.String(),
	}
	for name, v := range vals {
		if err := c.Set(name, v); err != nil {
			return current, fmt.Errorf("behavior: %s: set %s: %w", p.path, name, err)
		}
	}
	if err := c.Run(); err != nil {
		return current, fmt.Errorf("behavior: %s: run: %w", p.path, err)
	}

	name := c.Get("next").String()
	next, ok := component.StateByName(name)
	if !ok {
		return current, fmt.Errorf("behavior: %s: unknown state %q", p.path, name)
	}
	return next, nil
}
