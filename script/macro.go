package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dashphys/obj"
)

// holdDispatchScript is appended to every macro. A macro defines
//
//	hold := func(frame, player) { ... }
//
// returning a truthy value on frames where the jump input is held.
const holdDispatchScript = `
__held := hold(__frame, __player)
`

// Macro is a compiled input script.
type Macro struct {
	name     string
	compiled *tengo.Compiled
}

// View is the read-only player state a macro can observe.
type View struct {
	X, Y      float64
	VelocityY float64
	OnGround  bool
	Dead      bool
	Mode      string
}

// ViewOf captures p for a macro.
func ViewOf(p *obj.Player) View {
	return View{
		X:         p.X,
		Y:         p.Y,
		VelocityY: p.VelocityY,
		OnGround:  p.OnGround(),
		Dead:      p.Dead(),
		Mode:      p.Mode.String(),
	}
}

func (v View) object() map[string]any {
	return map[string]any{
		"x":         v.X,
		"y":         v.Y,
		"vy":        v.VelocityY,
		"on_ground": v.OnGround,
		"dead":      v.Dead,
		"mode":      v.Mode,
	}
}

// Compile builds a macro from tengo source. name is only used in errors.
func Compile(name string, src []byte) (*Macro, error) {
	full := make([]byte, 0, len(src)+len(holdDispatchScript)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, holdDispatchScript...)

	s := tengo.NewScript(full)
	_ = s.Add("__frame", 0)
	_ = s.Add("__player", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Macro{name: name, compiled: compiled}, nil
}

// Load compiles the macro at path, falling back to the embedded macros.
func Load(path string) (*Macro, error) {
	src, err := LoadSource(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return Compile(path, src)
}

func (m *Macro) Name() string {
	return m.name
}

// Held runs the macro for frame.
func (m *Macro) Held(frame int, view View) (bool, error) {
	if err := m.compiled.Set("__frame", frame); err != nil {
		return false, err
	}
	if err := m.compiled.Set("__player", view.object()); err != nil {
		return false, err
	}
	if err := m.compiled.Run(); err != nil {
		return false, fmt.Errorf("script: %s frame %d: %w", m.name, frame, err)
	}
	return m.compiled.Get("__held").Bool(), nil
}
