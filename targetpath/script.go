package targetpath

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/neko/common"
	"github.com/milk9111/neko/companion"
	"github.com/milk9111/neko/prefabs"
)

// Script is a Path computed by a tengo program. The program sees the
// globals tick, width and height and must assign x and y.
type Script struct {
	name string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

// LoadScript compiles the named prefab script for a surface of extent b.
func LoadScript(name string, b companion.Bounds) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("targetpath: load %s: %w", name, err)
	}
	return CompileScript(name, src, b)
}

func CompileScript(name string, src []byte, b companion.Bounds) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	globals := []struct {
		name  string
		value any
	}{
		{"tick", 0},
		{"width", b.Width},
		{"height", b.Height},
		{"x", 0.0},
		{"y", 0.0},
	}
	for _, g := range globals {
		if err := script.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("targetpath: %s: add %s: %w", name, g.name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("targetpath: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Name() string { return s.name }

func (s *Script) At(tick int) (companion.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("tick", tick); err != nil {
		return companion.Point{}, fmt.Errorf("targetpath: %s: set tick: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return companion.Point{}, fmt.Errorf("targetpath: run %s: %w", s.name, err)
	}

	p := companion.Point{
		X: s.compiled.Get("x").Float(),
		Y: s.compiled.Get("y").Float(),
	}
	if !common.Finite(p.X, p.Y) {
		return companion.Point{}, fmt.Errorf("targetpath: %s: non-finite target (%v, %v) at tick %d", s.name, p.X, p.Y, tick)
	}
	return p, nil
}
