package targetpath

import (
	"math"
	"testing"

	"github.com/milk9111/neko/companion"
)

var testBounds = companion.Bounds{Width: 400, Height: 300}

func TestCompileScriptLinear(t *testing.T) {
	src := []byte(`
x = float(tick) * 2.0
y = height - float(tick)
`)
	s, err := CompileScript("linear", src, testBounds)
	if err != nil {
		t.Fatalf("CompileScript: %v", err)
	}
	cases := []struct {
		tick int
		want companion.Point
	}{
		{0, companion.Point{X: 0, Y: 300}},
		{10, companion.Point{X: 20, Y: 290}},
		{3, companion.Point{X: 6, Y: 297}},
	}
	for _, c := range cases {
		got, err := s.At(c.tick)
		if err != nil {
			t.Fatalf("At(%d): %v", c.tick, err)
		}
		if got != c.want {
			t.Fatalf("At(%d) = %+v, want %+v", c.tick, got, c.want)
		}
	}
}

func TestCompileScriptErrors(t *testing.T) {
	if _, err := CompileScript("broken", []byte(`x = = 1`), testBounds); err == nil {
		t.Fatalf("expected compile error")
	}

	s, err := CompileScript("runtime", []byte(`x = undefined_fn()`), testBounds)
	if err == nil {
		if _, err := s.At(0); err == nil {
			t.Fatalf("expected an error from an undefined function")
		}
	}
}

func TestCompileScriptRejectsNonFinite(t *testing.T) {
	s, err := CompileScript("nan", []byte(`
math := import("math")
x = math.sqrt(-1.0)
`), testBounds)
	if err != nil {
		t.Fatalf("CompileScript: %v", err)
	}
	if _, err := s.At(0); err == nil {
		t.Fatalf("expected non-finite target error")
	}
}

func TestBundledScripts(t *testing.T) {
	for _, name := range []string{"orbit.tengo", "wander.tengo"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScript(name, testBounds)
			if err != nil {
				t.Fatalf("LoadScript: %v", err)
			}
			for tick := 0; tick < 2000; tick += 37 {
				p, err := s.At(tick)
				if err != nil {
					t.Fatalf("At(%d): %v", tick, err)
				}
				if p.X < 0 || p.X > testBounds.Width || p.Y < 0 || p.Y > testBounds.Height {
					t.Fatalf("%s left the surface at tick %d: %+v", name, tick, p)
				}
			}
		})
	}
}

func TestOrbitPausesInCenter(t *testing.T) {
	s, err := LoadScript("orbit.tengo", testBounds)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	p, err := s.At(700)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if math.Abs(p.X-200) > 1e-9 || math.Abs(p.Y-150) > 1e-9 {
		t.Fatalf("expected centre pause, got %+v", p)
	}
}
