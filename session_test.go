package painterly

import (
	"errors"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

func TestNewSessionInvalidRaster(t *testing.T) {
	_, err := NewSession(NewRaster(0, 0), DefaultStyle(), NewRand(1))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestSessionDrainsQueue(t *testing.T) {
	src := uniformRaster(16, 16, RGB{50, 100, 150})
	style := DefaultStyle()
	style.StrokeDensity = 1

	s, err := NewSession(src, style, NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	if s.Total() != 256 || s.Remaining() != 256 || s.Done() {
		t.Fatalf("Total=%d Remaining=%d Done=%v, want 256/256/false", s.Total(), s.Remaining(), s.Done())
	}

	seen := map[[2]int]bool{}
	batch := s.Next(100)
	if len(batch) != 100 || s.Remaining() != 156 {
		t.Fatalf("Next(100) = %d strokes, Remaining = %d", len(batch), s.Remaining())
	}
	for !s.Done() {
		batch = append(batch, s.Next(100)...)
	}
	for _, st := range batch {
		key := [2]int{st.Center.X, st.Center.Y}
		if seen[key] {
			t.Fatalf("pixel %v drawn twice", key)
		}
		seen[key] = true
	}
	if len(seen) != 256 {
		t.Errorf("drew %d distinct pixels, want 256", len(seen))
	}
	if got := s.Next(10); got != nil {
		t.Errorf("Next on empty queue = %v, want nil", got)
	}
	if got := s.Next(0); got != nil {
		t.Errorf("Next(0) = %v, want nil", got)
	}
}

func TestSessionReset(t *testing.T) {
	src := uniformRaster(10, 10, RGB{1, 2, 3})
	s, err := NewSession(src, DefaultStyle(), NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	field := s.Field()
	s.Next(5)

	flat := RenderStyle{StrokeSizeFactor: 2, StrokeDensity: 1}
	s.Reset(flat)
	if s.Total() != 100 || s.Remaining() != 100 {
		t.Errorf("after Reset Total=%d Remaining=%d, want 100", s.Total(), s.Remaining())
	}
	if s.Field() != field {
		t.Error("Reset should keep the gradient field")
	}
	if s.Style() != flat {
		t.Errorf("Style() = %+v, want %+v", s.Style(), flat)
	}
	for _, st := range s.Next(10) {
		if st.Length != 8 || st.Rotation != 0 {
			t.Errorf("flat stroke = %+v", st)
		}
	}

	s.Reset(RenderStyle{StrokeSizeFactor: 1, StrokeDensity: 0})
	if !s.Done() {
		t.Error("density 0 should leave nothing to draw")
	}
}

func TestSessionReproducible(t *testing.T) {
	src := NewRaster(12, 9)
	for y := range 9 {
		for x := range 12 {
			src.SetRGB(x, y, RGB{float64(x * 20), float64(y * 25), 90})
		}
	}

	run := func() []Stroke {
		s, err := NewSession(src, DefaultStyle(), NewRand(42))
		if err != nil {
			t.Fatal(err)
		}
		var out []Stroke
		for !s.Done() {
			out = append(out, s.Next(7)...)
		}
		return out
	}

	if diff := gocmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different strokes (-first +second):\n%s", diff)
	}
}

func TestSessionBounds(t *testing.T) {
	s, err := NewSession(NewRaster(5, 3), DefaultStyle(), NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if b := s.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("Bounds() = %v, want 5x3", b)
	}
}
