package painterly

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.Impressionism || s.ComplementaryColor || s.StrokeSizeFactor != 1 || s.StrokeDensity != 0.5 {
		t.Errorf("DefaultStyle() = %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("DefaultStyle().Validate() = %v", err)
	}
}

func TestRenderStyleValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    float64
		density float64
		wantErr bool
	}{
		{"lower bounds", 1, 0.01, false},
		{"upper bounds", 2, 1, false},
		{"size too small", 0.9, 0.5, true},
		{"size too large", 2.1, 0.5, true},
		{"density zero", 1, 0, true},
		{"density too large", 1, 1.5, true},
		{"NaN size", math.NaN(), 0.5, true},
		{"NaN density", 1, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RenderStyle{StrokeSizeFactor: tt.size, StrokeDensity: tt.density}.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidStyle) {
				t.Errorf("err = %v, want ErrInvalidStyle", err)
			}
		})
	}
}

func TestStrokeScale(t *testing.T) {
	s := RenderStyle{StrokeSizeFactor: 2}
	if got := s.StrokeScale(1800, 900); got != 4 {
		t.Errorf("StrokeScale(1800, 900) = %v, want 4", got)
	}
	if got := s.StrokeScale(450, 900); got != 2 {
		t.Errorf("StrokeScale(450, 900) = %v, want 2", got)
	}
}

func TestCoordinateError(t *testing.T) {
	err := &CoordinateError{X: 5, Y: -1, Width: 4, Height: 3}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("CoordinateError should wrap ErrOutOfRange")
	}
	if got, want := err.Error(), "painterly: coordinate (5,-1) out of range for 4x3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
