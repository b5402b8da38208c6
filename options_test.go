package painterly

import "testing"

func TestDefaultFieldOptions(t *testing.T) {
	o := defaultFieldOptions()
	if !o.blur || o.blurRadius >= 0 || o.workers != 1 {
		t.Errorf("defaultFieldOptions() = %+v", o)
	}
}

func TestFieldOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []FieldOption
		want fieldOptions
	}{
		{"blur radius", []FieldOption{WithBlurRadius(3)}, fieldOptions{blur: true, blurRadius: 3, workers: 1}},
		{"without blur", []FieldOption{WithoutBlur()}, fieldOptions{blur: false, blurRadius: -1, workers: 1}},
		{"later option wins", []FieldOption{WithoutBlur(), WithBlurRadius(1.5)}, fieldOptions{blur: true, blurRadius: 1.5, workers: 1}},
		{"workers", []FieldOption{WithWorkers(4)}, fieldOptions{blur: true, blurRadius: -1, workers: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultFieldOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o != tt.want {
				t.Errorf("options = %+v, want %+v", o, tt.want)
			}
		})
	}
}

func TestWithoutBlurKeepsRawResponse(t *testing.T) {
	// Single bright pixel: the raw Scharr response is zero two pixels away,
	// the blurred one is not.
	r := NewRaster(9, 9)
	r.SetRGB(4, 4, RGB{R: 255, G: 255, B: 255})

	raw, err := NewGradientField(r, WithoutBlur())
	if err != nil {
		t.Fatal(err)
	}
	blurred, err := NewGradientField(r, WithBlurRadius(2))
	if err != nil {
		t.Fatal(err)
	}

	if m := raw.Magnitude(4, 7); m != 0 {
		t.Errorf("raw magnitude at (4,7) = %v, want 0", m)
	}
	if m := blurred.Magnitude(4, 7); m == 0 {
		t.Error("blurred magnitude at (4,7) = 0, want spread response")
	}
}

func TestWithBlurRadiusZeroIsFinal(t *testing.T) {
	// 100×100 vertical edge: the default radius of 2 would spread the
	// response five columns away, an explicit 0 must not.
	r := NewRaster(100, 100)
	for y := range 100 {
		for x := 50; x < 100; x++ {
			r.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
		}
	}

	zero, err := NewGradientField(r, WithBlurRadius(0))
	if err != nil {
		t.Fatal(err)
	}
	def, err := NewGradientField(r, WithBlurRadius(-1))
	if err != nil {
		t.Fatal(err)
	}

	if m := zero.Magnitude(45, 50); m != 0 {
		t.Errorf("WithBlurRadius(0) Magnitude(45,50) = %v, want 0 (unblurred)", m)
	}
	if m := def.Magnitude(45, 50); m == 0 {
		t.Error("negative radius should fall back to the default blur")
	}
}
