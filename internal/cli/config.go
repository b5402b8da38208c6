package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/gogpu/painterly"
	"github.com/gogpu/painterly/canvas"
)

// renderConfig is the style file layout. Keys not listed here are rejected.
//
//	complementary_color = false
//	impressionism = true
//	stroke_size = 1.0
//	density = 0.5
//	seed = 42
//	batch = 1000
//	max_size = 1200
type renderConfig struct {
	painterly.RenderStyle

	Seed    uint64 `toml:"seed"`     // 0 picks a random seed
	Batch   int    `toml:"batch"`    // strokes per cancellation check
	MaxSize int    `toml:"max_size"` // longest side after downscaling, 0 keeps the size
}

func defaultConfig() renderConfig {
	return renderConfig{
		RenderStyle: painterly.DefaultStyle(),
		Batch:       canvas.DefaultBatch,
	}
}

// loadConfig decodes the TOML file at path over cfg.
func loadConfig(path string, cfg *renderConfig) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c renderConfig) validate() error {
	if err := c.RenderStyle.Validate(); err != nil {
		return err
	}
	if c.Batch < 0 {
		return fmt.Errorf("%w: batch %d is negative", painterly.ErrInvalidStyle, c.Batch)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max size %d is negative", painterly.ErrInvalidStyle, c.MaxSize)
	}
	return nil
}

// seed returns the configured seed, or a random one when it is zero.
func (c renderConfig) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return rand.Uint64()
}

// styleFlags are the command-line overrides of a renderConfig.
type styleFlags struct {
	complementary bool
	flat          bool
	strokeSize    float64
	density       float64
	seed          uint64
}

func (f *styleFlags) register(fs *pflag.FlagSet) {
	def := painterly.DefaultStyle()
	fs.BoolVar(&f.complementary, "complementary", false, "shift stroke hues toward their complements")
	fs.BoolVar(&f.flat, "flat", false, "paint unrotated dots instead of edge-following strokes")
	fs.Float64Var(&f.strokeSize, "stroke-size", def.StrokeSizeFactor, "stroke size factor in [1, 2]")
	fs.Float64Var(&f.density, "density", def.StrokeDensity, "fraction of pixels painted, in [0.01, 1]")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (0 for a random one)")
}

// apply copies the flags the user set onto cfg. Unset flags keep the
// config file values.
func (f *styleFlags) apply(fs *pflag.FlagSet, cfg *renderConfig) {
	if fs.Changed("complementary") {
		cfg.ComplementaryColor = f.complementary
	}
	if fs.Changed("flat") {
		cfg.Impressionism = !f.flat
	}
	if fs.Changed("stroke-size") {
		cfg.StrokeSizeFactor = f.strokeSize
	}
	if fs.Changed("density") {
		cfg.StrokeDensity = f.density
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
}

// errBadParam marks a malformed query parameter.
var errBadParam = errors.New("bad parameter")

// applyQuery overrides cfg with the style parameters of an HTTP request.
func applyQuery(q url.Values, cfg *renderConfig) error {
	boolParam := func(name string, dst *bool, invert bool) error {
		v := q.Get(name)
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w %s=%q", errBadParam, name, v)
		}
		*dst = b != invert
		return nil
	}
	floatParam := func(name string, dst *float64) error {
		v := q.Get(name)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w %s=%q", errBadParam, name, v)
		}
		*dst = f
		return nil
	}

	if err := boolParam("complementary", &cfg.ComplementaryColor, false); err != nil {
		return err
	}
	if err := boolParam("flat", &cfg.Impressionism, true); err != nil {
		return err
	}
	if err := floatParam("stroke_size", &cfg.StrokeSizeFactor); err != nil {
		return err
	}
	if err := floatParam("density", &cfg.StrokeDensity); err != nil {
		return err
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w seed=%q", errBadParam, v)
		}
		cfg.Seed = seed
	}
	return nil
}
