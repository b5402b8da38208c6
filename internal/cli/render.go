package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output PNG path
	config  string // optional TOML style file
	batch   int    // strokes per cancellation check
	maxSize int    // longest side after downscaling
	style   styleFlags
}

// newRenderCmd creates the render command, which paints one image file.
// Flags override values from --config, which override the defaults.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [image]",
		Short: "Paint an image and write it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], opts.output, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>_painted.png)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML style file")
	cmd.Flags().IntVar(&opts.batch, "batch", 0, "strokes drawn between cancellation checks")
	cmd.Flags().IntVar(&opts.maxSize, "max-size", 0, "downscale so the longest side is at most this many pixels")
	opts.style.register(cmd.Flags())

	return cmd
}

// resolve merges defaults, the config file and set flags, then validates.
func (o *renderOpts) resolve(cmd *cobra.Command) (renderConfig, error) {
	cfg := defaultConfig()
	if o.config != "" {
		if err := loadConfig(o.config, &cfg); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	o.style.apply(fs, &cfg)
	if fs.Changed("batch") {
		cfg.Batch = o.batch
	}
	if fs.Changed("max-size") {
		cfg.MaxSize = o.maxSize
	}
	return cfg, cfg.validate()
}

func runRender(ctx context.Context, input, output string, cfg renderConfig) error {
	logger := loggerFromContext(ctx)
	if output == "" {
		output = defaultOutput(input)
	}

	src, format, err := loadRaster(input, cfg.MaxSize)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s (%s, %dx%d)", input, format, src.Width(), src.Height())

	prog := newProgress(logger)
	c, err := paint(ctx, src, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	prog.done(fmt.Sprintf("Painted %d strokes", c.Drawn()))

	if err := c.SavePNG(output); err != nil {
		return err
	}
	logger.Infof("Wrote %s", output)
	return nil
}

// defaultOutput derives "photo_painted.png" from "photo.jpg".
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_painted.png"
}
