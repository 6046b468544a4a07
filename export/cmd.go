package export

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"nativeimg/palette"
	"nativeimg/parallel"
	"nativeimg/probe"

	"github.com/alecthomas/kong"
)

// CLICmd fills an image and writes one of its planes to a file.
type CLICmd struct {
	probe.ImageParams `embed:""`
	Pattern           string  `help:"Fill pattern" enum:"ramp,random,checker" default:"checker"`
	Seed              uint64  `help:"Seed for the random pattern" default:"1"`
	Grain             int64   `help:"Largest number of pixels handled by one task" default:"65536"`
	Fixed             []int64 `help:"Positions along dimensions beyond the second" sep:","`
	Palette           string  `help:"Palette name (bw, gray4, gray16, gray256) or PAL file in RIFF format to apply" group:"palette"`
	Dither            bool    `help:"Apply dithering" default:"false" group:"palette"`
	Scale             int     `help:"Integer upscaling factor" default:"1"`
	Format            string  `help:"Output format" enum:"png,gif,jpeg,bmp,tiff" default:"png"`
	Out               string  `help:"Output file" default:"plane.png" type:"path"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Check(); err != nil {
		return err
	}
	if c.Grain < 1 {
		return fmt.Errorf("invalid grain: %d", c.Grain)
	}
	if c.Scale < 1 {
		return fmt.Errorf("invalid scale: %d", c.Scale)
	}
	if extra := max(len(c.Dims)-2, 0); len(c.Fixed) != extra {
		return fmt.Errorf("%d dimensions need %d fixed positions, got %d", len(c.Dims), extra, len(c.Fixed))
	}
	if c.Palette != "" {
		if _, err := palette.Load(c.Palette); err != nil {
			return err
		}
	}
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out
	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	img, err := c.Build()
	if err != nil {
		return err
	}
	logger := slog.Default().With("image", img.String(), "out", c.Out)

	if err := probe.Fill(pool, img, c.Pattern, c.Seed, c.Grain); err != nil {
		return err
	}

	plane, err := Plane(img, c.Fixed...)
	if err != nil {
		return err
	}
	var out image.Image = plane
	if c.Palette != "" {
		pal, err := palette.Load(c.Palette)
		if err != nil {
			return err
		}
		logger.Info("applying palette", "palette", c.Palette, "colors", len(pal))
		out = Repalette(plane, pal, c.Dither)
	}
	out = Scale(out, c.Scale)

	if err := Save(out, c.Format, c.Out); err != nil {
		return err
	}
	logger.Info("saved", "format", c.Format, "bounds", out.Bounds())
	return nil
}
