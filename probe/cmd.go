package probe

import (
	"fmt"
	"log/slog"
	"time"

	"nativeimg/arrayimg"
	"nativeimg/logging"
	"nativeimg/parallel"
	"nativeimg/pixel"

	"github.com/alecthomas/kong"
)

// InspectCmd reports the storage an image would need without allocating it.
type InspectCmd struct {
	ImageParams `embed:""`
}

func (c *InspectCmd) Validate(kctx *kong.Context) error {
	return c.Check()
}

func (c *InspectCmd) Run(pool *parallel.Pool) error {
	typ, err := pixel.Lookup(c.Type)
	if err != nil {
		return err
	}
	pixels, err := arrayimg.NumPixels(c.Dims)
	if err != nil {
		return err
	}
	epp := typ.EntitiesPerPixel()
	units, err := arrayimg.NumEntities(c.Dims, epp)
	if err != nil {
		return err
	}

	registry := c.Registry()
	supported := registry.Supports(typ.Kind(), c.Flags())
	slog.Info("inspect",
		"type", typ.Name(),
		"dims", c.Dims,
		"pixels", pixels,
		"entitiesPerPixel", epp.String(),
		"units", units,
		"bytes", int64(units)*int64(typ.Kind().Bytes()),
		"kind", typ.Kind().String(),
		"flags", c.Flags().String(),
		"registry", registry.Name(),
		"supported", supported)

	if !supported {
		_, err := registry.Lookup(typ.Kind(), c.Flags())
		return err
	}
	return nil
}

// FillCmd builds an image, fills it with a pattern in parallel and reports
// its checksum.
type FillCmd struct {
	ImageParams `embed:""`
	Pattern     string `help:"Fill pattern" enum:"ramp,random,checker" default:"ramp"`
	Seed        uint64 `help:"Seed for the random pattern" default:"1"`
	Grain       int64  `help:"Largest number of pixels handled by one task" default:"65536"`
}

func (c *FillCmd) Validate(kctx *kong.Context) error {
	if c.Grain < 1 {
		return fmt.Errorf("invalid grain: %d", c.Grain)
	}
	return c.Check()
}

func (c *FillCmd) Run(pool *parallel.Pool) error {
	img, err := c.Build()
	if err != nil {
		return err
	}
	logger := logging.Logger().With("image", img.String())

	start := time.Now()
	if err := Fill(pool, img, c.Pattern, c.Seed, c.Grain); err != nil {
		return err
	}
	logger.Debug("filled", "pattern", c.Pattern, "elapsed", time.Since(start))

	stats := Checksum(pool, img, c.Grain)
	slog.Info("stats",
		"pixels", img.Size(),
		"sum", stats.Sum,
		"nonzero", stats.NonZero,
		"dirty", img.Dirty(),
		"workers", pool.Workers())
	return nil
}
