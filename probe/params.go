// Package probe holds the commands that build, inspect and fill images
// from the command line.
package probe

import (
	"fmt"

	"nativeimg/access"
	"nativeimg/arrayimg"
	"nativeimg/pixel"
)

// ImageParams describe the image a command works on.
type ImageParams struct {
	Type     string  `help:"Pixel type: bit, u2, u4, u12, u8, u16, u32, u64 or uN for N in 1..64" default:"u8"`
	Dims     []int64 `help:"Image dimensions, first varies fastest" sep:"," default:"256,256"`
	Dirty    bool    `help:"Track writes to the storage" default:"false"`
	Volatile bool    `help:"Use storage with a validity flag" default:"false"`
	Backing  string  `help:"Storage medium" enum:"array,buffer" default:"array"`
}

// Check validates the parameters that can be checked without building.
func (p *ImageParams) Check() error {
	if _, err := pixel.Lookup(p.Type); err != nil {
		return err
	}
	if _, err := arrayimg.NumPixels(p.Dims); err != nil {
		return err
	}
	return nil
}

func (p *ImageParams) Flags() access.Flags {
	var flags access.Flags
	if p.Dirty {
		flags |= access.Dirty
	}
	if p.Volatile {
		flags |= access.Volatile
	}
	return flags
}

func (p *ImageParams) Registry() *access.Registry {
	if p.Backing == "buffer" {
		return access.Buffers
	}
	return access.Arrays
}

func (p *ImageParams) Factory() (*arrayimg.Factory[uint64], error) {
	typ, err := pixel.Lookup(p.Type)
	if err != nil {
		return nil, err
	}
	return arrayimg.FromFlags(typ, p.Registry(), p.Flags()), nil
}

func (p *ImageParams) Build() (*arrayimg.Img[uint64], error) {
	f, err := p.Factory()
	if err != nil {
		return nil, err
	}
	img, err := f.Create(p.Dims...)
	if err != nil {
		return nil, fmt.Errorf("could not build image: %w", err)
	}
	return img, nil
}
