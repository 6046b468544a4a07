package palette

import (
	"fmt"
	"image/color"
	"os"
)

// Gray returns a ramp of levels grays from black to white.
func Gray(levels int) color.Palette {
	if levels < 2 {
		levels = 2
	}
	pal := make(color.Palette, levels)
	for i := range levels {
		y := uint8(i * 255 / (levels - 1))
		pal[i] = color.Gray{Y: y}
	}
	return pal
}

var builtin = map[string]color.Palette{
	"bw":      Gray(2),
	"gray4":   Gray(4),
	"gray16":  Gray(16),
	"gray256": Gray(256),
}

// Load returns a builtin palette by name, or the concatenated palettes of
// a RIFF PAL file.
func Load(name string) (color.Palette, error) {
	if pal, ok := builtin[name]; ok {
		return pal, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	pals, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}
	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %q holds no colors", ErrFormat, name)
	}
	return res, nil
}
