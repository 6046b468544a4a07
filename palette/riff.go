// Package palette reads and writes RIFF PAL palettes and builds the gray
// ramps used to render low-bit pixel values.
package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var ErrFormat = errors.New("invalid palette file")

const palVersion = 0x0300

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// Read returns every palette in a RIFF PAL stream, including those in
// nested LIST chunks.
func Read(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open RIFF stream: %w", ErrFormat, err)
	} else if formType != palType {
		return nil, fmt.Errorf("%w: unsupported RIFF content type %q", ErrFormat, formType[:])
	}

	return readChunks(rd, "PAL")
}

func readChunks(r *riff.Reader, ident string) ([]color.Palette, error) {
	var res []color.Palette
	for i := 0; ; i++ {
		id, size, data, err := r.Next()
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("%w: could not read chunk %s#%d: %w", ErrFormat, ident, i, err)
		}

		chunk := fmt.Sprintf("%s#%d", ident, i)
		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("%w: could not read list %s: %w", ErrFormat, chunk, err)
			} else if listType != palType {
				return res, fmt.Errorf("%w: list %s has unsupported type %q", ErrFormat, chunk, listType[:])
			}
			pals, err := readChunks(list, chunk)
			res = append(res, pals...)
			if err != nil {
				return res, err
			}
		case dataType:
			pal, err := readPalette(data, chunk)
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("%w: unsupported chunk type %q in %s", ErrFormat, id[:], chunk)
		}
	}
}

func readPalette(r io.Reader, ident string) (color.Palette, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: could not read header of chunk %s: %w", ErrFormat, ident, err)
	}
	if ver := binary.LittleEndian.Uint16(head[:2]); ver != palVersion {
		return nil, fmt.Errorf("%w: unsupported palette version %#04x in chunk %s", ErrFormat, ver, ident)
	}

	count := int(binary.LittleEndian.Uint16(head[2:]))
	entries := make([]byte, 4*count)
	if _, err := io.ReadFull(r, entries); err != nil {
		return nil, fmt.Errorf("%w: could not read %d colors from chunk %s: %w", ErrFormat, count, ident, err)
	}

	res := make(color.Palette, count)
	for i := range count {
		e := entries[4*i:]
		res[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xFF}
	}
	return res, nil
}

// Write stores pals as one RIFF PAL stream and returns the bytes written.
func Write(w io.Writer, pals ...color.Palette) (int64, error) {
	size := 4
	for _, pal := range pals {
		size += 8 + 4 + 4*len(pal)
	}

	buf := make([]byte, 0, 8+size)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = append(buf, palType[:]...)
	for _, pal := range pals {
		if len(pal) > 0xFFFF {
			return 0, fmt.Errorf("%w: %d colors in one palette", ErrFormat, len(pal))
		}
		buf = append(buf, dataType[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(4+4*len(pal)))
		buf = binary.LittleEndian.AppendUint16(buf, palVersion)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))
		for _, col := range pal {
			c := color.RGBAModel.Convert(col).(color.RGBA)
			buf = append(buf, c.R, c.G, c.B, 0)
		}
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("could not write palette: %w", err)
	}
	return int64(n), nil
}
