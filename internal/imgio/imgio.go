// Package imgio converts PNG files to and from flat pixel buffers. The rest
// of the system never touches the container format.
package imgio

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/quietbyte/stegopix"
)

// ReadPixels decodes the PNG at path into a flat pixel buffer. Images with
// transparency come back with 4 channels per pixel, opaque images with 3.
func ReadPixels(path string) (*stegopix.PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Draw onto an NRGBA canvas to get a flat, non-premultiplied Pix slice
	// regardless of the decoded color model.
	bounds := src.Bounds()
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	channels := 4
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}

	w, h := bounds.Dx(), bounds.Dy()

	buf := &stegopix.PixelBuffer{
		Pix:      make([]uint8, 0, w*h*channels),
		Channels: channels,
		Width:    w,
		Height:   h,
	}

	for i := 0; i < len(canvas.Pix); i += 4 {
		buf.Pix = append(buf.Pix, canvas.Pix[i:i+channels]...)
	}

	return buf, nil
}

// WritePixels encodes the pixel buffer as a PNG at path. Opaque buffers are
// written without an alpha channel, so a 3-channel buffer reads back as
// 3-channel.
func WritePixels(path string, buf *stegopix.PixelBuffer) error {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))

	for i := 0; i < buf.Width*buf.Height; i++ {
		src := i * buf.Channels
		dst := i * 4

		copy(img.Pix[dst:dst+buf.Channels], buf.Pix[src:src+buf.Channels])

		if buf.Channels == 3 {
			img.Pix[dst+3] = 0xFF
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
