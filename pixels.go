package stegopix

// PixelBuffer is a raster image as a flat, channel-major byte buffer: one
// 8-bit value per channel, Channels values per pixel, pixels in row-major
// order. The image container format is the caller's concern.
type PixelBuffer struct {
	Pix      []uint8
	Channels int // 3 for opaque images, 4 when an alpha channel is present
	Width    int
	Height   int
}

// Capacity returns the number of payload bits the buffer can carry at the
// given bits-per-channel depth. Only the three color channels of each pixel
// are usable; alpha is never modified.
func (p *PixelBuffer) Capacity(bitsPerChannel int) int {
	if p.Channels == 4 {
		return len(p.Pix) / 4 * 3 * bitsPerChannel
	}

	return len(p.Pix) * bitsPerChannel
}

// walk visits the writable channel indexes of the buffer in raster order:
// the first three channels of every pixel, alpha skipped. Embedding and
// extraction share this single traversal so they always agree on bit order.
// The walk stops when fn returns false.
func (p *PixelBuffer) walk(fn func(i int) bool) {
	for base := 0; base+p.Channels <= len(p.Pix); base += p.Channels {
		for j := 0; j < 3; j++ {
			if !fn(base + j) {
				return
			}
		}
	}
}
