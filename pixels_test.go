package stegopix

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp"
)

func TestCapacity(t *testing.T) {
	t.Parallel()

	rgb := &PixelBuffer{Pix: make([]uint8, 600), Channels: 3, Width: 20, Height: 10}
	rgba := &PixelBuffer{Pix: make([]uint8, 400), Channels: 4, Width: 10, Height: 10}

	assert.Equal(t, "rgb capacity at 1 bit", 600, rgb.Capacity(1))
	assert.Equal(t, "rgb capacity at 4 bits", 2400, rgb.Capacity(4))
	assert.Equal(t, "rgba capacity at 1 bit", 300, rgba.Capacity(1))
	assert.Equal(t, "rgba capacity at 3 bits", 900, rgba.Capacity(3))
}

func TestWalkSkipsAlpha(t *testing.T) {
	t.Parallel()

	img := &PixelBuffer{Pix: make([]uint8, 12), Channels: 4, Width: 3, Height: 1}

	var visited []int

	img.walk(func(i int) bool {
		visited = append(visited, i)
		return true
	})

	want := []int{0, 1, 2, 4, 5, 6, 8, 9, 10}

	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("visited indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	t.Parallel()

	img := &PixelBuffer{Pix: make([]uint8, 9), Channels: 3, Width: 3, Height: 1}

	var visited []int

	img.walk(func(i int) bool {
		visited = append(visited, i)
		return len(visited) < 4
	})

	assert.Equal(t, "visited count", 4, len(visited))
}
