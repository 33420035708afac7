package mandelplot

import (
	"fmt"
	"testing"
)

func BenchmarkRender(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{320, 180},
		{1280, 720},
	}

	for _, size := range sizes {
		for _, workers := range []int{1, 4, 24} {
			b.Run(fmt.Sprintf("%dx%d/workers=%d", size.width, size.height, workers), func(b *testing.B) {
				cfg := DefaultConfig()
				cfg.Width, cfg.Height, cfg.MaxIter = size.width, size.height, 200
				r := NewRenderer(WithWorkers(workers))
				b.SetBytes(int64(size.width * size.height * bytesPerPixel))
				b.ReportAllocs()
				for b.Loop() {
					if _, err := r.Render(cfg); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkShadeTable(b *testing.B) {
	for b.Loop() {
		NewShadeTable(DefaultMaxIter, PaletteLight)
	}
}
