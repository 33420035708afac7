package mandelplot

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func TestFileSink_Path(t *testing.T) {
	s := FileSink{Dir: "out", Format: FormatTIFF}
	if got, want := s.Path("mandelbrot"), filepath.Join("out", "mandelbrot.tiff"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got, want := s.ThumbnailPath("mandelbrot"), filepath.Join("out", "mandelbrot.thumb.tiff"); got != want {
		t.Errorf("ThumbnailPath() = %q, want %q", got, want)
	}
	if got := (FileSink{}).Path("x"); got != "x.png" {
		t.Errorf("zero FileSink Path() = %q, want x.png", got)
	}
}

func decodeFile(t *testing.T, path string) (image.Image, string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, kind, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img, kind
}

func TestFileSink_SaveFormats(t *testing.T) {
	raster := NewRaster(6, 4)
	raster.SetGray(2, 3, 99)

	for _, f := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			sink := FileSink{Dir: t.TempDir(), Format: f}
			if err := sink.Save(raster, "frame"); err != nil {
				t.Fatalf("Save() = %v", err)
			}

			img, kind := decodeFile(t, sink.Path("frame"))
			if kind != f.String() {
				t.Errorf("decoded kind = %q, want %q", kind, f.String())
			}
			if img.Bounds() != image.Rect(0, 0, 6, 4) {
				t.Errorf("Bounds() = %v", img.Bounds())
			}
			red, _, _, _ := img.At(2, 3).RGBA()
			if red>>8 != 99 {
				t.Errorf("pixel (2,3) red = %d, want 99", red>>8)
			}
			if _, err := os.Stat(sink.ThumbnailPath("frame")); !errors.Is(err, os.ErrNotExist) {
				t.Error("thumbnail written without being configured")
			}
		})
	}
}

func TestFileSink_CaptionAndThumbnail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.MaxIter = 400, 300, 30
	raster, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	before := append([]uint8(nil), raster.Data()...)

	sink := FileSink{Dir: t.TempDir(), Caption: "max_iter=30", Thumbnail: 100}
	if err := sink.Save(raster, "captioned"); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	if string(before) != string(raster.Data()) {
		t.Error("Save() modified the raster")
	}

	img, _ := decodeFile(t, sink.Path("captioned"))
	changed := false
	for y := 280; y < 300 && !changed; y++ {
		for x := range 40 {
			r, _, _, _ := img.At(x, y).RGBA()
			if uint8(r>>8) != raster.Gray(x, y) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("caption did not change the bottom-left corner")
	}

	thumb, _ := decodeFile(t, sink.ThumbnailPath("captioned"))
	if thumb.Bounds() != image.Rect(0, 0, 100, 75) {
		t.Errorf("thumbnail Bounds() = %v, want 100x75", thumb.Bounds())
	}
}

func TestFileSink_MissingDir(t *testing.T) {
	sink := FileSink{Dir: filepath.Join(t.TempDir(), "missing")}
	err := sink.Save(NewRaster(2, 2), "nowhere")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save() into a missing directory = %v, want os.ErrNotExist", err)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("bmp")
	if err != nil || f != FormatBMP {
		t.Errorf("ParseFormat(bmp) = %v, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat(gif) should fail")
	}
}
