package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 50, 50, 255})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case "png":
		err = png.Encode(&buf, img)
	default:
		t.Fatalf("unknown format %q", format)
	}
	if err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcessAcceptsJPEGAndPNG(t *testing.T) {
	for _, format := range []string{"jpeg", "png"} {
		data := encodeTestImage(t, 100, 100, format)
		result, err := Process(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Process %s: %v", format, err)
		}
		if result.MIME != "image/jpeg" {
			t.Errorf("%s: expected image/jpeg output, got %s", format, result.MIME)
		}
		if len(result.Data) == 0 {
			t.Errorf("%s: expected non-empty data", format)
		}
	}
}

func TestProcessDownscale(t *testing.T) {
	data := encodeTestImage(t, 2048, 1024, "jpeg")
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() != MaxDimension || bounds.Dy() != MaxDimension/2 {
		t.Errorf("expected aspect ratio preserved (1024x512), got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessSmallImageNotUpscaled(t *testing.T) {
	data := encodeTestImage(t, 50, 50, "jpeg")
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessRejectsNonImages(t *testing.T) {
	inputs := map[string][]byte{
		"text":      []byte("not an image"),
		"gif magic": []byte("GIF89a..."),
		"empty":     {},
	}
	for name, data := range inputs {
		if _, err := Process(bytes.NewReader(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
