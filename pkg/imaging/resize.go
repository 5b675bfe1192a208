package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Result is a re-encoded image.
type Result struct {
	Data        []byte
	Extension   string
	ContentType string
}

// Shrink scales an image down so neither side exceeds maxDimension,
// keeping its aspect ratio. PNG stays PNG to keep transparency; JPEG and
// WebP are written as JPEG with the given quality. Images already within
// bounds are returned unchanged with ok=false.
func Shrink(data []byte, maxDimension int, quality int) (res Result, ok bool, err error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, false, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	newWidth, newHeight := fit(width, height, maxDimension)
	if newWidth == width && newHeight == height {
		return Result{}, false, nil
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, resized); err != nil {
			return Result{}, false, fmt.Errorf("failed to encode image: %w", err)
		}
		return Result{Data: buf.Bytes(), Extension: ".png", ContentType: "image/png"}, true, nil
	}

	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return Result{}, false, fmt.Errorf("failed to encode image: %w", err)
	}
	return Result{Data: buf.Bytes(), Extension: ".jpg", ContentType: "image/jpeg"}, true, nil
}

func fit(width, height, maxDimension int) (int, int) {
	if maxDimension <= 0 || (width <= maxDimension && height <= maxDimension) {
		return width, height
	}
	if width > height {
		return maxDimension, max(1, int(float64(height)*float64(maxDimension)/float64(width)))
	}
	return max(1, int(float64(width)*float64(maxDimension)/float64(height))), maxDimension
}
