package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
)

const (
	maxImageWidth = 1600
	webpQuality   = 80
)

// EncodeWebP decodes a JPEG or PNG upload, caps its width and
// re-encodes it as WebP.
func EncodeWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.NewBadRequest("invalid_image", "File is not a valid JPEG or PNG image")
	}

	src = capWidth(src, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func capWidth(src image.Image, max int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= max {
		return src
	}

	height := bounds.Dy() * max / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, max, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
