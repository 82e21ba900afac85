package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/webp"
)

// Decode turns an asset stream into an image. SVGs are rasterized onto a
// size×size canvas; everything else goes through the registered decoders.
func Decode(name string, r io.Reader, size int) (image.Image, error) {
	if strings.EqualFold(path.Ext(name), ".svg") {
		return rasterizeSVG(r, size)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func rasterizeSVG(r io.Reader, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("svg raster size %d", size)
	}
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return rgba, nil
}
