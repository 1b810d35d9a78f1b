package snapshot

import (
	"image"
	"image/png"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/avaldr/morphogen/internal/field"
)

// Image renders the grid as an opaque grayscale image, scaled up by an
// integer factor with nearest-neighbor sampling so cells stay crisp.
func Image(g *field.Grid, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	i := 0
	for _, v := range g.Data {
		b := field.Luma(v)
		p := src.Pix[i : i+4 : i+4]
		p[0], p[1], p[2], p[3] = b, b, b, 255
		i += 4
	}
	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WritePNG writes the grid to path as a PNG. See [Image] for the scaling
// rules.
func WritePNG(path string, g *field.Grid, scale int) error {
	return WriteImage(path, Image(g, scale))
}

// WriteImage PNG-encodes any image to path.
func WriteImage(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return err
	}
	slog.Info("wrote image", "path", path, "bounds", img.Bounds().Max)
	return nil
}
