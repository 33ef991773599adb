package graphics

import (
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"kinconnect/internal/errors"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	textSizeRatio     = 0.10
	textBaselineRatio = 0.05
	strokeRatio       = 0.08
	minStroke         = 2
)

var parsedFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// OverlayText draws text centered horizontally near the bottom edge in white
// with a black outline. The output keeps the source dimensions.
func OverlayText(src image.Image, text string) (*image.NRGBA, error) {
	dst := imaging.Clone(src)

	text = strings.TrimSpace(text)
	height := dst.Bounds().Dy()
	size := int(math.Floor(float64(height) * textSizeRatio))
	if text == "" || size < 1 {
		return dst, nil
	}

	f, err := parsedFont()
	if err != nil {
		return nil, errors.Wrap(err, "parse overlay font")
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create overlay font face")
	}
	defer face.Close()

	drawer := &font.Drawer{Dst: dst, Face: face}
	width := drawer.MeasureString(text)
	origin := fixed.Point26_6{
		X: fixed.I(dst.Bounds().Dx())/2 - width/2,
		Y: fixed.I(height) - fixed.Int26_6(float64(height)*textBaselineRatio*64),
	}

	// The outline is the text stamped at every offset within half the stroke width.
	radius := int(math.Ceil(math.Max(minStroke, float64(size)*strokeRatio) / 2))
	drawer.Src = image.NewUniform(color.Black)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			drawer.Dot = origin.Add(fixed.P(dx, dy))
			drawer.DrawString(text)
		}
	}

	drawer.Src = image.NewUniform(color.White)
	drawer.Dot = origin
	drawer.DrawString(text)

	return dst, nil
}
