// Package graphics implements the raster operations applied to portraits and
// shirt artwork: cropping a detection box, stripping flat backgrounds and
// stamping names.
package graphics

import (
	"image"
	"image/color"
	"math"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"

	"github.com/disintegration/imaging"
)

const (
	cropPadX = 0.15
	cropPadY = 0.20

	neutralSpread = 15
	lightFloor    = 220
	darkCeiling   = 35
)

// CropToBox cuts the region of a [ymin, xmin, ymax, xmax] box (0-1000 scale)
// with extra padding and centers it on a white square canvas.
func CropToBox(src image.Image, box []int) (*image.NRGBA, error) {
	person := entity.DetectedPerson{Box: box}
	if !person.ValidBox() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("crop box must be [ymin, xmin, ymax, xmax] with positive area")
	}

	bounds := src.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())
	if imgW == 0 || imgH == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image has no pixels")
	}

	ymin, xmin, ymax, xmax := float64(box[0]), float64(box[1]), float64(box[2]), float64(box[3])
	rawW, rawH := xmax-xmin, ymax-ymin
	padX, padY := rawW*cropPadX, rawH*cropPadY

	x := math.Max(0, (xmin-padX)/entity.BoxScale*imgW)
	y := math.Max(0, (ymin-padY)/entity.BoxScale*imgH)
	w := math.Min(imgW-x, (rawW+padX*2)/entity.BoxScale*imgW)
	h := math.Min(imgH-y, (rawH+padY*2)/entity.BoxScale*imgH)
	if w < 1 || h < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("crop box lies outside the image")
	}

	x0, y0 := int(math.Round(x)), int(math.Round(y))
	cw, ch := int(math.Round(w)), int(math.Round(h))
	region := image.Rect(x0, y0, x0+cw, y0+ch).Add(bounds.Min)
	cropped := imaging.Crop(src, region)

	// imaging.Crop clips to bounds, re-measure.
	cw, ch = cropped.Bounds().Dx(), cropped.Bounds().Dy()
	size := max(cw, ch)
	canvas := imaging.New(size, size, color.White)

	return imaging.Paste(canvas, cropped, image.Pt((size-cw)/2, (size-ch)/2)), nil
}

// StripNeutralBackground makes near-gray pixels that are very light or very
// dark fully transparent. Every other pixel is left untouched.
func StripNeutralBackground(src image.Image) *image.NRGBA {
	dst := imaging.Clone(src)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		if isBackgroundPixel(dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2]) {
			dst.Pix[i+3] = 0
		}
	}

	return dst
}

func isBackgroundPixel(r, g, b uint8) bool {
	hi := max(r, g, b)
	lo := min(r, g, b)

	return hi-lo < neutralSpread && (hi > lightFloor || hi < darkCeiling)
}
