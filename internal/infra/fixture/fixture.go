// Package fixture provides deterministic stand-ins for the paid image vendors,
// selected when env.testMode is on.
package fixture

import (
	"context"
	"image/color"
	"sync"

	"kinconnect/internal/domain/entity"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/infra/graphics"

	"github.com/disintegration/imaging"
)

var memberDescriptions = []string{
	"Smiling family member with glasses",
	"Happy sibling wearing a blue shirt",
	"Grandparent with a warm smile",
	"Energetic cousin with curly hair",
}

const (
	designSize = 512
	checkSize  = 32
)

// Analyzer reports the same four people for every photo, each spanning the whole frame.
type Analyzer struct{}

func NewAnalyzer() service.PhotoAnalyzer {
	return Analyzer{}
}

func (Analyzer) AnalyzePhoto(context.Context, entity.ImageRef) ([]entity.DetectedPerson, error) {
	people := make([]entity.DetectedPerson, 0, len(memberDescriptions))
	for _, desc := range memberDescriptions {
		people = append(people, entity.DetectedPerson{
			Description: desc,
			Box:         []int{0, 0, entity.BoxScale, entity.BoxScale},
		})
	}

	return people, nil
}

// Stylizer returns a fixed checkerboard design and echoes the group photo as the preview.
type Stylizer struct{}

func NewStylizer() service.Stylizer {
	return Stylizer{}
}

func (Stylizer) Stylize(context.Context, service.StylizeRequest) (entity.ImageRef, error) {
	return testDesign()
}

func (Stylizer) PreviewOutfit(_ context.Context, groupPhoto, _ entity.ImageRef, _ string) (entity.ImageRef, error) {
	return groupPhoto, nil
}

// BackgroundRemover strips neutral backgrounds locally.
type BackgroundRemover struct {
	compositor service.ImageCompositor
}

func NewBackgroundRemover(compositor service.ImageCompositor) service.BackgroundRemover {
	return &BackgroundRemover{compositor: compositor}
}

func (r *BackgroundRemover) RemoveBackground(ctx context.Context, img entity.ImageRef) (entity.ImageRef, error) {
	return r.compositor.StripBackground(ctx, img)
}

// testDesign is a light/dark checkerboard with a colored figure in the middle,
// mimicking generated art that was returned without real transparency.
var testDesign = sync.OnceValues(func() (entity.ImageRef, error) {
	light := color.NRGBA{R: 238, G: 238, B: 238, A: 255}
	dark := color.NRGBA{R: 24, G: 24, B: 24, A: 255}
	figure := color.NRGBA{R: 79, G: 70, B: 229, A: 255}

	img := imaging.New(designSize, designSize, light)
	center := designSize / 2
	radius := designSize / 3
	for y := 0; y < designSize; y++ {
		for x := 0; x < designSize; x++ {
			dx, dy := x-center, y-center
			switch {
			case dx*dx+dy*dy <= radius*radius:
				img.SetNRGBA(x, y, figure)
			case (x/checkSize+y/checkSize)%2 == 1:
				img.SetNRGBA(x, y, dark)
			}
		}
	}

	return graphics.EncodePNG(img)
})
