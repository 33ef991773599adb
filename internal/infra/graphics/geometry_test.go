package graphics

import (
	"context"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"testing"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestCropToBox_FullBoxKeepsWholeImageOnSquare(t *testing.T) {
	src := solid(200, 100, color.NRGBA{R: 200, G: 10, B: 10, A: 255})

	out, err := CropToBox(src, []int{0, 0, 1000, 1000})
	require.NoError(t, err)

	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())

	// The source lands in the vertical middle, padded with white.
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(100, 10))
	assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 10, A: 255}, out.NRGBAAt(100, 100))
}

func TestCropToBox_PadsAndClamps(t *testing.T) {
	src := solid(1000, 1000, color.Black)

	out, err := CropToBox(src, []int{400, 400, 600, 600})
	require.NoError(t, err)

	// 200 wide + 2*30 pad = 260, 200 tall + 2*40 pad = 280
	assert.Equal(t, 280, out.Bounds().Dx())
	assert.Equal(t, 280, out.Bounds().Dy())

	out, err = CropToBox(src, []int{900, 900, 1000, 1000})
	require.NoError(t, err)
	assert.LessOrEqual(t, out.Bounds().Dx(), 120)
}

func TestCropToBox_RejectsInvalidBoxes(t *testing.T) {
	src := solid(10, 10, color.White)

	for name, box := range map[string][]int{
		"too short": {0, 0, 10},
		"zero area": {100, 100, 100, 500},
		"inverted":  {500, 500, 100, 100},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := CropToBox(src, box)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestStripNeutralBackground(t *testing.T) {
	t.Run("uniform white becomes transparent", func(t *testing.T) {
		out := StripNeutralBackground(solid(8, 8, color.White))
		for i := 3; i < len(out.Pix); i += 4 {
			require.Zero(t, out.Pix[i])
		}
	})

	tests := []struct {
		name        string
		pixel       color.NRGBA
		transparent bool
	}{
		{"near black", color.NRGBA{R: 20, G: 25, B: 22, A: 255}, true},
		{"light gray", color.NRGBA{R: 230, G: 228, B: 225, A: 255}, true},
		{"mid gray", color.NRGBA{R: 128, G: 128, B: 128, A: 255}, false},
		{"saturated light", color.NRGBA{R: 250, G: 200, B: 240, A: 255}, false},
		{"skin tone", color.NRGBA{R: 224, G: 172, B: 105, A: 255}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := StripNeutralBackground(solid(1, 1, tt.pixel))
			if tt.transparent {
				assert.Zero(t, out.Pix[3])
			} else {
				assert.Equal(t, uint8(255), out.Pix[3])
				assert.Equal(t, []uint8{tt.pixel.R, tt.pixel.G, tt.pixel.B}, out.Pix[:3])
			}
		})
	}
}

func TestOverlayText_KeepsDimensionsAndDraws(t *testing.T) {
	gray := color.NRGBA{R: 90, G: 120, B: 160, A: 255}
	src := solid(300, 200, gray)

	out, err := OverlayText(src, "Avery")
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), out.Bounds())

	changed := 0
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != gray.R || out.Pix[i+1] != gray.G || out.Pix[i+2] != gray.B {
			changed++
		}
	}
	assert.Positive(t, changed)

	// The top half stays clear of the text.
	assert.Equal(t, gray, out.NRGBAAt(150, 20))
}

func TestOverlayText_BlankTextIsNoop(t *testing.T) {
	src := solid(50, 50, color.White)

	out, err := OverlayText(src, "  ")
	require.NoError(t, err)
	assert.Equal(t, src.Pix, out.Pix)
}

func TestCompositor_RoundTripsReferences(t *testing.T) {
	ctx := context.Background()
	png, err := EncodePNG(solid(40, 20, color.White))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := png.Bytes()
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer server.Close()

	c := NewCompositor(server.Client())

	cropped, err := c.CropToBox(ctx, png, []int{0, 0, 1000, 1000})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", cropped.MimeType(""))

	stripped, err := c.StripBackground(ctx, entity.ImageRef(server.URL+"/a.png"))
	require.NoError(t, err)
	assert.Equal(t, "image/png", stripped.MimeType(""))

	img, err := Load(ctx, server.Client(), stripped)
	require.NoError(t, err)
	_, _, _, a := img.At(3, 3).RGBA()
	assert.Zero(t, a)

	_, err = c.OverlayText(ctx, "not-an-image", "x")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLoad_RemoteFailureIsVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Load(context.Background(), server.Client(), entity.ImageRef(server.URL))
	require.ErrorIs(t, err, domainerrors.ErrVendorUnavailable)
}
