package graphics

import (
	"bytes"
	"context"
	"image"
	"io"
	"net/http"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/errors"

	"github.com/disintegration/imaging"

	// Vendors and uploads may hand back WebP.
	_ "golang.org/x/image/webp"
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"

	cropJPEGQuality = 95
	maxFetchBytes   = 25 << 20
)

// Decode parses raw image bytes in any registered format.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable image: " + err.Error())
	}

	return img, nil
}

// EncodePNG encodes img as a PNG data URL.
func EncodePNG(img image.Image) (entity.ImageRef, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", errors.Wrap(err, "encode png")
	}

	return entity.NewDataURL(mimePNG, buf.Bytes()), nil
}

// EncodeJPEG encodes img as a JPEG data URL at the given quality.
func EncodeJPEG(img image.Image, quality int) (entity.ImageRef, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", errors.Wrap(err, "encode jpeg")
	}

	return entity.NewDataURL(mimeJPEG, buf.Bytes()), nil
}

// Load resolves a data URL or fetches an http(s) URL and decodes it.
func Load(ctx context.Context, client *http.Client, ref entity.ImageRef) (image.Image, error) {
	data, err := Bytes(ctx, client, ref)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Bytes returns the raw encoded image behind ref.
func Bytes(ctx context.Context, client *http.Client, ref entity.ImageRef) ([]byte, error) {
	switch {
	case ref.IsDataURL():
		data, err := ref.Bytes()
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		return data, nil
	case ref.IsRemote():
		return fetch(ctx, client, string(ref))
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("image must be a data URL or an http(s) URL")
	}
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build image request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, domainerrors.NewVendorError("image host", 0, nil, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read image body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.NewVendorError("image host", resp.StatusCode, nil, nil)
	}

	return data, nil
}
