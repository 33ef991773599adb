package entity

import (
	"encoding/base64"
	"strings"

	"kinconnect/internal/errors"
)

// ImageRef is an opaque image reference: an inline data URL or a fetchable
// http(s) URL. The empty value means no image.
type ImageRef string

// NewDataURL encodes raw image bytes as an inline data URL.
func NewDataURL(mimeType string, data []byte) ImageRef {
	return ImageRef("data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

func (r ImageRef) Empty() bool {
	return strings.TrimSpace(string(r)) == ""
}

func (r ImageRef) IsDataURL() bool {
	return strings.HasPrefix(string(r), "data:")
}

func (r ImageRef) IsRemote() bool {
	return strings.HasPrefix(string(r), "http://") || strings.HasPrefix(string(r), "https://")
}

// MimeType returns the declared type of a data URL, or fallback.
func (r ImageRef) MimeType(fallback string) string {
	if !r.IsDataURL() {
		return fallback
	}
	header, _, found := strings.Cut(strings.TrimPrefix(string(r), "data:"), ",")
	if !found {
		return fallback
	}
	mime, _, _ := strings.Cut(header, ";")
	if mime == "" {
		return fallback
	}

	return mime
}

// Payload returns the base64 part of a data URL, or the whole value otherwise.
func (r ImageRef) Payload() string {
	if _, after, found := strings.Cut(string(r), ","); found && r.IsDataURL() {
		return after
	}

	return string(r)
}

// Bytes decodes a data URL.
func (r ImageRef) Bytes() ([]byte, error) {
	if !r.IsDataURL() {
		return nil, errors.New("image reference is not a data URL")
	}

	data, err := base64.StdEncoding.DecodeString(r.Payload())
	if err != nil {
		return nil, errors.Wrap(err, "decode data URL")
	}

	return data, nil
}

// FirstImage returns the first non-empty reference.
func FirstImage(refs ...ImageRef) ImageRef {
	for _, ref := range refs {
		if !ref.Empty() {
			return ref
		}
	}

	return ""
}
