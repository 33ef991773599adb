package entity

import (
	"strings"

	"kinconnect/internal/domain/garment"

	"github.com/google/uuid"
)

const fallbackFirstName = "Family Member"

// Member is one person on the family roster.
type Member struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	OriginalImage  ImageRef      `json:"originalImage"`
	GeneratedImage ImageRef      `json:"generatedImage"`
	Group          garment.Group `json:"shirtType,omitempty"`
	Size           garment.Size  `json:"size"`
	Quantity       int           `json:"quantity"`
	ShirtColorName string        `json:"shirtColorName,omitempty"`
	StyleID        string        `json:"styleId,omitempty"`
	Generating     bool          `json:"generating"`
}

// NewMember returns a roster entry with the wizard defaults.
func NewMember(name, description, color, styleID string) Member {
	return Member{
		ID:             uuid.New(),
		Name:           name,
		Description:    description,
		Group:          garment.GroupMen,
		Size:           garment.DefaultSize,
		Quantity:       1,
		ShirtColorName: color,
		StyleID:        styleID,
	}
}

// FirstName is the first word of the name, used for the back-print overlay.
func (m Member) FirstName() string {
	if fields := strings.Fields(m.Name); len(fields) > 0 {
		return fields[0]
	}

	return fallbackFirstName
}

// GroupChoice resolves the member's garment group, inferring it when unset.
func (m Member) GroupChoice() garment.GroupChoice {
	return garment.ResolveGroup(m.Group, m.Name, m.Description)
}

// BackArtwork prefers the stylized image over the original crop.
func (m Member) BackArtwork() ImageRef {
	return FirstImage(m.GeneratedImage, m.OriginalImage)
}
