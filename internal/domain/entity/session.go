package entity

import (
	"strings"
	"time"

	"kinconnect/internal/domain/garment"
	"kinconnect/internal/domain/workflow"

	"github.com/google/uuid"
)

const (
	DefaultFamilyLabel = "The Millers"
	DefaultShirtColor  = garment.ColorWhite
)

// OrderDraft is the whole order as it is being built in the wizard.
type OrderDraft struct {
	Members            []Member        `json:"members"`
	GroupPhoto         ImageRef        `json:"groupPhoto"`
	FamilyFrontImage   ImageRef        `json:"familyFrontImage"`
	FamilyFrontStyleID string          `json:"familyFrontStyleId,omitempty"`
	FamilyLabel        string          `json:"familyLabel"`
	StyleID            string          `json:"styleId"`
	ShirtColorName     string          `json:"shirtColorName"`
	Shipping           ShippingDetails `json:"shipping"`
	CheckoutPreview    ImageRef        `json:"checkoutPreview"`
}

// NewOrderDraft returns an empty draft with the wizard defaults.
func NewOrderDraft() OrderDraft {
	return OrderDraft{
		Members:        []Member{},
		FamilyLabel:    DefaultFamilyLabel,
		StyleID:        DefaultStyleID,
		ShirtColorName: DefaultShirtColor,
		Shipping:       ShippingDetails{Country: "US"},
	}
}

// MemberIndex returns the position of the member with id, or -1.
func (d OrderDraft) MemberIndex(id uuid.UUID) int {
	for i := range d.Members {
		if d.Members[i].ID == id {
			return i
		}
	}

	return -1
}

// TotalCents sums quantity times unit price over members with a positive quantity.
func (d OrderDraft) TotalCents(unitPriceCents int64) int64 {
	var total int64
	for _, m := range d.Members {
		if m.Quantity > 0 {
			total += int64(m.Quantity) * unitPriceCents
		}
	}

	return total
}

// Facts extracts what the workflow needs to gate forward transitions.
func (d OrderDraft) Facts(unitPriceCents int64) workflow.Facts {
	return workflow.Facts{
		MemberCount: len(d.Members),
		TotalCents:  d.TotalCents(unitPriceCents),
	}
}

// FrontStyle is the style of the family front artwork.
func (d OrderDraft) FrontStyle() Style {
	if d.FamilyFrontStyleID != "" {
		return StyleOrDefault(d.FamilyFrontStyleID)
	}

	return StyleOrDefault(d.StyleID)
}

// MemberStyle is the member's own style when set, else the draft default.
func (d OrderDraft) MemberStyle(m Member) Style {
	if m.StyleID != "" {
		if s, ok := LookupStyle(m.StyleID); ok {
			return s
		}
	}

	return StyleOrDefault(d.StyleID)
}

// LabelOr returns the trimmed family label or fallback when it is blank.
func (d OrderDraft) LabelOr(fallback string) string {
	if label := strings.TrimSpace(d.FamilyLabel); label != "" {
		return label
	}

	return fallback
}

// OrderRequest converts the draft into a fulfillment request.
func (d OrderDraft) OrderRequest() OrderRequest {
	items := make([]Member, len(d.Members))
	copy(items, d.Members)

	return OrderRequest{
		Items:          items,
		Shipping:       d.Shipping,
		ShirtColorName: d.ShirtColorName,
		FamilyImage:    d.FamilyFrontImage,
	}
}

// Clone returns a copy that shares no slices with d.
func (d OrderDraft) Clone() OrderDraft {
	out := d
	out.Members = make([]Member, len(d.Members))
	copy(out.Members, d.Members)

	return out
}

// Session is one visitor's wizard state.
type Session struct {
	ID              uuid.UUID          `json:"id"`
	Step            workflow.Step      `json:"step"`
	Draft           OrderDraft         `json:"draft"`
	FrontGenerating bool               `json:"frontGenerating"`
	PlacingOrder    bool               `json:"placingOrder"`
	DraftEpoch      uint64             `json:"draftEpoch"`
	Confirmation    *OrderConfirmation `json:"confirmation,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// NewSession starts a session at LANDING with an empty draft.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Step:      workflow.StepLanding,
		Draft:     NewOrderDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReplaceDraft swaps in a new draft and invalidates results of operations
// started against the old one.
func (s *Session) ReplaceDraft(draft OrderDraft) {
	s.Draft = draft
	s.DraftEpoch++
}

// Machine restores the workflow machine at the session's step.
func (s *Session) Machine() workflow.Machine {
	return workflow.Restore(s.Step)
}

// Clone returns a deep copy safe to hand out of a repository.
func (s *Session) Clone() *Session {
	out := *s
	out.Draft = s.Draft.Clone()
	if s.Confirmation != nil {
		c := *s.Confirmation
		out.Confirmation = &c
	}

	return &out
}

// ShareableMember is the public view of one member in a share link.
type ShareableMember struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Size           string   `json:"size"`
	Quantity       int      `json:"quantity"`
	GeneratedImage ImageRef `json:"generatedImage"`
}

// ShareableState is the order snapshot encoded into a share link.
type ShareableState struct {
	Members         []ShareableMember `json:"members"`
	SelectedStyleID string            `json:"selectedStyleId"`
	ShirtColorName  string            `json:"shirtColorName"`
	TotalCost       float64           `json:"totalCost"`
}

// Shareable builds the share snapshot of the draft.
func (d OrderDraft) Shareable(unitPriceCents int64) ShareableState {
	members := make([]ShareableMember, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, ShareableMember{
			Name:           m.Name,
			Description:    m.Description,
			Size:           string(m.Size),
			Quantity:       m.Quantity,
			GeneratedImage: m.GeneratedImage,
		})
	}

	return ShareableState{
		Members:         members,
		SelectedStyleID: d.StyleID,
		ShirtColorName:  d.ShirtColorName,
		TotalCost:       float64(d.TotalCents(unitPriceCents)) / 100,
	}
}
