package entity

import (
	"testing"
	"time"

	"kinconnect/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDraft_TotalExcludesZeroQuantity(t *testing.T) {
	draft := NewOrderDraft()
	a := NewMember("Ann", "", DefaultShirtColor, DefaultStyleID)
	a.Quantity = 2
	b := NewMember("Bob", "", DefaultShirtColor, DefaultStyleID)
	b.Quantity = 0
	draft.Members = []Member{a, b}

	assert.Equal(t, int64(5000), draft.TotalCents(2500))
	assert.Equal(t, workflow.Facts{MemberCount: 2, TotalCents: 5000}, draft.Facts(2500))
	assert.InDelta(t, 50.0, draft.Shareable(2500).TotalCost, 0.0001)
}

func TestOrderDraft_Styles(t *testing.T) {
	draft := NewOrderDraft()
	draft.StyleID = "anime"

	assert.Equal(t, "anime", draft.FrontStyle().ID)

	draft.FamilyFrontStyleID = "oil"
	assert.Equal(t, "oil", draft.FrontStyle().ID)

	m := NewMember("Ann", "", DefaultShirtColor, "")
	assert.Equal(t, "anime", draft.MemberStyle(m).ID)
	m.StyleID = "clay"
	assert.Equal(t, "clay", draft.MemberStyle(m).ID)

	assert.Equal(t, DefaultStyleID, StyleOrDefault("missing").ID)
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := NewSession(time.Now())
	s.Draft.Members = append(s.Draft.Members, NewMember("Ann", "", DefaultShirtColor, DefaultStyleID))
	s.Confirmation = &OrderConfirmation{OrderID: "A"}

	clone := s.Clone()
	clone.Draft.Members[0].Name = "Changed"
	clone.Confirmation.OrderID = "B"

	assert.Equal(t, "Ann", s.Draft.Members[0].Name)
	assert.Equal(t, "A", s.Confirmation.OrderID)
}

func TestMember_Defaults(t *testing.T) {
	m := NewMember("Mary Jane Watson", "", "Black", "retro")

	assert.Equal(t, "Mary", m.FirstName())
	assert.Equal(t, 1, m.Quantity)
	assert.Equal(t, "M", string(m.Size))
	assert.Equal(t, "MEN", string(m.Group))
	assert.True(t, m.GeneratedImage.Empty())

	assert.Equal(t, "Family Member", Member{Name: "   "}.FirstName())
}

func TestImageRef(t *testing.T) {
	ref := NewDataURL("image/png", []byte("png-bytes"))

	require.True(t, ref.IsDataURL())
	assert.False(t, ref.IsRemote())
	assert.Equal(t, "image/png", ref.MimeType("image/jpeg"))

	data, err := ref.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	remote := ImageRef("https://cdn.example.com/a.png")
	assert.True(t, remote.IsRemote())
	assert.Equal(t, "image/jpeg", remote.MimeType("image/jpeg"))
	_, err = remote.Bytes()
	assert.Error(t, err)

	assert.Equal(t, remote, FirstImage("", " ", remote, ref))
}

func TestShippingDetails(t *testing.T) {
	s := ShippingDetails{FullName: "Jane", City: "Austin"}
	assert.ElementsMatch(t, []string{"addressLine1", "state", "zip", "email"}, s.MissingFields())

	first, last := s.SplitName("Order")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Jane", last)

	first, last = ShippingDetails{FullName: "Jane van Doe"}.SplitName("Order")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "van Doe", last)

	first, last = ShippingDetails{}.SplitName("Test")
	assert.Equal(t, "Customer", first)
	assert.Equal(t, "Test", last)
}

func TestDetectedPerson_ValidBox(t *testing.T) {
	assert.True(t, DetectedPerson{Box: []int{0, 0, 1000, 1000}}.ValidBox())
	assert.False(t, DetectedPerson{Box: []int{0, 0, 1000}}.ValidBox())
	assert.False(t, DetectedPerson{Box: []int{500, 0, 400, 1000}}.ValidBox())
}

func TestEstimateDelivery(t *testing.T) {
	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-15", EstimateDelivery(placed))
}

func TestSession_ReplaceDraftAdvancesEpoch(t *testing.T) {
	session := NewSession(time.Now())
	session.Draft.FamilyFrontImage = "https://cdn.example/front.png"
	before := session.DraftEpoch

	session.ReplaceDraft(NewOrderDraft())

	assert.Equal(t, before+1, session.DraftEpoch)
	assert.Empty(t, session.Draft.FamilyFrontImage)
	assert.Equal(t, session.DraftEpoch, session.Clone().DraftEpoch)
}
