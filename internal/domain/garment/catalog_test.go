package garment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog(
		Line{
			BlueprintID: 6,
			ByColor: map[string]map[Size]int{
				ColorBlack:       {"S": 1001, "M": 1002, "L": 1003},
				ColorAthleticGry: {"M": 1102},
				ColorWhite:       {"XL": 1204},
			},
		},
		Line{
			BlueprintID: 7,
			ByColor: map[string]map[Size]int{
				ColorWhite: {"M": 2202},
			},
		},
		Line{
			BlueprintID: 8,
			BySize:      map[Size]int{"S": 3001, "M": 3002},
		},
	)
}

func TestCatalog_ResolveVariant(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name   string
		group  Group
		size   Size
		color  string
		wantID int
		wantOK bool
	}{
		{name: "exact hit", group: GroupMen, size: "M", color: ColorAthleticGry, wantID: 1102, wantOK: true},
		{name: "unknown color falls back to black", group: GroupMen, size: "L", color: "Purple", wantID: 1003, wantOK: true},
		{name: "missing size in color falls back to black", group: GroupMen, size: "S", color: ColorAthleticGry, wantID: 1001, wantOK: true},
		{name: "falls back to white after black", group: GroupMen, size: "XL", color: ColorAthleticGry, wantID: 1204, wantOK: true},
		{name: "women without black uses white", group: GroupWomen, size: "M", color: ColorBlack, wantID: 2202, wantOK: true},
		{name: "defaults size and color", group: GroupMen, wantID: 1002, wantOK: true},
		{name: "kids ignores color", group: GroupKids, size: "M", color: "Neon Pink", wantID: 3002, wantOK: true},
		{name: "kids missing size", group: GroupKids, size: "3XL", wantOK: false},
		{name: "adult not found anywhere", group: GroupWomen, size: "3XL", color: ColorWhite, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := catalog.ResolveVariant(tt.group, tt.size, tt.color)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCatalog_ResolveBlueprint(t *testing.T) {
	catalog := NewCatalog(Line{BlueprintID: 6}, Line{}, Line{BlueprintID: 8})

	id, ok := catalog.ResolveBlueprint(GroupKids)
	require.True(t, ok)
	assert.Equal(t, 8, id)

	id, ok = catalog.ResolveBlueprint(GroupWomen)
	require.True(t, ok)
	assert.Equal(t, 6, id, "women without a blueprint use the men blueprint")

	_, ok = NewCatalog(Line{}, Line{}, Line{}).ResolveBlueprint(GroupMen)
	assert.False(t, ok)
}

func TestCatalog_ZeroValueResolvesNothing(t *testing.T) {
	var catalog *Catalog

	_, ok := catalog.ResolveVariant(GroupMen, "M", ColorBlack)
	assert.False(t, ok)
	_, ok = catalog.ResolveBlueprint(GroupMen)
	assert.False(t, ok)
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	byColor := map[string]map[Size]int{ColorBlack: {"M": 1}}
	catalog := NewCatalog(Line{BlueprintID: 1, ByColor: byColor}, Line{}, Line{})

	byColor[ColorBlack]["M"] = 99

	id, ok := catalog.ResolveVariant(GroupMen, "M", ColorBlack)
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := testCatalog()

	res, ok := catalog.Resolve(ResolveGroup("", "Emma", "little girl with pigtails"), "S", ColorBlack)
	require.True(t, ok)
	assert.Equal(t, GroupKids, res.Group.Group)
	assert.Equal(t, SourceInferred, res.Group.Source)
	assert.Equal(t, 8, res.BlueprintID)
	assert.Equal(t, 3001, res.VariantID)

	_, ok = catalog.Resolve(GroupChoice{Group: GroupKids, Source: SourceExplicit}, "XL", "")
	assert.False(t, ok)
}
