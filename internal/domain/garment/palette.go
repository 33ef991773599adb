package garment

// Color is a shirt color offered to the customer.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

const (
	ColorWhite       = "White"
	ColorAthleticGry = "Solid Athletic Grey"
	ColorBlack       = "Black"
)

var palette = []Color{
	{Name: ColorWhite, Hex: "#ffffff"},
	{Name: ColorAthleticGry, Hex: "#d1d5db"},
	{Name: ColorBlack, Hex: "#111827"},
}

var groupColors = map[Group][]string{
	GroupWomen: {ColorBlack, ColorWhite},
	GroupMen:   {ColorBlack, ColorAthleticGry},
	GroupKids:  {ColorBlack, ColorAthleticGry},
}

// Palette returns every shirt color.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)

	return out
}

// LookupColor finds a palette entry by name.
func LookupColor(name string) (Color, bool) {
	for _, c := range palette {
		if c.Name == name {
			return c, true
		}
	}

	return Color{}, false
}

// ColorsFor returns the color names stocked for a group, default first.
func ColorsFor(group Group) []string {
	names := groupColors[group]
	if names == nil {
		names = groupColors[GroupMen]
	}
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// ColorAllowed reports whether name is stocked for the group.
func ColorAllowed(group Group, name string) bool {
	for _, c := range ColorsFor(group) {
		if c == name {
			return true
		}
	}

	return false
}

// NormalizeColor keeps name when the group stocks it and falls back to the
// group's first color otherwise. Used when a member switches group.
func NormalizeColor(group Group, name string) string {
	if ColorAllowed(group, name) {
		return name
	}

	return ColorsFor(group)[0]
}
