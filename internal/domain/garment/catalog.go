package garment

// Line is one product line of the vendor catalog. Adult lines fill ByColor;
// the kids line fills BySize and ignores color.
type Line struct {
	BlueprintID int
	ByColor     map[string]map[Size]int
	BySize      map[Size]int
}

// Catalog is the read-only garment mapping loaded at startup.
// Its zero value resolves nothing.
type Catalog struct {
	lines map[Group]Line
}

// NewCatalog copies the given lines so later changes to the inputs cannot leak in.
func NewCatalog(men, women, kids Line) *Catalog {
	return &Catalog{
		lines: map[Group]Line{
			GroupMen:   copyLine(men),
			GroupWomen: copyLine(women),
			GroupKids:  copyLine(kids),
		},
	}
}

func copyLine(l Line) Line {
	out := Line{BlueprintID: l.BlueprintID}
	if l.ByColor != nil {
		out.ByColor = make(map[string]map[Size]int, len(l.ByColor))
		for color, sizes := range l.ByColor {
			inner := make(map[Size]int, len(sizes))
			for size, id := range sizes {
				inner[size] = id
			}
			out.ByColor[color] = inner
		}
	}
	if l.BySize != nil {
		out.BySize = make(map[Size]int, len(l.BySize))
		for size, id := range l.BySize {
			out.BySize[size] = id
		}
	}

	return out
}

// ResolveBlueprint returns the group's blueprint, falling back to the MEN
// blueprint when the group has none configured.
func (c *Catalog) ResolveBlueprint(group Group) (int, bool) {
	if c == nil {
		return 0, false
	}
	if id := c.lines[group].BlueprintID; id > 0 {
		return id, true
	}
	if id := c.lines[GroupMen].BlueprintID; id > 0 {
		return id, true
	}

	return 0, false
}

// ResolveVariant looks up the variant for a size and color. An empty size means
// M and an empty color means Black. KIDS looks up by size only. Adult groups
// try the requested color, then Black, then White, for that size. Not found is
// reported through ok and is not an error.
func (c *Catalog) ResolveVariant(group Group, size Size, color string) (int, bool) {
	if c == nil {
		return 0, false
	}
	if size == "" {
		size = DefaultSize
	}
	if color == "" {
		color = ColorBlack
	}

	line := c.lines[group]
	if group == GroupKids {
		id, found := line.BySize[size]

		return id, found && id > 0
	}

	for _, candidate := range []string{color, ColorBlack, ColorWhite} {
		if id := line.ByColor[candidate][size]; id > 0 {
			return id, true
		}
	}

	return 0, false
}

// Resolution is the vendor identity of one garment.
type Resolution struct {
	Group       GroupChoice
	BlueprintID int
	VariantID   int
}

// Resolve combines group resolution with blueprint and variant lookup.
func (c *Catalog) Resolve(choice GroupChoice, size Size, color string) (Resolution, bool) {
	blueprint, ok := c.ResolveBlueprint(choice.Group)
	if !ok {
		return Resolution{}, false
	}
	variant, ok := c.ResolveVariant(choice.Group, size, color)
	if !ok {
		return Resolution{}, false
	}

	return Resolution{Group: choice, BlueprintID: blueprint, VariantID: variant}, true
}
