package garment

import "strings"

// Size is a shirt size label as the catalog knows it.
type Size string

const DefaultSize Size = "M"

// Sizes lists the orderable sizes, smallest first.
var Sizes = []Size{"XS", "S", "M", "L", "XL", "2XL", "3XL"}

// ParseSize normalizes a size label. The empty string is not a size.
func ParseSize(s string) (Size, bool) {
	candidate := Size(strings.ToUpper(strings.TrimSpace(s)))
	for _, size := range Sizes {
		if size == candidate {
			return size, true
		}
	}

	return "", false
}
