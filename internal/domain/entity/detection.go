package entity

// BoxScale is the coordinate range of detection boxes.
const BoxScale = 1000

// DetectedPerson is one person found by photo analysis. Box is
// [ymin, xmin, ymax, xmax] on a 0-1000 scale.
type DetectedPerson struct {
	Description string `json:"description"`
	Box         []int  `json:"box_2d"`
}

// ValidBox reports whether Box has four coordinates spanning a positive area.
func (p DetectedPerson) ValidBox() bool {
	if len(p.Box) != 4 {
		return false
	}

	return p.Box[2] > p.Box[0] && p.Box[3] > p.Box[1]
}
