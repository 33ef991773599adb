// Package garment maps family members onto the fulfillment vendor's garment catalog.
package garment

import (
	"strings"
	"unicode"
)

// Group is the demographic cut of a garment.
type Group string

const (
	GroupMen   Group = "MEN"
	GroupWomen Group = "WOMEN"
	GroupKids  Group = "KIDS"
)

// Groups lists every garment group in display order.
var Groups = []Group{GroupMen, GroupWomen, GroupKids}

// ParseGroup accepts a group name in any case. The empty string is not a group.
func ParseGroup(s string) (Group, bool) {
	switch Group(strings.ToUpper(strings.TrimSpace(s))) {
	case GroupMen:
		return GroupMen, true
	case GroupWomen:
		return GroupWomen, true
	case GroupKids:
		return GroupKids, true
	default:
		return "", false
	}
}

// GroupSource tells whether a group came from the user or from the text classifier.
type GroupSource string

const (
	SourceExplicit GroupSource = "explicit"
	SourceInferred GroupSource = "inferred"
)

// GroupChoice is a resolved group tagged with where it came from.
type GroupChoice struct {
	Group  Group
	Source GroupSource
}

// ResolveGroup returns the explicit group when one is set, else the classifier's guess.
func ResolveGroup(explicit Group, name, description string) GroupChoice {
	if g, ok := ParseGroup(string(explicit)); ok {
		return GroupChoice{Group: g, Source: SourceExplicit}
	}

	return GroupChoice{Group: Classify(name, description), Source: SourceInferred}
}

var (
	kidHints   = []string{"kid", "child", "children", "son", "daughter", "boy", "girl", "toddler", "infant", "baby"}
	womenHints = []string{"mom", "mum", "mother", "wife", "wives", "her", "hers", "she", "sister", "aunt", "grandma", "woman", "women", "lady", "ladies"}

	// kinPrefixes are stripped so compounds like grandson or stepmom still match.
	kinPrefixes = []string{"grand", "step", "god"}
)

// Classify guesses a group from free text. Child words win over female-relation
// words, and anything else is MEN. Matching is per word, so "person" does not
// count as "son".
func Classify(name, description string) Group {
	tokens := tokenize(name + " " + description)

	if anyHint(tokens, kidHints) {
		return GroupKids
	}
	if anyHint(tokens, womenHints) {
		return GroupWomen
	}

	return GroupMen
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func anyHint(tokens, hints []string) bool {
	for _, token := range tokens {
		for _, candidate := range tokenForms(token) {
			for _, hint := range hints {
				if candidate == hint {
					return true
				}
			}
		}
	}

	return false
}

// tokenForms yields the token plus its singular and un-prefixed forms.
func tokenForms(token string) []string {
	forms := []string{token}
	for _, prefix := range kinPrefixes {
		if rest, ok := strings.CutPrefix(token, prefix); ok && rest != "" {
			forms = append(forms, rest)
		}
	}

	for _, f := range forms {
		if len(f) > 3 && strings.HasSuffix(f, "s") {
			forms = append(forms, strings.TrimSuffix(f, "s"))
		}
	}

	return forms
}
