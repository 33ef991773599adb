package entity

// Style is an art style offered for stylization.
type Style struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PromptModifier string `json:"promptModifier"`
}

const DefaultStyleID = "cartoon"

var styles = []Style{
	{ID: "cartoon", Name: "Modern Cartoon", PromptModifier: "in a cute, vibrant modern vector cartoon style, flat colors, clean lines, white background"},
	{ID: "pixar", Name: "3D Character", PromptModifier: "as a cute 3D animated movie character, pixar style, soft lighting, 3d render, white background"},
	{ID: "retro", Name: "Retro 80s", PromptModifier: "in a retro 1980s synthwave style, neon outlines, vintage texture, white background"},
	{ID: "anime", Name: "Anime", PromptModifier: "as a japanese anime character, studio ghibli style, vibrant colors, cel shaded, white background"},
	{ID: "clay", Name: "Claymation", PromptModifier: "as a claymation figurine, stop motion style, plasticine texture, soft focus, white background"},
	{ID: "sketch", Name: "Pencil Sketch", PromptModifier: "as a high quality artistic charcoal pencil sketch, highly detailed, white background"},
	{ID: "hero", Name: "Superhero", PromptModifier: "reimagined as a heroic comic book superhero character, dynamic pose, bold colors, white background"},
	{ID: "oil", Name: "Oil Painting", PromptModifier: "as a classic oil painting, thick brush strokes, impressionist style, artistic, white background"},
	{ID: "realistic", Name: "Enhanced Realistic", PromptModifier: "professional studio photography portrait, perfect lighting, 4k, highly detailed"},
}

// Styles returns the style catalog in display order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)

	return out
}

// LookupStyle finds a style by id.
func LookupStyle(id string) (Style, bool) {
	for _, s := range styles {
		if s.ID == id {
			return s, true
		}
	}

	return Style{}, false
}

// StyleOrDefault falls back to the first style for unknown ids.
func StyleOrDefault(id string) Style {
	if s, ok := LookupStyle(id); ok {
		return s
	}

	return styles[0]
}
