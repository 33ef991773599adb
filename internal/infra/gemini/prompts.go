package gemini

import (
	"fmt"

	"google.golang.org/genai"
)

const analysisPrompt = "Analyze this image. Detect all distinct human faces/people. " +
	"For each person, provide a bounding box (ymin, xmin, ymax, xmax on a 0-1000 scale) " +
	"and a brief visual description (e.g. 'Smiling man with beard')."

func stylizePrompt(description, styleModifier string) string {
	return fmt.Sprintf("Create a t-shirt graphic design based on this person: \"%s\". The style must be: %s. "+
		"Maintain the person's key facial features, hair, and expression but adapt them to the style. "+
		"Return a square PNG with a completely transparent background around the character "+
		"(no solid white box, no borders), suitable to be overlaid on a colored shirt. High quality.",
		description, styleModifier)
}

func previewPrompt(label string) string {
	return "Take the family in the first photo and keep their faces, expressions, body poses, and background as close as possible to the original. " +
		"Put each visible person in a short-sleeve t-shirt that uses the second image as a front chest print. " +
		fmt.Sprintf("Make it look like a real photo of the same family now wearing their matching \"%s\" shirts. ", label) +
		"Do not add or remove people."
}

// analysisSchema constrains the analysis model to {people: [{description, box_2d}]}.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"people": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": {Type: genai.TypeString},
					"box_2d": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeInteger},
						Description: "Bounding box [ymin, xmin, ymax, xmax] with 0-1000 scale",
					},
				},
			},
		},
	},
}
