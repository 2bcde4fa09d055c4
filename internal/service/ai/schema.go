package ai

import "strings"

// FieldType is the JSON type of a response field.
type FieldType string

const (
	FieldString      FieldType = "string"
	FieldStringArray FieldType = "string_array"
)

// Field describes one property of a structured response.
type Field struct {
	Name        string
	Type        FieldType
	Description string
}

// Schema describes the JSON object a prompt asks the provider for.
// All fields are required.
type Schema struct {
	Name   string
	Fields []Field
}

// FieldNames returns the field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// JSONSchema renders s as a JSON Schema object.
func (s Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		prop := map[string]any{"description": f.Description}
		switch f.Type {
		case FieldStringArray:
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		default:
			prop["type"] = "string"
		}
		props[f.Name] = prop
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             s.FieldNames(),
		"additionalProperties": false,
	}
}

var (
	captionField = Field{
		Name:        "caption",
		Type:        FieldString,
		Description: "Legenda do post em texto puro, sem markdown.",
	}
	hashtagsField = Field{
		Name:        "hashtags",
		Type:        FieldStringArray,
		Description: "Entre 7 e 10 hashtags relevantes.",
	}
	imagePromptField = Field{
		Name:        "imagePrompt",
		Type:        FieldString,
		Description: "Prompt curto em português para um gerador de imagens.",
	}
)

// PostSchema is the shape requested by BuildPrompt.
var PostSchema = Schema{Name: "post", Fields: []Field{captionField, hashtagsField, imagePromptField}}

// CaptionSchema is the shape requested by BuildCaptionPrompt.
var CaptionSchema = Schema{Name: "caption", Fields: []Field{captionField, hashtagsField}}

// ImagePromptSchema is the shape requested by BuildImagePrompt.
var ImagePromptSchema = Schema{Name: "image_prompt", Fields: []Field{imagePromptField}}

// Instruction is a short system message restating the expected shape, for
// providers whose JSON mode is not schema constrained.
func (s Schema) Instruction() string {
	return "Responda somente com um objeto JSON válido contendo os campos " + strings.Join(s.FieldNames(), ", ") + ". Não use blocos de código."
}
