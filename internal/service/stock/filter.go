package stock

import "strings"

// TypePhoto is the only media type kept by FilterPets.
const TypePhoto = "photo"

// petKeywords is matched case-insensitively as substrings against alt
// text, description and tags.
var petKeywords = []string{
	"dog", "cat", "puppy", "puppies", "kitten", "pet", "animal",
	"veterinary", "vet clinic",
	"cão", "cães", "cachorro", "filhote", "gato", "gatinho",
	"veterinário", "veterinária", "pet shop",
}

// IsPetPhoto reports whether p is a photo that mentions a pet keyword.
func IsPetPhoto(p Photo) bool {
	if p.Type != "" && !strings.EqualFold(p.Type, TypePhoto) {
		return false
	}
	fields := make([]string, 0, len(p.Tags)+2)
	if p.AltDescription != nil {
		fields = append(fields, *p.AltDescription)
	}
	if p.Description != nil {
		fields = append(fields, *p.Description)
	}
	fields = append(fields, p.Tags...)

	for _, field := range fields {
		field = strings.ToLower(field)
		for _, keyword := range petKeywords {
			if strings.Contains(field, keyword) {
				return true
			}
		}
	}
	return false
}

// FilterPets keeps the photos accepted by IsPetPhoto, in order.
func FilterPets(photos []Photo) []Photo {
	out := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if IsPetPhoto(p) {
			out = append(out, p)
		}
	}
	return out
}
