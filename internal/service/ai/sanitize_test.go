package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vetpost/backend/internal/service/ai"
)

func TestStripMarkdown(t *testing.T) {
	require.Equal(t, "Hello world", ai.StripMarkdown("**Hello** world"))
	require.Equal(t, "bold  under strike code", ai.StripMarkdown("__bold__  __under__ ~~strike~~ `code`"))
	require.Equal(t, "line one\n\nline two ", ai.StripMarkdown("line **one**\n\nline two "))
	require.Equal(t, "*single* stays", ai.StripMarkdown("*single* stays"))
}

func TestSanitizeCaption(t *testing.T) {
	require.Equal(t, "Hello world", ai.SanitizeCaption("**Hello** world"))
	require.Equal(t, "Cuide do seu pet 🐶\nAgende já!", ai.SanitizeCaption("  Cuide do seu <b>pet</b> 🐶\nAgende já!  "))
	require.Equal(t, "Tom & Jerry's vet <3", ai.SanitizeCaption("Tom & Jerry's vet <3"))
	require.Equal(t, "sem tags", ai.SanitizeCaption("<p>sem <em>tags</em></p>"))
	require.Equal(t, "Gatos <gatinhos e cães", ai.SanitizeCaption("Gatos <gatinhos e cães"))
	require.Equal(t, "Use a coleira <sempre> no passeio!", ai.SanitizeCaption("Use a coleira <sempre> no passeio!"))
	require.Equal(t, "Vacina em dia <3 sempre", ai.SanitizeCaption("<b>Vacina</b> em dia <3 sempre"))
}

func TestNormalizeHashtags(t *testing.T) {
	got := ai.NormalizeHashtags([]string{" #PetSaudavel", "vacina", "", "##Gatos", "  ", "**cao**", "vet care"})
	require.Equal(t, []string{"#PetSaudavel", "#vacina", "#Gatos", "#cao", "#vetcare"}, got)
	require.Empty(t, ai.NormalizeHashtags(nil))
}

func TestExtractJSON(t *testing.T) {
	require.Equal(t, `{"a":1}`, ai.ExtractJSON(` {"a":1} `))
	require.Equal(t, `{"a":1}`, ai.ExtractJSON("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, ai.ExtractJSON("```\n{\"a\":1}\n```\n"))
	require.Equal(t, "not json", ai.ExtractJSON("not json"))
}
