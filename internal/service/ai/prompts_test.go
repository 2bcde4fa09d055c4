package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vetpost/backend/internal/service/ai"
)

func TestStyleFor_KnownTones(t *testing.T) {
	want := map[string]string{
		"Informativo":  "foto realista, clara e bem iluminada",
		"Profissional": "foto profissional de estúdio, com fundo neutro",
		"Divertido":    "ilustração colorida e divertida no estilo cartoon ou 3D Pixar",
		"Empático":     "foto com iluminação suave e quente, transmitindo emoção",
		"Urgente":      "foto com um leve toque dramático, foco nítido no problema",
	}
	for tone, style := range want {
		require.Equal(t, style, ai.StyleFor(tone), "tone %q", tone)
	}
}

func TestStyleFor_UnknownTonesFallBack(t *testing.T) {
	for _, tone := range []string{"", "informativo", "Urgente ", "Fun", "<script>", "Empatico"} {
		require.Equal(t, ai.DefaultStyle, ai.StyleFor(tone), "tone %q", tone)
	}
}

func TestTones_ReturnsCopyInOrder(t *testing.T) {
	tones := ai.Tones()
	require.Equal(t, []string{"Informativo", "Profissional", "Divertido", "Empático", "Urgente"}, tones)

	tones[0] = "changed"
	require.Equal(t, "Informativo", ai.Tones()[0])
}

func TestBuildPrompt_EmbedsInputsAndShape(t *testing.T) {
	prompt := ai.BuildPrompt("Dia do Veterinário: Homenagem à profissão.", "Divertido", ai.StyleFor("Divertido"))
	require.Contains(t, prompt, `"Dia do Veterinário: Homenagem à profissão."`)
	require.Contains(t, prompt, "Tom da comunicação: Divertido.")
	require.Contains(t, prompt, "estilo cartoon ou 3D Pixar")
	require.Contains(t, prompt, "exatamente três campos")
	require.Contains(t, prompt, `"caption"`)
	require.Contains(t, prompt, `"hashtags": array com 7 a 10 hashtags`)
	require.Contains(t, prompt, `"imagePrompt"`)
	require.Contains(t, prompt, "PORTUGUÊS")
	require.Contains(t, prompt, "NÃO use markdown")
}

func TestBuildCaptionPrompt_OmitsImagePrompt(t *testing.T) {
	prompt := ai.BuildCaptionPrompt("Tema", "Urgente")
	require.Contains(t, prompt, `"Tema"`)
	require.Contains(t, prompt, "Tom da comunicação: Urgente.")
	require.Contains(t, prompt, `"hashtags"`)
	require.NotContains(t, prompt, `"imagePrompt"`)
}

func TestBuildImagePrompt_UsesStyle(t *testing.T) {
	prompt := ai.BuildImagePrompt("Tema", ai.DefaultStyle)
	require.Contains(t, prompt, "Estilo: foto realista.")
	require.Contains(t, prompt, `"imagePrompt"`)
	require.NotContains(t, prompt, `"caption"`)
}

func TestSchemas_FieldNames(t *testing.T) {
	require.Equal(t, []string{"caption", "hashtags", "imagePrompt"}, ai.PostSchema.FieldNames())
	require.Equal(t, []string{"caption", "hashtags"}, ai.CaptionSchema.FieldNames())
	require.Equal(t, []string{"imagePrompt"}, ai.ImagePromptSchema.FieldNames())
	require.Contains(t, ai.PostSchema.Instruction(), "caption, hashtags, imagePrompt")
}

func TestSchema_JSONSchema(t *testing.T) {
	js := ai.CaptionSchema.JSONSchema()
	require.Equal(t, "object", js["type"])
	require.Equal(t, []string{"caption", "hashtags"}, js["required"])

	props := js["properties"].(map[string]any)
	hashtags := props["hashtags"].(map[string]any)
	require.Equal(t, "array", hashtags["type"])
	require.Equal(t, map[string]any{"type": "string"}, hashtags["items"])
	require.Equal(t, "string", props["caption"].(map[string]any)["type"])
}
