package ai

// DefaultStyle is the image style used for tones outside the known set.
const DefaultStyle = "foto realista"

// Tone labels as sent by the post form.
const (
	ToneInformative  = "Informativo"
	ToneProfessional = "Profissional"
	ToneFun          = "Divertido"
	ToneEmpathetic   = "Empático"
	ToneUrgent       = "Urgente"
)

var toneOrder = []string{ToneInformative, ToneProfessional, ToneFun, ToneEmpathetic, ToneUrgent}

var toneStyles = map[string]string{
	ToneInformative:  "foto realista, clara e bem iluminada",
	ToneProfessional: "foto profissional de estúdio, com fundo neutro",
	ToneFun:          "ilustração colorida e divertida no estilo cartoon ou 3D Pixar",
	ToneEmpathetic:   "foto com iluminação suave e quente, transmitindo emoção",
	ToneUrgent:       "foto com um leve toque dramático, foco nítido no problema",
}

// StyleFor returns the image style descriptor for tone.
// Matching is exact; anything else gets DefaultStyle.
func StyleFor(tone string) string {
	if style, ok := toneStyles[tone]; ok {
		return style
	}
	return DefaultStyle
}

// Tones returns the known tone labels in display order.
func Tones() []string {
	out := make([]string, len(toneOrder))
	copy(out, toneOrder)
	return out
}
