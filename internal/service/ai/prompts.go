package ai

import "fmt"

const rolePreamble = "Você é um especialista em marketing de mídia social para clínicas veterinárias."

const captionRules = `- "caption": legenda para um post no Instagram, em português do Brasil. Texto puro: NÃO use markdown nem marcações (nada de **, __, ~~, crases ou tags HTML). Emojis são permitidos.
- "hashtags": array com 7 a 10 hashtags relevantes, cada uma começando com #.`

const imagePromptRule = `- "imagePrompt": prompt curto e direto, escrito em PORTUGUÊS, para um gerador de imagens IA.`

// BuildPrompt returns the instruction for a complete post: caption,
// hashtags and image prompt in a single JSON object.
func BuildPrompt(topic, tone, style string) string {
	return fmt.Sprintf(`%s
Crie um post para o Instagram com base na ideia: "%s".
Tom da comunicação: %s.
Estilo da imagem: %s.

Retorne APENAS um objeto JSON com exatamente três campos:
%s
%s

Não inclua nenhum outro campo nem texto fora do JSON.`, rolePreamble, topic, tone, style, captionRules, imagePromptRule)
}

// BuildCaptionPrompt returns the instruction for caption and hashtags only.
func BuildCaptionPrompt(topic, tone string) string {
	return fmt.Sprintf(`%s
Sua tarefa é criar uma legenda e hashtags para um post no Instagram com base na ideia: "%s".
Tom da comunicação: %s.

Retorne APENAS um objeto JSON com exatamente dois campos:
%s

Não inclua nenhum outro campo nem texto fora do JSON.`, rolePreamble, topic, tone, captionRules)
}

// BuildImagePrompt returns the instruction for the image prompt only.
func BuildImagePrompt(topic, style string) string {
	return fmt.Sprintf(`Baseado na ideia "%s", crie um prompt para um gerador de imagens IA.
Estilo: %s.

Retorne APENAS um objeto JSON com exatamente um campo:
%s`, topic, style, imagePromptRule)
}
