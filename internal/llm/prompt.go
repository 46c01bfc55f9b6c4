package llm

import "fmt"

const translationSystemPrompt = `You are a translation assistant for Hindi learners.

Rules:
- Translate the given English sentence to accurate, natural Hindi
- Preserve the original meaning; do not add or remove information
- Output ONLY the Hindi translation, nothing else
- If the input is empty or nonsensical, return it as-is`

// BuildTranslationPrompt wraps a sentence for the translation request.
func BuildTranslationPrompt(text string) string {
	return fmt.Sprintf("Translate to accurate Hindi: %s", text)
}
