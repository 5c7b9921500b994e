// ABOUTME: Degraded answers for when every generation attempt has failed
// ABOUTME: A raw provider failure must never reach the end user when context exists
package llm

import "strings"

// NoInformationMessage is returned when generation fails and the context
// offers nothing to quote.
const NoInformationMessage = "I cannot find that in the site knowledge right now. Please try again in a moment."

// excerptLen bounds the verbatim context excerpt in a degraded answer.
const excerptLen = 400

// FallbackAnswer builds a degraded answer after all generation attempts
// failed. If the question text appears literally in the context, the
// surrounding excerpt is returned verbatim; otherwise a fixed
// no-information message.
func FallbackAnswer(question, context string) string {
	q := strings.TrimSpace(strings.ToLower(question))
	if q == "" || context == "" {
		return NoInformationMessage
	}

	idx := strings.Index(strings.ToLower(context), q)
	if idx < 0 {
		return NoInformationMessage
	}

	end := idx + excerptLen
	if end > len(context) {
		end = len(context)
	}
	return strings.TrimSpace(context[idx:end])
}
