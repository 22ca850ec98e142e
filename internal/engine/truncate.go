package engine

// TruncationMarker is appended when document text exceeds the character
// budget, so the model sees that content was cut rather than ended.
const TruncationMarker = "\n\n[Content truncated due to length]\n\n"

// Truncate caps text at budget characters, appending the truncation marker
// when a cut occurs. The cap is a hard, deterministic limit approximating
// the model's token ceiling; it is never adaptive.
func Truncate(text string, budget int) string {
	if budget <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget]) + TruncationMarker
}
