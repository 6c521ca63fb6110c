package bot

import "unicode/utf8"

// MaxReplyLength is Discord's message length limit in characters.
const MaxReplyLength = 2000

// FormatReply returns text unchanged when it has at most limit characters,
// otherwise its first limit characters. Characters are Unicode code points;
// there is no ellipsis and no word-boundary handling.
func FormatReply(text string, limit int) string {
	if limit <= 0 {
		limit = MaxReplyLength
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}
