package tui

// editDigits processes a keystroke for an inline numeric input. Handles
// backspace and single decimal digits; every other key leaves the text
// unchanged. Input is clamped to maxLen digits.
func editDigits(text, key string, maxLen int) string {
	switch {
	case key == "backspace":
		if len(text) > 0 {
			return text[:len(text)-1]
		}
		return text
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if len(text) >= maxLen {
			return text
		}
		return text + key
	default:
		return text
	}
}
