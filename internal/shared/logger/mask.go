package logger

import "strings"

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	parts := strings.Split(phone, "-")
	if len(parts) != 3 {
		return "***"
	}
	return parts[0] + "-" + strings.Repeat("*", len([]rune(parts[1]))) + "-" + parts[2]
}

// Example: 990101-1 -> 99****-*
func MaskBirthday(birthday string) string {
	runes := []rune(birthday)
	if len(runes) < 2 {
		return "***"
	}

	masked := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case i < 2, r == '-':
			masked[i] = r
		default:
			masked[i] = '*'
		}
	}
	return string(masked)
}

// Example: minsu -> m***
func MaskValue(value string) string {
	runes := []rune(value)
	if len(runes) == 0 {
		return ""
	}

	// Keep only first character
	return string(runes[:1]) + "***"
}
