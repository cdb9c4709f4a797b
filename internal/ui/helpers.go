package ui

// truncate shortens s to at most max runes, appending "..." when it cuts.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := make([]rune, width-len(runes))
	for i := range pad {
		pad[i] = ' '
	}
	return s + string(pad)
}
