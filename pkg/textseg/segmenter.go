package textseg

import "strings"

// 句末标点：中文句号/叹号/问号 + ASCII 叹号/问号
func isTerminator(c rune) bool {
	switch c {
	case '。', '！', '？', '!', '?':
		return true
	}
	return false
}

func isQuote(c rune) bool {
	switch c {
	case '"', '“', '”', '\'', '‘', '’':
		return true
	}
	return false
}

// closesQuote reports whether c ends a quotation opened by open.
// 中文引号允许正反两个方向配对，直引号只和自己配对。
func closesQuote(open, c rune) bool {
	if c == open {
		return true
	}
	switch {
	case open == '“' && c == '”':
		return true
	case open == '”' && c == '“':
		return true
	case open == '‘' && c == '’':
		return true
	case open == '’' && c == '‘':
		return true
	}
	return false
}

// Split cuts text into sentence segments on terminal punctuation,
// keeping the punctuation attached to its sentence. Terminators inside
// quotation marks do not split; a backslash escapes a quote character.
// Segments are trimmed and never empty. Text without any terminator
// comes back whole, and a quotation left open at the end of the input
// keeps the remainder as one segment.
func Split(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var parts []string
	var current []rune
	inQuotes := false
	var quoteChar rune

	for i, c := range runes {
		// 引号开合状态机，忽略被 \ 转义的引号
		if isQuote(c) && (i == 0 || runes[i-1] != '\\') {
			if !inQuotes {
				inQuotes = true
				quoteChar = c
			} else if closesQuote(quoteChar, c) {
				inQuotes = false
				quoteChar = 0
			}
		}

		current = append(current, c)
		if isTerminator(c) && !inQuotes {
			parts = append(parts, string(current))
			current = nil
		}
	}
	if len(current) > 0 {
		parts = append(parts, string(current))
	}

	var segments []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}

	// 没有任何有效分段时整体作为一段返回
	if len(segments) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}

	return segments
}
