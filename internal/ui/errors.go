package ui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/contentply/contentply/internal/domain"
)

const (
	maxErrorLines  = 2
	minLineWidth   = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// errorPrefixFor returns the prefix shown before err. Messages written for the
// user (validation, quota, failed repurpose) are shown as they are.
func errorPrefixFor(err error) string {
	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrQuotaExceeded) ||
		errors.Is(err, domain.ErrRepurposeFailed) {
		return ""
	}
	return errorPrefix
}

// formatErrorForDisplay wraps the error message to maxWidth and keeps at most
// maxErrorLines lines, ending with "..." when the message had to be cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	prefix := errorPrefixFor(err)
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minLineWidth)
	firstWidth := max(width-utf8.RuneCountInString(prefix), minLineWidth)

	lines, truncated := wrapWords(words, firstWidth, width, maxErrorLines)
	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := width - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return prefix + strings.Join(lines, "\n")
}

// wrapWords greedily fills lines with words. It returns at most maxLines lines
// and reports whether words were left over.
func wrapWords(words []string, firstWidth, width, maxLines int) ([]string, bool) {
	var lines []string
	var current strings.Builder
	lineWidth := firstWidth

	for i, word := range words {
		currentLen := utf8.RuneCountInString(current.String())
		if currentLen > 0 && currentLen+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxLines {
				return lines, i < len(words)
			}
			lineWidth = width
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}

	lines = append(lines, current.String())
	return lines, false
}
