package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Sentence terminators the chunker prefers to cut after, checked in order.
var sentenceEnds = []rune{'.', '?', '!'}

// How far back from the window end to look for a sentence boundary.
const boundaryLookback = 100

// ChunkText splits text into overlapping chunks of roughly size characters,
// preferring to end each chunk just after a sentence boundary found within
// the lookback window. Chunks shorter than minSize characters are dropped.
// All offsets are character counts, so window edges never split a multibyte
// rune. Pure function: identical input and parameters always yield
// identical chunks.
func ChunkText(text string, size, overlap, minSize int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 2
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minSize {
		return nil
	}

	runes := []rune(strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " ")))

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size

		if end < len(runes) {
			if idx := sentenceBoundary(runes, start, end); idx >= 0 {
				end = idx + 1
			}
		}

		sliceEnd := min(end, len(runes))
		if chunk := strings.TrimSpace(string(runes[start:sliceEnd])); utf8.RuneCountInString(chunk) >= minSize {
			chunks = append(chunks, chunk)
		}

		// Advance from the pre-clamp end so the final window never
		// re-emits a sliver of the tail.
		next := end - overlap
		if next <= start {
			break
		}
		start = next
	}

	return chunks
}

// sentenceBoundary returns the index of the last sentence terminator
// followed by a space within the lookback window before end, or -1.
// Terminators are tried in priority order across the whole window; a hit
// at the window start cannot produce a non-empty chunk and is skipped.
func sentenceBoundary(runes []rune, start, end int) int {
	searchStart := max(end-boundaryLookback, start)
	for _, punct := range sentenceEnds {
		for i := end - 2; i >= searchStart; i-- {
			if i > start && runes[i] == punct && runes[i+1] == ' ' {
				return i
			}
		}
	}
	return -1
}
