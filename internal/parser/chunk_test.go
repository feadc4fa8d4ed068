package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_EmptyInput(t *testing.T) {
	assert.Nil(t, ChunkText("", 500, 100, 50))
	assert.Nil(t, ChunkText("   \n\t  ", 500, 100, 50))
}

func TestChunkText_ShorterThanMin(t *testing.T) {
	assert.Nil(t, ChunkText("too short", 500, 100, 50))
}

func TestChunkText_SingleChunk(t *testing.T) {
	text := strings.Repeat("a", 300)
	chunks := ChunkText(text, 500, 100, 50)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestChunkText_ThreeChunksAt1200(t *testing.T) {
	// 1200 chars with no sentence boundaries, 500/100 window: exactly 3
	// chunks, overlapping by 100.
	text := strings.Repeat("a", 1200)
	chunks := ChunkText(text, 500, 100, 50)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 400)
}

func TestChunkText_Deterministic(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 40)
	first := ChunkText(text, 500, 100, 50)
	second := ChunkText(text, 500, 100, 50)
	assert.Equal(t, first, second)
}

func TestChunkText_MinimumLength(t *testing.T) {
	texts := []string{
		strings.Repeat("a", 1200),
		strings.Repeat("Word after word without end ", 100),
		strings.Repeat("Short. ", 200),
	}
	for _, text := range texts {
		for _, chunk := range ChunkText(text, 500, 100, 50) {
			assert.GreaterOrEqual(t, len(chunk), 50)
		}
	}
}

func TestChunkText_SentenceBoundaryPreferred(t *testing.T) {
	// A period sits inside the 100-char lookback window; the first chunk
	// should end right after it rather than at the hard window edge.
	sentence := strings.Repeat("b", 450) + ". "
	text := sentence + strings.Repeat("c", 600)
	chunks := ChunkText(text, 500, 100, 50)
	require.NotEmpty(t, chunks)
	assert.True(t, strings.HasSuffix(chunks[0], "."), "chunk should end at sentence boundary, got %q", chunks[0][len(chunks[0])-10:])
	assert.Len(t, chunks[0], 451)
}

func TestChunkText_CollapsesWhitespace(t *testing.T) {
	text := "first\t\tpart\n\nof   the document " + strings.Repeat("x", 100)
	chunks := ChunkText(text, 500, 100, 50)
	require.Len(t, chunks, 1)
	assert.Equal(t, "first part of the document "+strings.Repeat("x", 100), chunks[0])
}

func TestChunkText_OverlapBounded(t *testing.T) {
	text := strings.Repeat("a", 1200)
	chunks := ChunkText(text, 500, 100, 50)
	require.Len(t, chunks, 3)
	// Each chunk starts 400 chars after the previous one.
	assert.Equal(t, chunks[0][400:], chunks[1][:100])
	assert.Equal(t, chunks[1][400:], chunks[2][:100])
}

func TestChunkText_MultibyteRunes(t *testing.T) {
	// 1200 characters of a 3-byte rune: the window must count characters,
	// not bytes, and window edges must never split a rune.
	text := strings.Repeat("日", 1200)
	chunks := ChunkText(text, 500, 100, 50)
	require.Len(t, chunks, 3)
	for i, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "chunk %d is not valid UTF-8", i)
	}
	assert.Equal(t, 500, utf8.RuneCountInString(chunks[0]))
	assert.Equal(t, 500, utf8.RuneCountInString(chunks[1]))
	assert.Equal(t, 400, utf8.RuneCountInString(chunks[2]))
}

func TestChunkText_MultibyteSingleChunk(t *testing.T) {
	// 400 characters fit in one 500-char window even though they span
	// 1200 bytes.
	text := strings.Repeat("日", 400)
	chunks := ChunkText(text, 500, 100, 50)
	require.Len(t, chunks, 1)
	assert.True(t, utf8.ValidString(chunks[0]))
	assert.Equal(t, 400, utf8.RuneCountInString(chunks[0]))
}

func TestChunkText_MultibyteMinimumInCharacters(t *testing.T) {
	// 40 characters is below the 50-char minimum even at 120 bytes.
	assert.Nil(t, ChunkText(strings.Repeat("日", 40), 500, 100, 50))
}

func TestChunkText_DegenerateParams(t *testing.T) {
	text := strings.Repeat("a", 300)
	assert.Nil(t, ChunkText(text, 0, 100, 50))
	// overlap >= size falls back to size/2 instead of looping forever
	assert.NotEmpty(t, ChunkText(text, 100, 100, 50))
	assert.NotEmpty(t, ChunkText(text, 100, -5, 50))
}
