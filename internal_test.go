package tileutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padCell("ab", 4, " "))
	assert.Equal(t, "ab--", padCell("ab", 4, "-"))
	assert.Equal(t, "abcd", padCell("abcd", 4, " "))
	assert.Equal(t, "abcde", padCell("abcde", 4, " "))
}

func TestPadCellWideRunes(t *testing.T) {
	t.Parallel()
	// "你" is 2 display columns wide, so only 2 pad characters are needed.
	assert.Equal(t, "你  ", padCell("你", 4, " "))
}

func TestWriteRowTruncatesToColumnCount(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	writeRow(&sb, []string{"a", "b", "c"}, []int{1, 1}, " ", 0, 0)
	assert.Equal(t, "a b \n", sb.String())
}

func TestWriteRowMinWidthStretch(t *testing.T) {
	t.Parallel()
	// A single 1-wide dash cell renders as "- " (2 columns). Stretching to
	// minWidth 5 drops the trailing separator and fills with pad.
	var sb strings.Builder
	writeRow(&sb, []string{""}, []int{1}, "-", 0, 5)
	assert.Equal(t, "-----\n", sb.String())
}

func TestWriteRowMinWidthAlreadyWide(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	writeRow(&sb, []string{"abc"}, []int{3}, " ", 0, 2)
	assert.Equal(t, "abc \n", sb.String())
}

func TestWriteRowNoCells(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	writeRow(&sb, nil, nil, "-", 0, 5)
	assert.Equal(t, "\n", sb.String())
}
