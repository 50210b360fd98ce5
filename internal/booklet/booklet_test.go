// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package booklet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/daybook/internal/booklet"
	"github.com/taibuivan/daybook/internal/platform/apperr"
)

/*
TestSequence_Known checks the sequencer against hand-computed orders.
*/
func TestSequence_Known(t *testing.T) {
	tests := []struct {
		pages int
		want  []int
	}{
		{4, []int{1, 4, 2, 3}},
		{8, []int{1, 8, 2, 7, 3, 6, 4, 5}},
		{12, []int{1, 12, 2, 11, 3, 10, 4, 9, 5, 8, 6, 7}},
	}

	for _, tt := range tests {
		got, err := booklet.Sequence(tt.pages)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

/*
TestSequence_Properties verifies pairing and monotonicity for every valid total up to 200.
*/
func TestSequence_Properties(t *testing.T) {
	for pages := 4; pages <= 200; pages += 4 {
		order, err := booklet.Sequence(pages)
		require.NoError(t, err)
		require.Len(t, order, pages)

		// Every page appears exactly once.
		seen := make(map[int]bool, pages)
		for _, p := range order {
			require.False(t, seen[p], "page %d emitted twice for %d pages", p, pages)
			seen[p] = true
		}

		previousLeft, previousRight := 0, pages+1
		for i := 0; i < len(order); i += 4 {
			left, right := order[i], order[i+1]
			assert.Equal(t, pages+1, left+right)
			assert.Equal(t, pages+1, order[i+2]+order[i+3])
			assert.Greater(t, left, previousLeft)
			assert.Less(t, right, previousRight)
			previousLeft, previousRight = left, right
		}
	}
}

/*
TestSequence_InvalidPageCount verifies that totals which cannot be paired are rejected.
*/
func TestSequence_InvalidPageCount(t *testing.T) {
	for _, pages := range []int{-4, 0, 1, 2, 6, 10, 26} {
		_, err := booklet.Sequence(pages)
		require.Error(t, err, "pages=%d", pages)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidPageCount))
	}
}

func TestSheets(t *testing.T) {
	sheets, err := booklet.Sheets(8)
	require.NoError(t, err)
	require.Len(t, sheets, 2)

	assert.Equal(t, booklet.Sheet{Number: 1, Front: [2]int{1, 8}, Back: [2]int{2, 7}}, sheets[0])
	assert.Equal(t, booklet.Sheet{Number: 2, Front: [2]int{3, 6}, Back: [2]int{4, 5}}, sheets[1])

	_, err = booklet.Sheets(6)
	assert.Error(t, err)
}

/*
TestPadded checks the rounding to whole sheets.
*/
func TestPadded(t *testing.T) {
	tests := []struct {
		pages int
		want  int
	}{
		{-3, 0},
		{0, 0},
		{1, 4},
		{4, 4},
		{5, 8},
		{26, 28},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, booklet.Padded(tt.pages), "pages=%d", tt.pages)
		if tt.want > 0 {
			_, err := booklet.Sequence(booklet.Padded(tt.pages))
			assert.NoError(t, err)
		}
	}
}
