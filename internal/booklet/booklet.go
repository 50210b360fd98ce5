// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package booklet computes the page order for duplex booklet printing.

Pages are paired from the outside in: the first sheet carries the first and
last page on its front and the second and second-to-last page on its back,
and so on until the two ends meet. Printing pages in [Sequence] order and
folding the stack yields pages in reading order.

The page layout driver does not consume this order; the planner's physical
page order comes from its own front/back alternation. Sequence is exposed to
the CLI and the HTTP API as a printing aid.
*/
package booklet

import "github.com/taibuivan/daybook/internal/platform/apperr"

// PagesPerSheet is the number of logical pages carried by one folded, duplex-printed sheet.
const PagesPerSheet = 4

// Sheet describes the pages printed on the two sides of one physical sheet.
type Sheet struct {
	Number int    `json:"number"`
	Front  [2]int `json:"front"`
	Back   [2]int `json:"back"`
}

// Sequence returns the linear page order for a booklet of totalPages pages.
//
// The walk starts with left=1 and right=totalPages and emits
// (left, right, left+1, right-1) while left < right.
//
// # Errors
//
//   - INVALID_PAGE_COUNT when totalPages is not a positive multiple of 4.
func Sequence(totalPages int) ([]int, error) {
	if totalPages < 1 || totalPages%PagesPerSheet != 0 {
		return nil, apperr.InvalidPageCount(totalPages)
	}

	order := make([]int, 0, totalPages)
	for left, right := 1, totalPages; left < right; left, right = left+2, right-2 {
		order = append(order, left, right, left+1, right-1)
	}

	return order, nil
}

// Sheets groups [Sequence] into physical sheets.
func Sheets(totalPages int) ([]Sheet, error) {
	order, err := Sequence(totalPages)
	if err != nil {
		return nil, err
	}

	sheets := make([]Sheet, 0, len(order)/PagesPerSheet)
	for i := 0; i+PagesPerSheet <= len(order); i += PagesPerSheet {
		sheets = append(sheets, Sheet{
			Number: i/PagesPerSheet + 1,
			Front:  [2]int{order[i], order[i+1]},
			Back:   [2]int{order[i+2], order[i+3]},
		})
	}

	return sheets, nil
}

// Padded rounds pages up to the next multiple of [PagesPerSheet], which is
// the page total a printer needs once blank pages fill the last sheet.
func Padded(pages int) int {
	if pages <= 0 {
		return 0
	}
	return (pages + PagesPerSheet - 1) / PagesPerSheet * PagesPerSheet
}
