// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

// # Plan Model

// Rect is an axis-aligned area in page coordinates (bottom-left origin).
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Cell is one day on a page.
type Cell struct {
	Week int  `json:"week"`
	Day  int  `json:"day"`
	Area Rect `json:"area"`
}

// Page is one physical page: a top half and a bottom half of day-cells.
type Page struct {
	Number     int    `json:"number"`
	Front      bool   `json:"front"`
	TopWeek    int    `json:"top_week"`
	BottomWeek int    `json:"bottom_week"`
	Cells      []Cell `json:"cells"`
}

// # Planning

// NormalizeWeeks rounds an odd week count up to the next even number.
func NormalizeWeeks(weeks int) int {
	if weeks%2 != 0 {
		return weeks + 1
	}
	return weeks
}

// PageCount returns the number of pages a plan for weeks will contain.
func PageCount(weeks int) int {
	if weeks <= 0 {
		return 0
	}
	return NormalizeWeeks(weeks) / 2
}

// BuildPlan assigns weeks to pages for folding.
//
// The first page is a front page: the last week on the top half and the
// first week on the bottom half. Every following page flips that arrangement
// while the two week counters move towards each other, so that each printed
// page pairs week k with week N+1-k.
func BuildPlan(weeks int, l Layout) []Page {
	weeks = NormalizeWeeks(weeks)
	if weeks <= 0 {
		return nil
	}

	pages := make([]Page, 0, weeks/2)
	weekStart, weekEnd := 1, weeks
	front := true

	for number := 1; number <= weeks/2; number++ {
		page := Page{Number: number, Front: front}

		// 1. Pick which week populates each half
		if front {
			page.TopWeek, page.BottomWeek = weekEnd, weekStart
		} else {
			page.TopWeek, page.BottomWeek = weekStart, weekEnd
		}

		// 2. Lay out the cells: top half first, left to right
		page.Cells = make([]Cell, 0, l.CellsPerPage())
		page.Cells = appendHalf(page.Cells, page.TopWeek, l.PageHeight, l.PageHeight/2, l)
		page.Cells = appendHalf(page.Cells, page.BottomWeek, l.PageHeight/2, 0, l)

		pages = append(pages, page)

		// 3. Advance towards the middle
		weekStart++
		weekEnd--
		front = !front
	}

	return pages
}

// appendHalf adds one row of Columns cells spanning [bottom, top] for week.
func appendHalf(cells []Cell, week int, top, bottom float64, l Layout) []Cell {
	width := l.CellWidth()
	for i := 0; i < l.Columns; i++ {
		cells = append(cells, Cell{
			Week: week,
			Day:  i + 1,
			Area: Rect{
				Left:   float64(i) * width,
				Top:    top,
				Right:  float64(i)*width + width,
				Bottom: bottom,
			},
		})
	}
	return cells
}
