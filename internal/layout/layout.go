// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package layout turns a week count into drawn daybook pages.

It owns three things:

  - Layout: the explicit geometry of a page and of a day-cell.
  - Plan: which week and weekday every cell on every page shows.
  - Render: the drawing of a plan on a [Surface].

All coordinates are PDF points with the origin at the bottom-left corner of
the page; the y axis grows upwards.

Layout fields carry `env` tags so that the configuration loader can override
single values through DAYBOOK_LAYOUT_* variables. Fields without an override keep
the value of [Default].
*/
package layout

import (
	"fmt"

	"github.com/taibuivan/daybook/internal/calendar"
	"github.com/taibuivan/daybook/internal/platform/apperr"
)

// # Geometry Schema

// Layout holds every size used to draw a page.
type Layout struct {

	// Page size (A4 landscape by default).
	PageWidth  float64 `env:"PAGE_WIDTH"  json:"page_width"`
	PageHeight float64 `env:"PAGE_HEIGHT" json:"page_height"`

	// Columns is the number of day-cells per half page.
	Columns int `env:"COLUMNS" json:"columns"`
	// DividerWidth is the stroke width of the page-splitting lines.
	DividerWidth float64 `env:"DIVIDER_WIDTH" json:"divider_width"`

	// Margin is the inset between a cell border and its content.
	Margin float64 `env:"MARGIN" json:"margin"`
	// BoxHeight is the height of one to-do or meeting row.
	BoxHeight float64 `env:"BOX_HEIGHT" json:"box_height"`
	// CornerRadius rounds every to-do and meeting box.
	CornerRadius float64 `env:"CORNER_RADIUS" json:"corner_radius"`
	// BoxLineWidth is the stroke width of to-do and meeting boxes.
	BoxLineWidth float64 `env:"BOX_LINE_WIDTH" json:"box_line_width"`

	// Date header.
	TitleOffsetX float64 `env:"TITLE_OFFSET_X" json:"title_offset_x"`
	TitleOffsetY float64 `env:"TITLE_OFFSET_Y" json:"title_offset_y"`
	TitleFont    string  `env:"TITLE_FONT"     json:"title_font"`
	TitleStyle   string  `env:"TITLE_STYLE"    json:"title_style"`
	TitleSize    float64 `env:"TITLE_SIZE"     json:"title_size"`

	// To-do checklist.
	TodoRows int `env:"TODO_ROWS" json:"todo_rows"`
	// TodoRightGap is the cell width left free on the right of a to-do box for its check circle.
	TodoRightGap float64 `env:"TODO_RIGHT_GAP" json:"todo_right_gap"`
	// CheckRadius is the radius of the check circle next to each to-do row.
	CheckRadius float64 `env:"CHECK_RADIUS" json:"check_radius"`
	// CheckOffsetX separates a check circle from the right edge of its to-do box.
	CheckOffsetX float64 `env:"CHECK_OFFSET_X" json:"check_offset_x"`
	// CheckOffsetY lifts the first check circle above the bottom of the first to-do box.
	CheckOffsetY float64 `env:"CHECK_OFFSET_Y" json:"check_offset_y"`
	// CheckSpacing is added to the circle diameter to get the vertical pitch of check circles.
	CheckSpacing float64 `env:"CHECK_SPACING" json:"check_spacing"`

	// Meeting slots.
	MeetingRows      int     `env:"MEETING_ROWS"       json:"meeting_rows"`
	MeetingTimeWidth float64 `env:"MEETING_TIME_WIDTH" json:"meeting_time_width"`

	// Cross grid.
	GridSpacing   float64 `env:"GRID_SPACING"    json:"grid_spacing"`
	CrossSize     float64 `env:"CROSS_SIZE"      json:"cross_size"`
	GridLineWidth float64 `env:"GRID_LINE_WIDTH" json:"grid_line_width"`
}

// # Defaults

const (
	// A4Width is the width of a landscape ISO A4 page in points.
	A4Width = 841.89
	// A4Height is the height of a landscape ISO A4 page in points.
	A4Height = 595.28
)

// Default returns the geometry of the printed planner.
func Default() Layout {
	return Layout{
		PageWidth:    A4Width,
		PageHeight:   A4Height,
		Columns:      5,
		DividerWidth: 2,

		Margin:       2,
		BoxHeight:    20,
		CornerRadius: 7,
		BoxLineWidth: 1,

		TitleOffsetX: 57,
		TitleOffsetY: 20,
		TitleFont:    "Helvetica",
		TitleStyle:   "B",
		TitleSize:    12,

		TodoRows:     5,
		TodoRightGap: 20,
		CheckRadius:  8,
		CheckOffsetX: 1,
		CheckOffsetY: 2,
		CheckSpacing: 4,

		MeetingRows:      3,
		MeetingTimeWidth: 30,

		GridSpacing:   20,
		CrossSize:     3,
		GridLineWidth: 0.7,
	}
}

// # Validation

// Validate rejects geometry that cannot be drawn.
//
// Grid spacing is checked strictly because the cross grid loops until it
// leaves the cell; a zero step would never terminate.
func (l Layout) Validate() error {
	var details []apperr.FieldError
	positive := func(field string, value float64) {
		if value <= 0 {
			details = append(details, apperr.FieldError{Field: field, Message: fmt.Sprintf("Must be positive, got %g", value)})
		}
	}

	positive("page_width", l.PageWidth)
	positive("page_height", l.PageHeight)
	positive("columns", float64(l.Columns))
	positive("divider_width", l.DividerWidth)
	positive("box_height", l.BoxHeight)
	positive("box_line_width", l.BoxLineWidth)
	positive("title_size", l.TitleSize)
	positive("check_radius", l.CheckRadius)
	positive("meeting_time_width", l.MeetingTimeWidth)
	positive("grid_spacing", l.GridSpacing)
	positive("cross_size", l.CrossSize)
	positive("grid_line_width", l.GridLineWidth)

	if l.Columns > calendar.DaysPerWeek {
		details = append(details, apperr.FieldError{Field: "columns", Message: fmt.Sprintf("Must be at most %d", calendar.DaysPerWeek)})
	}
	if l.Margin < 0 {
		details = append(details, apperr.FieldError{Field: "margin", Message: "Must not be negative"})
	}
	if l.CornerRadius < 0 {
		details = append(details, apperr.FieldError{Field: "corner_radius", Message: "Must not be negative"})
	}
	if l.TodoRows < 0 || l.MeetingRows < 0 {
		details = append(details, apperr.FieldError{Field: "rows", Message: "Must not be negative"})
	}
	if l.TitleFont == "" {
		details = append(details, apperr.FieldError{Field: "title_font", Message: "This field is required"})
	}
	if l.Columns > 0 && l.CellWidth() <= l.TodoRightGap {
		details = append(details, apperr.FieldError{Field: "todo_right_gap", Message: "Must be smaller than the cell width"})
	}
	if l.Columns > 0 && l.CellWidth() <= 2*l.MeetingTimeWidth+l.Margin {
		details = append(details, apperr.FieldError{Field: "meeting_time_width", Message: "Meeting slots do not fit in the cell width"})
	}

	if len(details) > 0 {
		return apperr.ValidationError("Invalid layout", details...)
	}
	return nil
}

// CellWidth is the width of one day-cell.
func (l Layout) CellWidth() float64 {
	return l.PageWidth / float64(l.Columns)
}

// CellsPerPage is the number of day-cells on one page (two halves).
func (l Layout) CellsPerPage() int {
	return 2 * l.Columns
}
