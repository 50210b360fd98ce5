// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import (
	"time"

	"github.com/taibuivan/daybook/internal/calendar"
)

// Stats summarizes what a [Render] call drew.
type Stats struct {
	Pages int `json:"pages"`
	Cells int `json:"cells"`
}

// # Page Drawing

// Render draws every page of plan onto surface, labelling cells with the
// dates resolved against ref.
//
// It stops at the first cell whose date cannot be resolved. The surface may
// then hold a partial document and must be discarded.
func Render(surface Surface, plan []Page, ref time.Time, l Layout) (Stats, error) {
	var stats Stats

	for _, page := range plan {
		surface.AddPage()
		drawDividers(surface, l)
		stats.Pages++

		for _, cell := range page.Cells {
			date, err := calendar.Resolve(ref, cell.Week, cell.Day)
			if err != nil {
				return stats, err
			}
			drawCell(surface, cell.Area, calendar.Format(date), l)
			stats.Cells++
		}
	}

	return stats, nil
}

// drawDividers splits the page into two halves of Columns cells.
func drawDividers(surface Surface, l Layout) {
	surface.SetLineWidth(l.DividerWidth)
	surface.SetStrokeColor(0, 0, 0)

	// Horizontal mid line
	surface.Line(0, l.PageHeight/2, l.PageWidth, l.PageHeight/2)

	// Column separators
	spacing := l.PageWidth / float64(l.Columns)
	for j := 1; j < l.Columns; j++ {
		x := float64(j) * spacing
		surface.Line(x, 0, x, l.PageHeight)
	}
}

// # Cell Drawing

// drawCell fills one day-cell from top to bottom: date header, to-do rows,
// meeting rows, then a cross grid down to the cell bottom.
func drawCell(surface Surface, area Rect, label string, l Layout) {

	// 1. Date header
	surface.SetFont(l.TitleFont, l.TitleStyle, l.TitleSize)
	surface.Text(area.Left+l.TitleOffsetX, area.Top-l.TitleOffsetY, label)

	// 2. To-do checklist
	surface.SetLineWidth(l.BoxLineWidth)
	todoX := area.Left + l.Margin
	todoY := area.Top - 2*l.BoxHeight - l.Margin
	meetingTop := drawTodos(surface, todoX, todoY, area.Width()-l.TodoRightGap, l)

	// 3. Meeting slots
	surface.SetLineWidth(l.BoxLineWidth)
	descWidth := area.Width() - 2*l.MeetingTimeWidth - l.Margin
	gridTop := drawMeetings(surface, area.Left+l.Margin, meetingTop-l.Margin, descWidth, l)

	// 4. Cross grid
	surface.SetLineWidth(l.GridLineWidth)
	drawCrosses(surface, Rect{
		Left:   area.Left + l.Margin,
		Top:    gridTop - l.CrossSize,
		Right:  area.Right - l.Margin,
		Bottom: area.Bottom,
	}, l)
}

// drawTodos stacks TodoRows boxes downwards from y, each with a check circle
// on its right. It returns the y below the last box.
func drawTodos(surface Surface, x, y, width float64, l Layout) float64 {
	r := l.CheckRadius
	circleX := x + width + r + l.CheckOffsetX
	circleY := y + r + l.CheckOffsetY

	for i := 0; i < l.TodoRows; i++ {
		row := float64(i)
		surface.RoundRect(x, y-l.BoxHeight*row, width, l.BoxHeight, l.CornerRadius)
		surface.Circle(circleX, circleY-row*(2*r+l.CheckSpacing), r)
	}

	return y - l.BoxHeight*float64(l.TodoRows)
}

// drawMeetings stacks MeetingRows rows of (start, stop, description) boxes
// downwards from y. It returns the y of the last row.
func drawMeetings(surface Surface, x, y, descWidth float64, l Layout) float64 {
	stopX := x + l.MeetingTimeWidth
	descX := x + 2*l.MeetingTimeWidth

	last := y
	for i := 0; i < l.MeetingRows; i++ {
		last = y - l.BoxHeight*float64(i)
		surface.RoundRect(x, last, l.MeetingTimeWidth, l.BoxHeight, l.CornerRadius)
		surface.RoundRect(stopX, last, l.MeetingTimeWidth, l.BoxHeight, l.CornerRadius)
		surface.RoundRect(descX, last, descWidth, l.BoxHeight, l.CornerRadius)
	}

	return last
}

// drawCrosses draws a "+" every GridSpacing points, starting at the top-left
// of area and stopping before its right and bottom edges.
func drawCrosses(surface Surface, area Rect, l Layout) {
	half := l.CrossSize / 2
	for y := area.Top; y > area.Bottom; y -= l.GridSpacing {
		for x := area.Left; x < area.Right; x += l.GridSpacing {
			surface.Line(x-half, y, x+half, y)
			surface.Line(x, y-half, x, y+half)
		}
	}
}
