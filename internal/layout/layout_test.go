// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/daybook/internal/calendar"
	"github.com/taibuivan/daybook/internal/layout"
	"github.com/taibuivan/daybook/internal/platform/apperr"
)

// recorder is a [layout.Surface] that keeps every call for inspection.
type recorder struct {
	pages  int
	lines  []string
	rects  int
	circle int
	texts  []string
	fonts  []string
	widths []float64
}

func (r *recorder) AddPage()                  { r.pages++ }
func (r *recorder) SetLineWidth(width float64) { r.widths = append(r.widths, width) }
func (r *recorder) SetStrokeColor(_, _, _ int) {}
func (r *recorder) SetFont(family, style string, size float64) {
	r.fonts = append(r.fonts, fmt.Sprintf("%s-%s-%g", family, style, size))
}
func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, fmt.Sprintf("%.2f,%.2f-%.2f,%.2f", x1, y1, x2, y2))
}
func (r *recorder) RoundRect(_, _, _, _, _ float64) { r.rects++ }
func (r *recorder) Circle(_, _, _ float64)          { r.circle++ }
func (r *recorder) Text(_, _ float64, s string)     { r.texts = append(r.texts, s) }

/*
TestNormalizeWeeks verifies odd week counts are rounded up.
*/
func TestNormalizeWeeks(t *testing.T) {
	assert.Equal(t, 0, layout.NormalizeWeeks(0))
	assert.Equal(t, 2, layout.NormalizeWeeks(1))
	assert.Equal(t, 52, layout.NormalizeWeeks(51))
	assert.Equal(t, 52, layout.NormalizeWeeks(52))

	assert.Equal(t, 0, layout.PageCount(0))
	assert.Equal(t, 26, layout.PageCount(51))
	assert.Equal(t, 26, layout.PageCount(52))
}

/*
TestBuildPlan_Alternation checks the week pairing and front/back flip across pages.
*/
func TestBuildPlan_Alternation(t *testing.T) {
	plan := layout.BuildPlan(8, layout.Default())
	require.Len(t, plan, 4)

	expected := []struct {
		front       bool
		top, bottom int
	}{
		{true, 8, 1},
		{false, 2, 7},
		{true, 6, 3},
		{false, 4, 5},
	}

	for i, want := range expected {
		page := plan[i]
		assert.Equal(t, i+1, page.Number)
		assert.Equal(t, want.front, page.Front, "page %d", page.Number)
		assert.Equal(t, want.top, page.TopWeek, "page %d", page.Number)
		assert.Equal(t, want.bottom, page.BottomWeek, "page %d", page.Number)
		require.Len(t, page.Cells, 10)

		for c, cell := range page.Cells {
			assert.Equal(t, c%5+1, cell.Day)
			if c < 5 {
				assert.Equal(t, want.top, cell.Week)
				assert.InDelta(t, layout.A4Height, cell.Area.Top, 1e-9)
			} else {
				assert.Equal(t, want.bottom, cell.Week)
				assert.InDelta(t, 0, cell.Area.Bottom, 1e-9)
			}
		}
	}
}

/*
TestBuildPlan_Coverage verifies every week appears exactly once, Monday to Friday.
*/
func TestBuildPlan_Coverage(t *testing.T) {
	plan := layout.BuildPlan(52, layout.Default())
	require.Len(t, plan, 26)

	seen := map[[2]int]int{}
	for _, page := range plan {
		for _, cell := range page.Cells {
			seen[[2]int{cell.Week, cell.Day}]++
		}
	}

	assert.Len(t, seen, 52*5)
	for key, count := range seen {
		assert.Equal(t, 1, count, "week %d day %d", key[0], key[1])
	}
}

/*
TestBuildPlan_OddAndEmpty covers the rounding and zero-week boundaries.
*/
func TestBuildPlan_OddAndEmpty(t *testing.T) {
	assert.Equal(t, layout.BuildPlan(52, layout.Default()), layout.BuildPlan(51, layout.Default()))
	assert.Empty(t, layout.BuildPlan(0, layout.Default()))
}

/*
TestRender_Page checks the drawing calls issued for a single two-week page.
*/
func TestRender_Page(t *testing.T) {
	ref, err := calendar.ParseDate("10.02.2025")
	require.NoError(t, err)

	surface := &recorder{}
	plan := layout.BuildPlan(2, layout.Default())

	stats, err := layout.Render(surface, plan, ref, layout.Default())
	require.NoError(t, err)

	assert.Equal(t, layout.Stats{Pages: 1, Cells: 10}, stats)
	assert.Equal(t, 1, surface.pages)

	// Front page: week 2 on top, week 1 at the bottom.
	assert.Equal(t, []string{
		"17.02.2025", "18.02.2025", "19.02.2025", "20.02.2025", "21.02.2025",
		"10.02.2025", "11.02.2025", "12.02.2025", "13.02.2025", "14.02.2025",
	}, surface.texts)

	// 5 to-do boxes and 3x3 meeting boxes per cell.
	assert.Equal(t, 10*(5+9), surface.rects)
	assert.Equal(t, 10*5, surface.circle)

	// 5 dividers, then 6 rows x 9 columns of crosses (2 lines each) per cell.
	assert.Len(t, surface.lines, 5+10*6*9*2)
	assert.Equal(t, "0.00,297.64-841.89,297.64", surface.lines[0])

	assert.Equal(t, 2.0, surface.widths[0])
	assert.Contains(t, surface.widths, 0.7)
	assert.Equal(t, "Helvetica-B-12", surface.fonts[0])
}

/*
TestRender_Empty verifies that zero weeks draws nothing.
*/
func TestRender_Empty(t *testing.T) {
	ref, err := calendar.ParseDate("10.02.2025")
	require.NoError(t, err)

	surface := &recorder{}
	stats, err := layout.Render(surface, layout.BuildPlan(0, layout.Default()), ref, layout.Default())
	require.NoError(t, err)

	assert.Equal(t, layout.Stats{}, stats)
	assert.Zero(t, surface.pages)
	assert.Empty(t, surface.lines)
}

func TestRender_InvalidCell(t *testing.T) {
	ref, err := calendar.ParseDate("10.02.2025")
	require.NoError(t, err)

	plan := []layout.Page{{Number: 1, Cells: []layout.Cell{{Week: 1, Day: 9}}}}
	_, err = layout.Render(&recorder{}, plan, ref, layout.Default())
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidRange))
}

/*
TestLayout_Validate covers the default geometry and a set of broken ones.
*/
func TestLayout_Validate(t *testing.T) {
	require.NoError(t, layout.Default().Validate())

	tests := []struct {
		name   string
		mutate func(l *layout.Layout)
	}{
		{"zero_grid_spacing", func(l *layout.Layout) { l.GridSpacing = 0 }},
		{"zero_columns", func(l *layout.Layout) { l.Columns = 0 }},
		{"eight_columns", func(l *layout.Layout) { l.Columns = 8 }},
		{"negative_margin", func(l *layout.Layout) { l.Margin = -1 }},
		{"missing_font", func(l *layout.Layout) { l.TitleFont = "" }},
		{"meetings_too_wide", func(l *layout.Layout) { l.MeetingTimeWidth = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layout.Default()
			tt.mutate(&l)

			err := l.Validate()
			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.NotEmpty(t, ae.Details)
		})
	}
}
