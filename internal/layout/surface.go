// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

// Surface is the vector drawing target a plan is rendered onto.
//
// Coordinates are points with a bottom-left origin. Rectangles are anchored
// at their bottom-left corner and extend up and to the right. A Surface is
// single-writer; it is not safe for concurrent use.
type Surface interface {
	// AddPage starts a new, empty page. Drawing before the first AddPage is undefined.
	AddPage()

	SetLineWidth(width float64)
	SetStrokeColor(r, g, b int)
	SetFont(family, style string, size float64)

	// Line strokes a straight segment.
	Line(x1, y1, x2, y2 float64)
	// RoundRect strokes an unfilled rectangle with rounded corners.
	RoundRect(x, y, w, h, radius float64)
	// Circle strokes an unfilled circle centred on (x, y).
	Circle(x, y, radius float64)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string)
}
