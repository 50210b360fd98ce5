// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pdf adapts gofpdf to the [layout.Surface] drawing contract.

gofpdf measures y downwards from the top edge of the page while the daybook
layout measures it upwards from the bottom edge. Every call flips y against
the page height so callers never see gofpdf's convention.

Usage:

	surface := pdf.NewSurface(pdf.Options{Width: l.PageWidth, Height: l.PageHeight})
	stats, err := layout.Render(surface, plan, ref, l)
	...
	err = surface.Save(writer)

A Surface is single-use and not safe for concurrent use.
*/
package pdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Options configures the document a [Surface] writes.
type Options struct {
	// Width and Height are the page size in points.
	Width  float64
	Height float64

	// Metadata embedded in the document information dictionary.
	Title   string
	Author  string
	Creator string
}

// canvas is the part of [gofpdf.Fpdf] a Surface draws with.
// Coordinates passed to it are in gofpdf's top-down convention.
type canvas interface {
	AddPage()
	SetLineWidth(width float64)
	SetDrawColor(r, g, b int)
	SetFont(familyStr, styleStr string, size float64)
	Line(x1, y1, x2, y2 float64)
	RoundedRect(x, y, w, h, r float64, corners string, stylestr string)
	Circle(x, y, r float64, styleStr string)
	Text(x, y float64, txtStr string)
	Output(w io.Writer) error
	Error() error
}

// Surface draws onto a gofpdf document.
type Surface struct {
	document canvas
	height   float64
	pages    int
}

// NewSurface creates an empty landscape document measured in points.
func NewSurface(opts Options) *Surface {
	// gofpdf swaps a custom size for "L"; the size passed here is already landscape.
	document := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: opts.Width, Ht: opts.Height},
	})

	// Cells are placed absolutely; gofpdf margins and page breaks would shift them.
	document.SetMargins(0, 0, 0)
	document.SetAutoPageBreak(false, 0)

	if opts.Title != "" {
		document.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		document.SetAuthor(opts.Author, true)
	}
	if opts.Creator != "" {
		document.SetCreator(opts.Creator, true)
	}

	return newSurface(document, opts.Height)
}

func newSurface(document canvas, height float64) *Surface {
	return &Surface{document: document, height: height}
}

// # Drawing

// AddPage implements [layout.Surface].
func (s *Surface) AddPage() {
	s.document.AddPage()
	s.pages++
}

// SetLineWidth implements [layout.Surface].
func (s *Surface) SetLineWidth(width float64) {
	s.document.SetLineWidth(width)
}

// SetStrokeColor implements [layout.Surface].
func (s *Surface) SetStrokeColor(r, g, b int) {
	s.document.SetDrawColor(r, g, b)
}

// SetFont implements [layout.Surface].
func (s *Surface) SetFont(family, style string, size float64) {
	s.document.SetFont(family, style, size)
}

// Line implements [layout.Surface].
func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.document.Line(x1, s.flip(y1), x2, s.flip(y2))
}

// RoundRect implements [layout.Surface]. (x, y) is the bottom-left corner.
func (s *Surface) RoundRect(x, y, w, h, radius float64) {
	// gofpdf anchors rectangles on their top-left corner.
	s.document.RoundedRect(x, s.flip(y+h), w, h, radius, "1234", "D")
}

// Circle implements [layout.Surface].
func (s *Surface) Circle(x, y, radius float64) {
	s.document.Circle(x, s.flip(y), radius, "D")
}

// Text implements [layout.Surface].
func (s *Surface) Text(x, y float64, text string) {
	s.document.Text(x, s.flip(y), text)
}

// # Output

// PageCount returns the number of pages added so far.
func (s *Surface) PageCount() int {
	return s.pages
}

// Save finalizes the document and writes it to writer.
//
// gofpdf always emits at least one page, so saving a surface with no pages
// produces a single blank page.
func (s *Surface) Save(writer io.Writer) error {
	if err := s.document.Output(writer); err != nil {
		return fmt.Errorf("pdf: failed to write document: %w", err)
	}
	return nil
}

// Err reports the first error recorded by gofpdf while drawing, if any.
func (s *Surface) Err() error {
	return s.document.Error()
}

func (s *Surface) flip(y float64) float64 {
	return s.height - y
}
