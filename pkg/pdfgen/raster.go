package pdfgen

import (
	"errors"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const ptToMM = 25.4 / 72

// DefaultPxPerMM renders at twice screen density (96 dpi x2), matching the
// 2x capture scale printed documents need to stay crisp.
const DefaultPxPerMM = 96 / 25.4 * 2

var (
	fontOnce    sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
)

func fontFace(bold bool, sizePt, pxPerMM float64) font.Face {
	fontOnce.Do(func() {
		regularFont, _ = truetype.Parse(goregular.TTF)
		boldFont, _ = truetype.Parse(gobold.TTF)
	})
	f := regularFont
	if bold {
		f = boldFont
	}
	// truetype sizes are points at 72 dpi, i.e. pixels; convert pt->mm->px.
	return truetype.NewFace(f, &truetype.Options{Size: sizePt * ptToMM * pxPerMM})
}

// Render rasterizes the document onto a white pixel surface at the given
// density. White is forced as the background so areas a viewer would treat
// as transparent print correctly.
func Render(doc *Document, pxPerMM float64) (image.Image, error) {
	if doc == nil {
		return nil, errors.New("pdfgen: nil document")
	}
	if pxPerMM <= 0 {
		pxPerMM = DefaultPxPerMM
	}
	w := int(doc.WidthMM * pxPerMM)
	h := int(doc.HeightMM() * pxPerMM)
	if w <= 0 || h <= 0 {
		return nil, errors.New("pdfgen: document has no printable area")
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	pad := doc.PadMM * pxPerMM
	r := &renderer{dc: dc, pxPerMM: pxPerMM, x0: pad, width: float64(w) - 2*pad}

	var secTop float64
	for _, sec := range doc.Sections {
		y := secTop + pad
		for _, n := range sec.Nodes {
			y += r.render(n, y, false)
		}

		if len(sec.Footer) > 0 {
			var fh float64
			for _, n := range sec.Footer {
				fh += r.render(n, 0, true)
			}
			fy := secTop + sec.HeightMM*pxPerMM - pad - fh
			if fy < y {
				fy = y
			}
			for _, n := range sec.Footer {
				fy += r.render(n, fy, false)
			}
		}

		secTop += sec.HeightMM * pxPerMM
	}

	return dc.Image(), nil
}

type renderer struct {
	dc      *gg.Context
	pxPerMM float64
	x0      float64
	width   float64
}

// render draws a node at vertical offset y and returns its height in pixels.
// With dry set it only measures.
func (r *renderer) render(n Node, y float64, dry bool) float64 {
	switch v := n.(type) {
	case Text:
		return r.text(v, y, dry)
	case KeyValue:
		return r.keyValue(v, y, dry)
	case Table:
		return r.table(v, y, dry)
	case Spacer:
		return v.MM * r.pxPerMM
	case Rule:
		if !dry {
			r.dc.SetLineWidth(1)
			r.dc.DrawLine(r.x0, y+1, r.x0+r.width, y+1)
			r.dc.Stroke()
		}
		return 3
	case CutLine:
		return r.cutLine(v, y, dry)
	}
	return 0
}

func (r *renderer) lineHeight(sizePt float64) float64 {
	return sizePt * ptToMM * r.pxPerMM * 1.4
}

func (r *renderer) text(t Text, y float64, dry bool) float64 {
	if t.SizePt <= 0 {
		t.SizePt = 9
	}
	r.dc.SetFontFace(fontFace(t.Bold, t.SizePt, r.pxPerMM))
	lineH := r.lineHeight(t.SizePt)

	lines := []string{t.S}
	if t.Wrap {
		lines = r.dc.WordWrap(t.S, r.width)
	}
	if dry {
		return float64(len(lines)) * lineH
	}

	for i, line := range lines {
		tw, _ := r.dc.MeasureString(line)
		x := r.x0
		switch t.Align {
		case AlignCenter:
			x = r.x0 + (r.width-tw)/2
		case AlignRight:
			x = r.x0 + r.width - tw
		}
		r.dc.DrawString(line, x, y+float64(i)*lineH+lineH*0.75)
	}
	return float64(len(lines)) * lineH
}

func (r *renderer) keyValue(kv KeyValue, y float64, dry bool) float64 {
	if kv.SizePt <= 0 {
		kv.SizePt = 9
	}
	r.dc.SetFontFace(fontFace(kv.Bold, kv.SizePt, r.pxPerMM))
	lineH := r.lineHeight(kv.SizePt)
	if dry {
		return lineH
	}

	r.dc.DrawString(kv.Key, r.x0, y+lineH*0.75)
	vw, _ := r.dc.MeasureString(kv.Value)
	r.dc.DrawString(kv.Value, r.x0+r.width-vw, y+lineH*0.75)
	return lineH
}

func (r *renderer) table(t Table, y float64, dry bool) float64 {
	if t.SizePt <= 0 {
		t.SizePt = 8
	}
	rowH := r.lineHeight(t.SizePt) * 1.5
	rows := len(t.Rows) + 1
	if dry {
		return float64(rows) * rowH
	}

	cols := len(t.Header)
	if cols == 0 {
		return 0
	}
	colW := r.width / float64(cols)

	// header shading
	r.dc.SetRGB(0.94, 0.94, 0.94)
	r.dc.DrawRectangle(r.x0, y, r.width, rowH)
	r.dc.Fill()
	r.dc.SetRGB(0, 0, 0)

	drawRow := func(cells []string, rowY float64, bold bool) {
		r.dc.SetFontFace(fontFace(bold, t.SizePt, r.pxPerMM))
		for i, cell := range cells {
			cx := r.x0 + float64(i)*colW
			tw, _ := r.dc.MeasureString(cell)
			r.dc.DrawString(cell, cx+(colW-tw)/2, rowY+rowH*0.7)
		}
	}

	drawRow(t.Header, y, true)
	for i, row := range t.Rows {
		drawRow(row, y+float64(i+1)*rowH, false)
	}

	// grid
	r.dc.SetLineWidth(1)
	for i := 0; i <= rows; i++ {
		ly := y + float64(i)*rowH
		r.dc.DrawLine(r.x0, ly, r.x0+r.width, ly)
	}
	for i := 0; i <= cols; i++ {
		lx := r.x0 + float64(i)*colW
		r.dc.DrawLine(lx, y, lx, y+float64(rows)*rowH)
	}
	r.dc.Stroke()

	return float64(rows) * rowH
}

func (r *renderer) cutLine(c CutLine, y float64, dry bool) float64 {
	sizePt := 7.0
	r.dc.SetFontFace(fontFace(false, sizePt, r.pxPerMM))
	lineH := r.lineHeight(sizePt)
	if dry {
		return lineH
	}

	tw, _ := r.dc.MeasureString(c.Label)
	mid := y + lineH/2
	gap := 8.0

	r.dc.SetRGB(0.4, 0.4, 0.4)
	r.dc.SetDash(6, 6)
	r.dc.SetLineWidth(1)
	r.dc.DrawLine(r.x0, mid, r.x0+(r.width-tw)/2-gap, mid)
	r.dc.DrawLine(r.x0+(r.width+tw)/2+gap, mid, r.x0+r.width, mid)
	r.dc.Stroke()
	r.dc.SetDash()

	r.dc.DrawString(c.Label, r.x0+(r.width-tw)/2, y+lineH*0.75)
	r.dc.SetRGB(0, 0, 0)
	return lineH
}
