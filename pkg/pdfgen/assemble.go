package pdfgen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMarginMM = 10
	topOffsetMM  = 10
)

// AssemblePDF embeds a rasterized layout into a single-page A4 portrait
// document. The bitmap is scaled to fit inside the page margin preserving
// aspect ratio, capped by whichever dimension binds first, centered
// horizontally with a fixed top offset. The document carries an auto-print
// directive so viewers open straight into the print dialog.
func AssemblePDF(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("pdfgen: nil image")
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("pdfgen: empty image")
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("pdfgen: failed to encode bitmap: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	ratio := float64(b.Dx()) / float64(b.Dy())
	renderW := pageW - 2*pageMarginMM
	renderH := renderW / ratio
	if renderH > pageH-2*pageMarginMM {
		renderH = pageH - 2*pageMarginMM
		renderW = renderH * ratio
	}
	x := (pageW - renderW) / 2

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("layout", opts, &encoded)
	pdf.ImageOptions("layout", x, topOffsetMM, renderW, renderH, false, opts, 0, "")
	pdf.SetJavascript("print(true);")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("pdfgen: failed to assemble document: %w", err)
	}
	return out.Bytes(), nil
}
