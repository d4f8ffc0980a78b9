package pdfgen

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		WidthMM: 210,
		PadMM:   10,
		Sections: []Section{
			{
				HeightMM: 80,
				Nodes: []Node{
					Text{S: "PATIENT COPY", SizePt: 10, Bold: true, Align: AlignRight},
					Text{S: "Jane Doe", SizePt: 16, Bold: true},
					Rule{},
				},
				Footer: []Node{
					KeyValue{Key: "Subtotal:", Value: "$ 100.00"},
					KeyValue{Key: "NET TOTAL:", Value: "$ 90.00", Bold: true, SizePt: 10},
				},
			},
			{HeightMM: 6, Nodes: []Node{CutLine{Label: "CUT HERE"}}},
			{
				HeightMM: 200,
				Nodes: []Node{
					Table{
						Header: []string{"EYE", "SPHERE", "CYLINDER", "AXIS", "ADD", "PD"},
						Rows: [][]string{
							{"OD", "-1.25", "-0.50", "180", "+2.00", "62"},
							{"OI", "-1.00", "-", "-", "", ""},
						},
					},
					Text{S: "Compound myopic astigmatism, both eyes.", Wrap: true},
				},
			},
		},
	}
}

func TestRenderProducesWhiteBackedBitmap(t *testing.T) {
	doc := sampleDocument()

	img, err := Render(doc, DefaultPxPerMM)
	require.NoError(t, err)
	require.NotNil(t, img)

	b := img.Bounds()
	pxPerMM := float64(DefaultPxPerMM)
	assert.Equal(t, int(210*pxPerMM), b.Dx())
	assert.Equal(t, int(286*pxPerMM), b.Dy())

	// an untouched corner pixel must be opaque white, never transparent
	r, g, bl, a := img.At(b.Max.X-1, b.Max.Y-1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), bl)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRenderRejectsEmptyDocument(t *testing.T) {
	_, err := Render(&Document{}, DefaultPxPerMM)
	assert.Error(t, err)

	_, err = Render(nil, DefaultPxPerMM)
	assert.Error(t, err)
}

func TestAssemblePDF(t *testing.T) {
	img, err := Render(sampleDocument(), DefaultPxPerMM)
	require.NoError(t, err)

	out, err := AssemblePDF(img)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestAssemblePDFRejectsMissingImage(t *testing.T) {
	_, err := AssemblePDF(nil)
	assert.Error(t, err)

	_, err = AssemblePDF(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}

func TestSurfaceLeaseLifecycle(t *testing.T) {
	s := NewSurface(DefaultPxPerMM)
	assert.True(t, s.Idle())

	lease := s.Acquire()
	assert.False(t, s.Idle())

	img, err := lease.Render(sampleDocument())
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.False(t, s.Idle())

	lease.Release()
	assert.True(t, s.Idle())

	// double release must be harmless
	lease.Release()
	assert.True(t, s.Idle())
}

func TestSurfaceSerializesJobs(t *testing.T) {
	s := NewSurface(DefaultPxPerMM)

	first := s.Acquire()

	acquired := make(chan *Lease)
	go func() {
		acquired <- s.Acquire()
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-acquired:
		t.Fatal("second job acquired the surface while the first still held it")
	default:
	}

	first.Release()
	second := <-acquired
	assert.False(t, s.Idle())
	second.Release()
	assert.True(t, s.Idle())
}
