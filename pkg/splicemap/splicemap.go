// 18 Oct 2026

// Package splicemap draws a picture of where a piece of donor
// sequence went. There are three bars, donor, recipient and chimera,
// drawn to the same scale. The piece taken from the donor, the piece
// of recipient it replaced and the piece in the chimera are coloured.
package splicemap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/chimera/pkg/chimera"
	"github.com/andrew-torda/chimera/pkg/seq/common"
)

// DefaultWidth of the picture in pixels.
const DefaultWidth = 800

const (
	minWidth = labelW + margin + minBarW
	height   = 170
	margin   = 10
	labelW   = 110 // least room for the names to the left of the bars
	minBarW  = 100
	barH     = 18
	fontSize = 12
	dpi      = 72
	titleY   = 20  // baseline of the title
	donorY   = 40  // top of each bar
	recipY   = 75
	chimY    = 110
	captionY = 158 // baseline of the line under the bars
)

var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Plain      = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	DonorCol   = color.RGBA{0xd9, 0x5f, 0x02, 0xff}
	Replaced   = color.RGBA{0x75, 0x70, 0xb3, 0xff}
	textCol    = color.Black
)

var ErrTooNarrow = errors.New("splice map too narrow")

// Map has what is needed to draw one splice.
type Map struct {
	NDonor int
	NRecip int
	Plan   chimera.Plan
	Title  string
}

// FromResult fills in a Map from a chimera and the input lengths.
func FromResult(r *chimera.Result, nDonor, nRecip int) Map {
	return Map{NDonor: nDonor, NRecip: nRecip, Plan: r.Plan, Title: r.Header()}
}

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// scale turns sequence positions into pixel offsets within a bar.
type scale struct {
	left, barW, maxLen int
}

func (s scale) x(n int) int {
	if s.maxLen == 0 {
		return s.left
	}
	return s.left + n*s.barW/s.maxLen
}

// span is [x(from), x(to)), at least one pixel wide so a zero length
// piece still shows where it was.
func (s scale) span(from, to, top int) image.Rectangle {
	x0, x1 := s.x(from), s.x(to)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return image.Rect(x0, top, x1, top+barH)
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// barLabels are the names drawn to the left of the three bars.
func (m Map) barLabels() []string {
	return []string{
		fmt.Sprintf("donor %d", m.NDonor),
		fmt.Sprintf("recipient %d", m.NRecip),
		"chimera",
	}
}

// labelColumn is where the bars start, far enough right that the
// widest label does not run into them.
func labelColumn(face font.Face, labels []string) int {
	w := labelW
	for _, l := range labels {
		w = max(w, font.MeasureString(face, l).Ceil()+2*margin)
	}
	return w
}

// Draw renders the map into a new image width pixels wide.
func Draw(m Map, width int) (*image.RGBA, error) {
	if width < minWidth {
		return nil, fmt.Errorf("%w: %d pixels, need at least %d", ErrTooNarrow, width, minWidth)
	}
	if err := m.Plan.Check(m.NDonor, m.NRecip); err != nil {
		return nil, err
	}
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	names := m.barLabels()
	left := labelColumn(truetype.NewFace(f, &truetype.Options{Size: fontSize, DPI: dpi}), names)
	if width-left-margin < minBarW {
		return nil, fmt.Errorf("%w: %d pixels, labels need %d", ErrTooNarrow, width, left+margin+minBarW)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), Background)

	sc := scale{left: left, barW: width - left - margin, maxLen: max(m.NDonor, m.NRecip)}
	p := m.Plan
	fill(img, image.Rect(sc.x(0), donorY, sc.x(m.NDonor), donorY+barH), Plain)
	fill(img, sc.span(p.DonorStart, p.DonorStart+p.Len, donorY), DonorCol)
	fill(img, image.Rect(sc.x(0), recipY, sc.x(m.NRecip), recipY+barH), Plain)
	fill(img, sc.span(p.RecipStart, p.RecipStart+p.Len, recipY), Replaced)
	fill(img, image.Rect(sc.x(0), chimY, sc.x(m.NRecip), chimY+barH), Plain)
	fill(img, sc.span(p.RecipStart, p.RecipStart+p.Len, chimY), DonorCol)

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(textCol))

	labels := []struct {
		s string
		y int
	}{
		{m.Title, titleY},
		{names[0], donorY + barH - 4},
		{names[1], recipY + barH - 4},
		{names[2], chimY + barH - 4},
		{fmt.Sprintf("donor %d-%d to recipient %d-%d, %d symbols",
			p.DonorStart+1, p.DonorStart+p.Len, p.RecipStart+1, p.RecipStart+p.Len, p.Len), captionY},
	}
	for _, l := range labels {
		if _, err := c.DrawString(l.s, freetype.Pt(margin, l.y)); err != nil {
			return nil, fmt.Errorf("drawing %q: %w", l.s, err)
		}
	}
	return img, nil
}

// Encode draws the map and writes it as a png.
func Encode(w io.Writer, m Map, width int) error {
	img, err := Draw(m, width)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteFile draws the map into fname. Nothing is left behind if
// something goes wrong.
func WriteFile(fname string, m Map, width int) error {
	img, err := Draw(m, width)
	if err != nil {
		return err
	}
	return common.WrtAtomic(fname, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
