package render

import (
	"image"
	"image/color"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"philipredstone/camviewer/pkg/frame"
)

// Frame converts f to display order at its native size; the canvas
// scales it to the window. Empty or malformed frames yield nil so the
// caller can skip the draw.
func Frame(f frame.Frame) *image.RGBA {
	if f.Empty() {
		return nil
	}
	rgba, err := f.ToRGBA()
	if err != nil {
		return nil
	}
	return rgba
}

var (
	badgeText = color.RGBA{R: 255, G: 255, A: 255}
	badgeBack = color.RGBA{A: 160}
)

// DrawBadge writes text onto the top left corner of img over a dark box.
// The badge grows with the image so it stays legible once the image is
// scaled down to the window.
func DrawBadge(img *image.RGBA, text string) {
	if img == nil || text == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Src:  image.NewUniform(badgeText),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	badge := image.NewRGBA(image.Rect(0, 0, width+8, face.Height+6))
	xdraw.Draw(badge, badge.Bounds(), image.NewUniform(badgeBack), image.Point{}, xdraw.Src)
	d.Dst = badge
	d.Dot = fixed.Point26_6{X: fixed.I(4), Y: fixed.I(3 + face.Ascent)}
	d.DrawString(text)

	scale := BadgeScale(img.Bounds().Dx())
	at := img.Bounds().Min.Add(image.Pt(6*scale, 6*scale))
	box := image.Rectangle{Min: at, Max: at.Add(badge.Bounds().Size().Mul(scale))}
	xdraw.NearestNeighbor.Scale(img, box, badge, badge.Bounds(), xdraw.Over, nil)
}

// BadgeScale is the integer zoom applied to the badge for an image of the
// given width.
func BadgeScale(width int) int {
	if s := width / 640; s > 1 {
		return s
	}
	return 1
}

// FPSMeter estimates the rate of Mark calls over half second windows.
type FPSMeter struct {
	count int
	start time.Time
	fps   float64
}

func (m *FPSMeter) Mark(now time.Time) {
	if m.start.IsZero() {
		m.start = now
	}
	m.count++
	if d := now.Sub(m.start); d >= 500*time.Millisecond {
		m.fps = float64(m.count) / d.Seconds()
		m.count = 0
		m.start = now
	}
}

func (m *FPSMeter) FPS() float64 {
	return m.fps
}

func (m *FPSMeter) Reset() {
	*m = FPSMeter{}
}
