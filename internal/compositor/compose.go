package compositor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/metrics"
	"gh-wrapped/internal/stats"
)

var (
	gradientFrom = color.RGBA{0x8B, 0x5C, 0xF6, 0xFF}
	gradientTo   = color.RGBA{0x3B, 0x82, 0xF6, 0xFF}
)

// Compositor renders share cards. It is safe for concurrent use; font faces
// are created per call.
type Compositor struct {
	client  *http.Client
	regular *truetype.Font
	bold    *truetype.Font
}

// New parses the bundled fonts. A nil client uses http.DefaultClient.
func New(client *http.Client) (*Compositor, error) {
	if client == nil {
		client = http.DefaultClient
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Compositor{client: client, regular: regular, bold: bold}, nil
}

type faceKey struct {
	size float64
	bold bool
}

type faces struct {
	c     *Compositor
	cache map[faceKey]font.Face
}

func (f *faces) get(size float64, bold bool) font.Face {
	k := faceKey{size, bold}
	if face, ok := f.cache[k]; ok {
		return face
	}
	ttf := f.c.regular
	if bold {
		ttf = f.c.bold
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72})
	f.cache[k] = face
	return face
}

func (f *faces) measure(text string, size float64, bold bool) float64 {
	return float64(font.MeasureString(f.get(size, bold), f.c.printable(text))) / 64
}

func (f *faces) close() {
	for _, face := range f.cache {
		face.Close()
	}
}

// Compose fetches the avatar and draws the share card as PNG. An avatar
// failure returns *ImageLoadError and nothing is drawn.
func (c *Compositor) Compose(ctx context.Context, r *stats.Report, t *i18n.Table) ([]byte, error) {
	avatar, err := loadAvatar(ctx, c.client, r.UserInfo.AvatarURL)
	if err != nil {
		log.Warn().Err(err).Str("username", r.Username).Msg("Avatar load failed")
		return nil, err
	}

	ff := &faces{c: c, cache: make(map[faceKey]font.Face)}
	defer ff.close()

	layout := Plan(r, t, ff.measure)
	dc := gg.NewContext(Width, Height)

	grad := gg.NewLinearGradient(0, 0, Width, Height)
	grad.AddColorStop(0, gradientFrom)
	grad.AddColorStop(1, gradientTo)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	drawAvatar(dc, avatar, layout.CenterX)

	drawText(dc, ff, layout.Name)
	drawText(dc, ff, layout.Handle)
	drawText(dc, ff, layout.Title)

	if p := layout.Pill; p != nil {
		dc.DrawRoundedRectangle(p.Box.X, p.Box.Y, p.Box.W, p.Box.H, p.Box.Radius)
		dc.SetRGBA(0, 0, 0, 0.25)
		dc.FillPreserve()
		dc.SetRGBA(1, 1, 1, 0.4)
		dc.SetLineWidth(PillBorder)
		dc.Stroke()
		drawText(dc, ff, p.Text)
	}

	for _, card := range layout.Cards {
		dc.DrawRoundedRectangle(card.Box.X, card.Box.Y, card.Box.W, card.Box.H, card.Box.Radius)
		dc.SetRGBA(1, 1, 1, 0.15)
		dc.Fill()
		drawText(dc, ff, card.Value)
		drawText(dc, ff, card.Label)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	metrics.ImagesComposedTotal.Inc()
	log.Debug().Str("username", r.Username).Int("bytes", buf.Len()).Msg("Share image composed")
	return buf.Bytes(), nil
}

func drawAvatar(dc *gg.Context, avatar image.Image, cx float64) {
	size := int(AvatarRadius * 2)
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), avatar, avatar.Bounds(), draw.Over, nil)

	dc.Push()
	dc.DrawCircle(cx, AvatarY, AvatarRadius)
	dc.Clip()
	dc.DrawImage(scaled, int(cx-AvatarRadius), int(AvatarY-AvatarRadius))
	dc.ResetClip()
	dc.Pop()

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(RingWidth)
	dc.DrawCircle(cx, AvatarY, AvatarRadius)
	dc.Stroke()
}

func drawText(dc *gg.Context, ff *faces, t Text) {
	dc.SetFontFace(ff.get(t.Size, t.Bold))
	dc.SetRGBA(1, 1, 1, t.Alpha)
	dc.DrawStringAnchored(ff.c.printable(t.Value), t.X, t.Y, 0.5, 0)
}

// printable drops runes the bundled fonts have no glyph for, such as emoji
// and variation selectors, and collapses the spaces left behind.
func (c *Compositor) printable(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r != ' ' && (c.regular.Index(r) == 0 || c.bold.Index(r) == 0) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
