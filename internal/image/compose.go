package imagepkg

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/youruser/surgechecklist/internal/cards"
)

// Badge geometry.
const (
	BadgeWidth  = 640
	BadgeHeight = 200

	barX      = 24
	barY      = 80
	barWidth  = 400
	barHeight = 40
	qrSide    = 160
)

var (
	badgeBackground = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	barTrack        = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	barFill         = color.NRGBA{R: 0x2e, G: 0x9e, B: 0x5b, A: 0xff}
)

// ComposeProgressBadge draws a bar filled to owned/total with an optional
// QR code on the right.
func ComposeProgressBadge(stats cards.Stats, qr image.Image) *image.NRGBA {
	canvas := imaging.New(BadgeWidth, BadgeHeight, badgeBackground)

	track := imaging.New(barWidth, barHeight, barTrack)
	canvas = imaging.Paste(canvas, track, image.Pt(barX, barY))

	if w := FilledWidth(stats); w > 0 {
		fill := imaging.New(w, barHeight, barFill)
		canvas = imaging.Paste(canvas, fill, image.Pt(barX, barY))
	}

	if qr != nil {
		q := imaging.Resize(qr, qrSide, qrSide, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(BadgeWidth-24-qrSide, (BadgeHeight-qrSide)/2))
	}
	return canvas
}

// FilledWidth is the filled part of the progress bar in pixels.
func FilledWidth(stats cards.Stats) int {
	if stats.Total <= 0 || stats.Owned <= 0 {
		return 0
	}
	if stats.Owned >= stats.Total {
		return barWidth
	}
	return barWidth * stats.Owned / stats.Total
}

// WriteBadgePNG renders the badge, with a QR code for link when it is
// not empty, as PNG.
func WriteBadgePNG(w io.Writer, stats cards.Stats, link string) error {
	var qr image.Image
	if link != "" {
		q, err := GenerateQRImage(link, qrSide)
		if err != nil {
			return err
		}
		qr = q
	}
	return imaging.Encode(w, ComposeProgressBadge(stats, qr), imaging.PNG)
}
