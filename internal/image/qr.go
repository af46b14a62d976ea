package imagepkg

import (
	"errors"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// MaxQRSize bounds the requested QR side in pixels.
const MaxQRSize = 1024

var ErrEmptyQRText = errors.New("qr text is empty")

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := newQR(text)
	if err != nil {
		return nil, err
	}
	return q.PNG(clampSize(size))
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := newQR(text)
	if err != nil {
		return nil, err
	}
	return q.Image(clampSize(size)), nil
}

func newQR(text string) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, ErrEmptyQRText
	}
	return qrcode.New(text, qrcode.Medium)
}

func clampSize(size int) int {
	switch {
	case size <= 0:
		return 256
	case size > MaxQRSize:
		return MaxQRSize
	}
	return size
}
