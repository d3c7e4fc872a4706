package pdf

import (
	qrcode "github.com/skip2/go-qrcode"
)

// qrPNG renders the encrypted payload as a QR image. Low error correction
// keeps the symbol small enough for the page header.
func qrPNG(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Low, 256)
}
