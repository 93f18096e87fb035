package services

import (
	"github.com/skip2/go-qrcode"
)

// GenerateLinkQR returns a PNG QR code pointing at a link's referral URL.
func GenerateLinkQR(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
