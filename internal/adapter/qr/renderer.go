package qr

import (
	"payments-service/internal/usecase/interfaces"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Renderer rasterizes QR payloads into PNG bytes.
type Renderer struct{}

var _ interfaces.IQRCodeRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, imageSize)
}
