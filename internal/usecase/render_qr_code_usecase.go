package usecase

import (
	"context"
	"errors"
	"strings"

	"payments-service/internal/usecase/interfaces"
)

var ErrMissingQRCode = errors.New("payment does not have an associated qr code")

// IRenderQRCodeUseCase loads a payment and rasterizes its QR payload.
type IRenderQRCodeUseCase interface {
	Execute(ctx context.Context, paymentID string) ([]byte, error)
}

type RenderQRCodeUseCase struct {
	repo     interfaces.IPaymentRepository
	renderer interfaces.IQRCodeRenderer
}

var _ IRenderQRCodeUseCase = (*RenderQRCodeUseCase)(nil)

func NewRenderQRCodeUseCase(repo interfaces.IPaymentRepository, renderer interfaces.IQRCodeRenderer) *RenderQRCodeUseCase {
	return &RenderQRCodeUseCase{repo: repo, renderer: renderer}
}

// Execute returns the renderer's bytes verbatim; the payload format is
// opaque to this use case.
func (u *RenderQRCodeUseCase) Execute(ctx context.Context, paymentID string) ([]byte, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	p, err := u.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.QRCode == "" {
		return nil, ErrMissingQRCode
	}

	return u.renderer.Render(p.QRCode)
}
