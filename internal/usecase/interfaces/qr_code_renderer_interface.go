package interfaces

//go:generate mockgen -source=qr_code_renderer_interface.go -destination=mocks/qr_code_renderer_mock.go -package=mock_interfaces

// IQRCodeRenderer rasterizes an opaque QR payload into image bytes.
type IQRCodeRenderer interface {
	Render(payload string) ([]byte, error)
}
