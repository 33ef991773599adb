package service

// QRCodeService renders QR codes
type QRCodeService interface {
	// PNG encodes content as a PNG QR code
	PNG(content string) ([]byte, error)
}
