package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateShopQR returns a PNG QR code pointing at the public page of the shop
	GenerateShopQR(shopName string) ([]byte, error)

	// ShopURL returns the public URL encoded in the shop QR code
	ShopURL(shopName string) string
}
