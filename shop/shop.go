package shop

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the shop identity and payment details printed on every bill.
// Defaults cover the single-terminal deployment; each field can be overridden
// through the environment (KIRANA_* variables, optionally from a .env file).
type Config struct {
	Name         string
	Address      string
	Phone        string
	UPIID        string
	PayeeName    string
	LogoPath     string
	BillPrefix   string
	CourtesyLine string
}

// Default returns the built-in shop configuration.
func Default() Config {
	return Config{
		Name:         "Malik Kirana Shop",
		Address:      "Chichpada Naka, Vasai (E), 401208",
		Phone:        "+91 9834540990",
		UPIID:        "malikkirana@upi",
		PayeeName:    "Malik Kirana",
		LogoPath:     "static/logo.jpg",
		BillPrefix:   "MK",
		CourtesyLine: "Thank you for your business!",
	}
}

// Load reads .env if present and applies environment overrides on top of the
// defaults. A missing .env is not an error.
func Load() Config {
	godotenv.Load()

	cfg := Default()
	override(&cfg.Name, "KIRANA_SHOP_NAME")
	override(&cfg.Address, "KIRANA_SHOP_ADDRESS")
	override(&cfg.Phone, "KIRANA_SHOP_PHONE")
	override(&cfg.UPIID, "KIRANA_UPI_ID")
	override(&cfg.PayeeName, "KIRANA_PAYEE_NAME")
	override(&cfg.LogoPath, "KIRANA_LOGO_PATH")
	override(&cfg.BillPrefix, "KIRANA_BILL_PREFIX")
	override(&cfg.CourtesyLine, "KIRANA_COURTESY_LINE")
	return cfg
}

func override(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}
