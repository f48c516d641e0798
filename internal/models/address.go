package models

// Address holds the components extracted from a free-text Japanese address, alongside the original input it was derived from.
type Address struct {
	Prefecture          string `json:"prefecture"`
	City                string `json:"city"`
	PostalCode          string `json:"postal_code"`
	StandardizedAddress string `json:"standardized_address"`
	OriginalAddress     string `json:"original_address"`
}
