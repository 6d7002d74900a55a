package models

// AppSettings is the singleton company configuration used on bills and
// prints. Read at view load, written wholesale on save.
type AppSettings struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanyMobile  string `json:"companyMobile"`
	BillFooterNote string `json:"billFooterNote"`
}

// DefaultSettings returns the values used before the owner has saved any.
func DefaultSettings() AppSettings {
	return AppSettings{
		CompanyName:    "AquaFlow Services",
		CompanyAddress: "Main Market, City",
		CompanyMobile:  "",
		BillFooterNote: "Thank you for your business!",
	}
}
