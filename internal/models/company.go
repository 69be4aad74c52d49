package models

// Company for the company table.
type Company struct {
	ID          int64  `json:"company_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Website     string `json:"website"`
}

// Address for the address table. A company may have several rows; list
// views surface at most one per company.
type Address struct {
	ID            int64  `json:"address_id"`
	CompanyID     int64  `json:"company_id"`
	AddressDetail string `json:"address_detail"`
}
