package domain

// AssetType identifies a category of balance a user can hold (e.g. a currency
// or an instrument). Rows are created and deactivated by an administrative
// process outside this service; here they are read-mostly reference data.
type AssetType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}
