package model

// Beneficiary is an explicitly saved payee. Transactions may also carry
// free-text payee names that never become Beneficiary records; only records
// created through the store are persisted here.
type Beneficiary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	DefaultCategoryID string `json:"default_category_id,omitempty"`
	UseCount          int    `json:"use_count"`
}
