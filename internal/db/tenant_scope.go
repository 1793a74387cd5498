package db

import "gorm.io/gorm"

// forCompany is the single tenant filter. Every query a domain
// repository issues goes through this scope; a lookup that lands in
// another company's rows comes back as gorm.ErrRecordNotFound, the
// same as a row that does not exist.
func forCompany(companyID uint) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("company_id = ?", companyID)
	}
}
