package db

import (
	"time"

	"github.com/fieldopshq/fieldops/internal/models"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	database *gorm.DB
}

func NewInvoiceRepository(database *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{database: database}
}

func (repo *InvoiceRepository) Create(invoice *models.Invoice) error {
	return repo.database.Create(invoice).Error
}

func (repo *InvoiceRepository) FindByID(companyID uint, invoiceID uint) (models.Invoice, error) {
	var invoice models.Invoice
	if err := repo.database.Scopes(forCompany(companyID)).First(&invoice, invoiceID).Error; err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

// MarkPaid sets the invoice Paid and stamps paid_at. It is not guarded
// against repeat calls; an already-Paid invoice simply gets a fresh
// timestamp.
func (repo *InvoiceRepository) MarkPaid(companyID uint, invoiceID uint, paidAt time.Time) error {
	return repo.database.Model(&models.Invoice{}).
		Scopes(forCompany(companyID)).
		Where("id = ?", invoiceID).
		Updates(map[string]any{
			"status":  models.InvoiceStatusPaid,
			"paid_at": paidAt,
		}).Error
}

func (repo *InvoiceRepository) ListNewestFirst(companyID uint) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := repo.database.Scopes(forCompany(companyID)).
		Order("id DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (repo *InvoiceRepository) ListOverdue(companyID uint, today string) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := repo.database.Scopes(forCompany(companyID)).
		Where("status = ?", models.InvoiceStatusUnpaid).
		Where("due_date IS NOT NULL AND due_date < ?", today).
		Order("due_date ASC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (repo *InvoiceRepository) UnpaidTotal(companyID uint) (float64, error) {
	var total float64
	if err := repo.database.Model(&models.Invoice{}).
		Scopes(forCompany(companyID)).
		Where("status = ?", models.InvoiceStatusUnpaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// PublicInvoice is the read-only payload behind the unauthenticated
// payment page.
type PublicInvoice struct {
	Invoice      models.Invoice
	CompanyName  string
	CustomerName string
}

// FindByPublicToken is the one deliberately unscoped domain lookup:
// the payment page identifies an invoice only by its unguessable
// token, never by a sequential id.
func (repo *InvoiceRepository) FindByPublicToken(token string) (PublicInvoice, error) {
	var invoice models.Invoice
	if err := repo.database.Where("public_token = ?", token).First(&invoice).Error; err != nil {
		return PublicInvoice{}, err
	}

	var company models.Company
	if err := repo.database.First(&company, invoice.CompanyID).Error; err != nil {
		return PublicInvoice{}, err
	}

	var job models.Job
	if err := repo.database.First(&job, invoice.JobID).Error; err != nil {
		return PublicInvoice{}, err
	}

	return PublicInvoice{
		Invoice:      invoice,
		CompanyName:  company.Name,
		CustomerName: job.CustomerName,
	}, nil
}
