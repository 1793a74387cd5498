package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/fieldopshq/fieldops/internal/db"
	"github.com/fieldopshq/fieldops/internal/models"
	"github.com/fieldopshq/fieldops/internal/security"
)

type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	FindByID(companyID uint, invoiceID uint) (models.Invoice, error)
	MarkPaid(companyID uint, invoiceID uint, paidAt time.Time) error
	FindByPublicToken(token string) (db.PublicInvoice, error)
}

type InvoiceJobRepository interface {
	FindByID(companyID uint, jobID uint) (models.Job, error)
}

type InvoiceService struct {
	invoices InvoiceRepository
	jobs     InvoiceJobRepository
}

func NewInvoiceService(invoices InvoiceRepository, jobs InvoiceJobRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices, jobs: jobs}
}

// Create bills an in-tenant job. The amount only has to parse as a
// number; the due date is lenient (malformed becomes nil). The public
// token minted here is the sole key for the unauthenticated payment
// page and is never rotated.
func (service *InvoiceService) Create(companyID uint, jobID uint, rawAmount string, rawDueDate string, rawCustomerEmail string) (models.Invoice, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
	if err != nil {
		return models.Invoice{}, ErrInvalidAmount
	}

	if _, err := service.jobs.FindByID(companyID, jobID); err != nil {
		return models.Invoice{}, asNotFound(err)
	}

	token, err := security.Token(security.PublicTokenLength)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice := models.Invoice{
		CompanyID:     companyID,
		JobID:         jobID,
		Amount:        amount,
		Status:        models.InvoiceStatusUnpaid,
		DueDate:       ParseOptionalDate(rawDueDate),
		CreatedAt:     time.Now(),
		PublicToken:   token,
		CustomerEmail: OptionalText(rawCustomerEmail),
	}
	if err := service.invoices.Create(&invoice); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

// MarkPaid stamps the invoice Paid with the current time. Re-marking a
// Paid invoice succeeds and refreshes paid_at.
func (service *InvoiceService) MarkPaid(companyID uint, invoiceID uint) error {
	if _, err := service.invoices.FindByID(companyID, invoiceID); err != nil {
		return asNotFound(err)
	}
	return service.invoices.MarkPaid(companyID, invoiceID, time.Now())
}

// PublicByToken is the only cross-tenant read path; the token is the
// lookup key, never the row id.
func (service *InvoiceService) PublicByToken(token string) (db.PublicInvoice, error) {
	view, err := service.invoices.FindByPublicToken(strings.TrimSpace(token))
	if err != nil {
		return db.PublicInvoice{}, asNotFound(err)
	}
	return view, nil
}
