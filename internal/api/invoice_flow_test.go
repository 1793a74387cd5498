package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/fieldopshq/fieldops/internal/models"
	"github.com/fieldopshq/fieldops/internal/security"
)

func TestCreateInvoiceRejectsBadAmounts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	cookie := env.authCookie(t, admin)
	job := seedJob(t, env, admin.CompanyID, "Jane")

	for _, amount := range []string{"", "abc", "12,50"} {
		resp := env.postForm(t, "/create_invoice/"+itoa(job.ID), cookie, url.Values{"amount": {amount}})
		wantStatus(t, resp, http.StatusBadRequest)
	}

	invoices, err := env.repos.Invoices.ListNewestFirst(admin.CompanyID)
	if err != nil {
		t.Fatalf("list invoices: %v", err)
	}
	if len(invoices) != 0 {
		t.Fatalf("expected no invoices after rejected amounts, got %d", len(invoices))
	}
}

func TestCreateInvoiceIssuesPaymentToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	cookie := env.authCookie(t, admin)
	job := seedJob(t, env, admin.CompanyID, "Jane")

	resp := env.postForm(t, "/create_invoice/"+itoa(job.ID), cookie, url.Values{
		"amount":         {"150"},
		"due_date":       {"2024-05-15"},
		"customer_email": {"jane@example.com"},
	})
	wantRedirect(t, resp, "/")

	invoices, err := env.repos.Invoices.ListNewestFirst(admin.CompanyID)
	if err != nil {
		t.Fatalf("list invoices: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("expected one invoice, got %d", len(invoices))
	}
	invoice := invoices[0]
	if invoice.Amount != 150 {
		t.Fatalf("expected amount 150, got %v", invoice.Amount)
	}
	if invoice.Status != models.InvoiceStatusUnpaid {
		t.Fatalf("expected fresh invoice to be %q, got %q", models.InvoiceStatusUnpaid, invoice.Status)
	}
	if invoice.DueDate == nil || *invoice.DueDate != "2024-05-15" {
		t.Fatalf("expected due date 2024-05-15, got %v", invoice.DueDate)
	}
	if len(invoice.PublicToken) != security.PublicTokenLength {
		t.Fatalf("expected token length %d, got %d", security.PublicTokenLength, len(invoice.PublicToken))
	}

	// A second invoice on the same job gets its own token.
	resp = env.postForm(t, "/create_invoice/"+itoa(job.ID), cookie, url.Values{"amount": {"75.50"}})
	wantRedirect(t, resp, "/")

	invoices, err = env.repos.Invoices.ListNewestFirst(admin.CompanyID)
	if err != nil {
		t.Fatalf("list invoices: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected two invoices, got %d", len(invoices))
	}
	if invoices[0].PublicToken == invoices[1].PublicToken {
		t.Fatal("expected each invoice to carry a distinct public token")
	}
}

func TestPublicPaymentPageNeedsNoSession(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	job := seedJob(t, env, admin.CompanyID, "Jane")
	invoice := seedInvoice(t, env, admin.CompanyID, job.ID, 150, "paytoken-0000000000000000000001")

	resp := env.get(t, "/pay/"+invoice.PublicToken, "")
	wantStatus(t, resp, http.StatusOK)
	body := readBody(t, resp)
	if !containsText(body, "Acme Plumbing") || !containsText(body, "Jane") {
		t.Fatal("expected payment page to show company and customer names")
	}
	if !containsText(body, "150.00") {
		t.Fatal("expected payment page to show the amount")
	}
}

func TestPublicPaymentPageRejectsUnknownTokens(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	job := seedJob(t, env, admin.CompanyID, "Jane")
	seedInvoice(t, env, admin.CompanyID, job.ID, 150, "paytoken-0000000000000000000001")

	resp := env.get(t, "/pay/not-the-token", "")
	wantStatus(t, resp, http.StatusNotFound)
}

// Marking an already-Paid invoice paid again simply refreshes paid_at.
func TestMarkPaidIsRepeatableAndRestampsPaidAt(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	cookie := env.authCookie(t, admin)
	job := seedJob(t, env, admin.CompanyID, "Jane")
	invoice := seedInvoice(t, env, admin.CompanyID, job.ID, 150, "paytoken-0000000000000000000002")

	resp := env.postForm(t, "/mark_paid/"+itoa(invoice.ID), cookie, url.Values{})
	wantRedirect(t, resp, "/")

	first, err := env.repos.Invoices.FindByID(admin.CompanyID, invoice.ID)
	if err != nil {
		t.Fatalf("reload invoice: %v", err)
	}
	if first.Status != models.InvoiceStatusPaid || first.PaidAt == nil {
		t.Fatalf("expected paid invoice with timestamp, got %+v", first)
	}

	resp = env.postForm(t, "/mark_paid/"+itoa(invoice.ID), cookie, url.Values{})
	wantRedirect(t, resp, "/")

	second, err := env.repos.Invoices.FindByID(admin.CompanyID, invoice.ID)
	if err != nil {
		t.Fatalf("reload invoice: %v", err)
	}
	if second.Status != models.InvoiceStatusPaid || second.PaidAt == nil {
		t.Fatalf("expected invoice to stay paid, got %+v", second)
	}
	if second.PaidAt.Before(*first.PaidAt) {
		t.Fatalf("expected paid_at to move forward, got %v then %v", first.PaidAt, second.PaidAt)
	}
}
