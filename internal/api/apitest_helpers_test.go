package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fieldopshq/fieldops/internal/db"
	"github.com/fieldopshq/fieldops/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "orange-crane-42"

type testEnv struct {
	app      *fiber.App
	handler  *Handler
	repos    *db.Repositories
	database *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fieldops-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret", filepath.Join("..", "templates"), time.UTC, "fieldops_owner", false)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testEnv{
		app:      app,
		handler:  handler,
		repos:    db.NewRepositories(database),
		database: database,
	}
}

func testPasswordHash(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func (env *testEnv) createTenant(t *testing.T, companyName string, username string) models.User {
	t.Helper()

	user, err := env.repos.Users.CreateTenantWithAdmin(companyName, username, testPasswordHash(t), false)
	if err != nil {
		t.Fatalf("create tenant %s: %v", companyName, err)
	}
	return user
}

func (env *testEnv) createSuperAdmin(t *testing.T, companyName string, username string) models.User {
	t.Helper()

	company := models.Company{Name: companyName, CreatedAt: time.Now()}
	if err := env.repos.Companies.Create(&company); err != nil {
		t.Fatalf("create owner company: %v", err)
	}
	user := models.User{
		CompanyID:    company.ID,
		Username:     username,
		PasswordHash: testPasswordHash(t),
		Role:         models.RoleSuperAdmin,
		CreatedAt:    time.Now(),
	}
	if err := env.repos.Users.Create(&user); err != nil {
		t.Fatalf("create super admin: %v", err)
	}
	return user
}

func (env *testEnv) authCookie(t *testing.T, user models.User) string {
	t.Helper()

	token, err := env.handler.buildToken(&user, authTokenTTL)
	if err != nil {
		t.Fatalf("build session token: %v", err)
	}
	return authCookieName + "=" + token
}

func (env *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	return resp
}

func (env *testEnv) get(t *testing.T, path string, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return env.do(t, req)
}

func (env *testEnv) postForm(t *testing.T, path string, cookie string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return env.do(t, req)
}

func seedJob(t *testing.T, env *testEnv, companyID uint, customerName string) models.Job {
	t.Helper()

	job := models.Job{
		CompanyID:    companyID,
		CustomerName: customerName,
		Status:       models.JobStatusScheduled,
		CreatedAt:    time.Now().UTC(),
	}
	if err := env.database.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func seedInvoice(t *testing.T, env *testEnv, companyID uint, jobID uint, amount float64, token string) models.Invoice {
	t.Helper()

	invoice := models.Invoice{
		CompanyID:   companyID,
		JobID:       jobID,
		Amount:      amount,
		Status:      models.InvoiceStatusUnpaid,
		PublicToken: token,
		CreatedAt:   time.Now().UTC(),
	}
	if err := env.repos.Invoices.Create(&invoice); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return invoice
}

func seedTask(t *testing.T, env *testEnv, companyID uint, jobID uint, title string) models.Task {
	t.Helper()

	task := models.Task{
		CompanyID: companyID,
		JobID:     jobID,
		Title:     title,
		Status:    models.TaskStatusTodo,
		CreatedAt: time.Now().UTC(),
	}
	if err := env.repos.Tasks.Create(&task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func containsText(body string, needle string) bool {
	return strings.Contains(body, needle)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	_ = resp.Body.Close()
	return string(body)
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()

	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, readBody(t, resp))
	}
}

func wantRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()

	wantStatus(t, resp, http.StatusSeeOther)
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}
