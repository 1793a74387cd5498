package api

import (
	"html/template"
	"time"

	"github.com/fieldopshq/fieldops/internal/db"
	"github.com/fieldopshq/fieldops/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db               *gorm.DB
	secretKey        []byte
	location         *time.Location
	cookieSecure     bool
	reservedUsername string
	templates        map[string]*template.Template

	repositories     *db.Repositories
	authService      *services.AuthService
	setupService     *services.SetupService
	leadService      *services.LeadService
	jobService       *services.JobService
	invoiceService   *services.InvoiceService
	taskService      *services.TaskService
	dashboardService *services.DashboardService
	ownerService     *services.OwnerService
}

const (
	authCookieName = "fieldops_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

// authClaims is the session payload: who the user is, which company
// their requests are scoped to, and their role.
type authClaims struct {
	UserID    uint   `json:"uid"`
	CompanyID uint   `json:"cid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
