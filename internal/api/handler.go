package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, reservedUsername string, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatAmount": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"text": func(value *string) string {
			if value == nil {
				return ""
			}
			return *value
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"setup",
		"signup",
		"dashboard",
		"public_invoice",
		"owner_companies",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:               database,
		secretKey:        []byte(secret),
		location:         location,
		cookieSecure:     cookieSecure,
		reservedUsername: reservedUsername,
		templates:        templates,
	}
	return handler.withDependencies(database), nil
}
