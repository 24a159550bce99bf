package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/bootstrap"
	"github.com/edalcin/medlog/internal/consultations"
	"github.com/edalcin/medlog/internal/professionals"
	"github.com/edalcin/medlog/internal/shared/config"
)

func TestDashboardShowsCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:              "0",
		Env:               "dev",
		UploadDir:         t.TempDir(),
		AllowedExtensions: map[string]struct{}{"pdf": {}},
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	ctx := context.Background()
	profID, err := app.ProfessionalsService.Create(ctx, professionals.Professional{
		Name:      "Dr. A",
		Specialty: "Cardiology",
	})
	if err != nil {
		t.Fatalf("create professional: %v", err)
	}
	for _, date := range []string{"2024-01-10", "2024-02-11"} {
		day, _ := time.Parse("2006-01-02", date)
		if _, err := app.ConsultationsService.Create(ctx, consultations.Consultation{
			Date:           day,
			ProfessionalID: profID,
			Specialty:      "Cardiology",
		}); err != nil {
			t.Fatalf("create consultation: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Professionals") || !strings.Contains(body, "Consultations") {
		t.Fatal("expected count cards on the dashboard page")
	}
}
