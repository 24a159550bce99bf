package professionals_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/bootstrap"
	"github.com/edalcin/medlog/internal/consultations"
	"github.com/edalcin/medlog/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:              "0",
		Env:               "dev",
		UploadDir:         t.TempDir(),
		AllowedExtensions: map[string]struct{}{"pdf": {}, "jpg": {}, "png": {}},
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func postForm(t *testing.T, app *bootstrap.App, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestCreateProfessionalAndListOrder(t *testing.T) {
	app := newTestApp(t)

	for _, name := range []string{"Dr. Souza", "Dr. A", "Dr. Martins"} {
		resp := postForm(t, app, "/professionals/new", url.Values{
			"name":      {name},
			"specialty": {"Cardiology"},
		})
		if resp.Code != http.StatusSeeOther {
			t.Fatalf("create %q: expected 303, got %d", name, resp.Code)
		}
		if loc := resp.Header().Get("Location"); loc != "/professionals" {
			t.Fatalf("expected redirect to /professionals, got %q", loc)
		}
	}

	profs, err := app.ProfessionalsRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profs) != 3 {
		t.Fatalf("expected 3 professionals, got %d", len(profs))
	}
	want := []string{"Dr. A", "Dr. Martins", "Dr. Souza"}
	for i, name := range want {
		if profs[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, profs[i].Name)
		}
	}
}

func TestCreateProfessionalMissingNameFails(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(t, app, "/professionals/new", url.Values{
		"specialty": {"Cardiology"},
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "required") {
		t.Fatalf("expected a validation message in the form page")
	}

	profs, err := app.ProfessionalsRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profs) != 0 {
		t.Fatalf("expected no persisted records, got %d", len(profs))
	}
}

func TestUpdateProfessional(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	id, err := app.ProfessionalsService.Create(ctx, professionalFixture("Dr. A"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp := postForm(t, app, "/professionals/"+strconv.FormatInt(id, 10)+"/edit", url.Values{
		"name":      {"Dr. A"},
		"specialty": {"Dermatology"},
		"phone":     {"555-0100"},
	})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}

	p, err := app.ProfessionalsRepo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Specialty != "Dermatology" || p.Phone != "555-0100" {
		t.Fatalf("update not applied: %+v", p)
	}
}

func TestEditMissingProfessionalIs404(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/professionals/999/edit", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDeleteProfessionalBlockedByConsultations(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	id, err := app.ProfessionalsService.Create(ctx, professionalFixture("Dr. A"))
	if err != nil {
		t.Fatalf("create professional: %v", err)
	}
	_, err = app.ConsultationsService.Create(ctx, consultations.Consultation{
		Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ProfessionalID: id,
		Specialty:      "Cardiology",
	})
	if err != nil {
		t.Fatalf("create consultation: %v", err)
	}

	resp := postForm(t, app, "/professionals/"+strconv.FormatInt(id, 10)+"/delete", nil)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}

	// The professional must still exist.
	if _, err := app.ProfessionalsRepo.GetByID(ctx, id); err != nil {
		t.Fatalf("professional should survive a blocked delete: %v", err)
	}
}

func TestDeleteProfessionalWithoutConsultations(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	id, err := app.ProfessionalsService.Create(ctx, professionalFixture("Dr. A"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp := postForm(t, app, "/professionals/"+strconv.FormatInt(id, 10)+"/delete", nil)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}

	if _, err := app.ProfessionalsRepo.GetByID(ctx, id); err == nil {
		t.Fatal("expected professional to be removed")
	}
}
