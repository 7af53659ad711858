package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	controllers "github.com/phillip/volunteerease-go/controllers"
	models "github.com/phillip/volunteerease-go/models"
)

type fakeVolunteers struct {
	insertCalls int
	apps        []models.VolunteerApplication
}

func (f *fakeVolunteers) Insert(ctx context.Context, app models.VolunteerApplication) (string, error) {
	f.insertCalls++
	f.apps = append(f.apps, app)
	return "app-1", nil
}

func volunteersRouter(vols *fakeVolunteers, sender controllers.EmailSender) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "cred-1")
	})
	r.POST("/volunteers", controllers.SubmitApplication(vols, sender, zap.NewNop()))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmitApplication_NonNumericAge(t *testing.T) {
	vols := &fakeVolunteers{}
	r := volunteersRouter(vols, nil)

	rec := postJSON(r, "/volunteers", `{
		"username": "Jane",
		"phone_number": "555-0101",
		"nationality": "Kenyan",
		"email": "jane@example.com",
		"age": "abc"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if vols.insertCalls != 0 {
		t.Errorf("insert called %d times, want 0", vols.insertCalls)
	}
}

func TestSubmitApplication_MissingField(t *testing.T) {
	vols := &fakeVolunteers{}
	r := volunteersRouter(vols, nil)

	rec := postJSON(r, "/volunteers", `{
		"username": "Jane",
		"phone_number": "",
		"nationality": "Kenyan",
		"email": "jane@example.com",
		"age": "25"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if vols.insertCalls != 0 {
		t.Errorf("insert called %d times, want 0", vols.insertCalls)
	}
}

func TestSubmitApplication_StoresAgeAsInteger(t *testing.T) {
	vols := &fakeVolunteers{}
	var emailedTo string
	sender := func(to, name, subject, body string) error {
		emailedTo = to
		return nil
	}
	r := volunteersRouter(vols, sender)

	rec := postJSON(r, "/volunteers", `{
		"username": "Jane",
		"phone_number": "555-0101",
		"nationality": "Kenyan",
		"email": "jane@example.com",
		"age": "25"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body = %s", rec.Code, rec.Body.String())
	}
	if len(vols.apps) != 1 {
		t.Fatalf("stored %d applications, want 1", len(vols.apps))
	}
	app := vols.apps[0]
	if app.Age != 25 {
		t.Errorf("age = %d, want 25", app.Age)
	}
	if app.UserID != "cred-1" {
		t.Errorf("user_id = %q, want %q", app.UserID, "cred-1")
	}
	if emailedTo != "jane@example.com" {
		t.Errorf("confirmation sent to %q", emailedTo)
	}
}

func TestSubmitApplication_EmailFailureDoesNotFailRequest(t *testing.T) {
	vols := &fakeVolunteers{}
	sender := func(to, name, subject, body string) error {
		return context.DeadlineExceeded
	}
	r := volunteersRouter(vols, sender)

	rec := postJSON(r, "/volunteers", `{
		"username": "Jane",
		"phone_number": "555-0101",
		"nationality": "Kenyan",
		"email": "jane@example.com",
		"age": "30"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}
