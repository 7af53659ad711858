package utils_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperr "github.com/phillip/volunteerease-go/apperr"
	utils "github.com/phillip/volunteerease-go/utils"
)

func newTestUploader(t *testing.T, handler http.HandlerFunc) *utils.Uploader {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	up, err := utils.NewUploader("demo", "key", "secret", "volunteerease", "events")
	if err != nil {
		t.Fatal(err)
	}
	// point the SDK at the stub instead of api.cloudinary.com
	up.Cloud().Upload.Config.API.UploadPrefix = srv.URL
	return up
}

func TestUploadImage_ReturnsSecureURL(t *testing.T) {
	up := newTestUploader(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url": "https://x/y.jpg"}`))
	})

	url, err := up.UploadImage(context.Background(), strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	if url != "https://x/y.jpg" {
		t.Errorf("url = %q, want %q", url, "https://x/y.jpg")
	}
}

func TestUploadImage_APIErrorBody(t *testing.T) {
	up := newTestUploader(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"message": "Upload preset not found"}}`))
	})

	_, err := up.UploadImage(context.Background(), strings.NewReader("fake image bytes"))
	if !apperr.Is(err, apperr.Upload) {
		t.Fatalf("error kind = %v, want Upload", apperr.KindOf(err))
	}
}

func TestUploadImage_EmptyResponse(t *testing.T) {
	up := newTestUploader(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	_, err := up.UploadImage(context.Background(), strings.NewReader("fake image bytes"))
	if !apperr.Is(err, apperr.Upload) {
		t.Fatalf("error kind = %v, want Upload", apperr.KindOf(err))
	}
}
