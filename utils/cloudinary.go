package utils

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	apperr "github.com/phillip/volunteerease-go/apperr"
)

// Uploader pushes event images to Cloudinary with a preconfigured
// upload preset and destination folder. One file per call, no retry,
// no chunking.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

func NewUploader(cloudName, apiKey, apiSecret, preset, folder string) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upload, "cloudinary config error", err)
	}
	return &Uploader{cld: cld, preset: preset, folder: folder}, nil
}

// Cloud exposes the underlying client so tests can point the SDK at a
// stub server.
func (u *Uploader) Cloud() *cloudinary.Cloudinary { return u.cld }

// UploadImage sends one image and returns its secure (HTTPS) URL.
// file may be a multipart.File, an io.Reader, or a base64 data URI.
func (u *Uploader) UploadImage(ctx context.Context, file interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		UploadPreset: u.preset,
		Folder:       u.folder,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.Upload, "upload error", err)
	}
	// the SDK reports API-level failures in the body, not as an error
	if resp.Error.Message != "" {
		return "", apperr.Newf(apperr.Upload, "upload error: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", apperr.New(apperr.Upload, "upload error: no secure url in response")
	}
	return resp.SecureURL, nil
}
