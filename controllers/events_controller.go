package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	models "github.com/phillip/volunteerease-go/models"
	repo "github.com/phillip/volunteerease-go/repo"
	utils "github.com/phillip/volunteerease-go/utils"
)

// ImageUploader is what CreateEvent needs from the media helper.
type ImageUploader interface {
	UploadImage(ctx context.Context, file interface{}) (string, error)
}

// ---------------- CREATE ----------------
func CreateEvent(events repo.Events, up ImageUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// organizations only; individuals browse and volunteer
		if c.GetString("account_kind") != models.KindOrganization {
			c.JSON(http.StatusForbidden, gin.H{"error": "only organizations can create events"})
			return
		}

		var input struct {
			Name        string `form:"name"`
			Location    string `form:"location"`
			Date        string `form:"date"`
			Description string `form:"description"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// all required fields are checked before any remote call,
		// including the image upload
		if input.Name == "" || input.Location == "" || input.Date == "" || input.Description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill all fields"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		var imageURL string
		if form != nil && len(form.File["image"]) > 0 {
			fileHeader := form.File["image"][0]
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
				return
			}

			url, err := up.UploadImage(c.Request.Context(), file)
			file.Close()
			if err != nil {
				logger.Error("image upload failed",
					zap.String("file", fileHeader.Filename),
					zap.Error(err))
				c.JSON(statusFor(err), gin.H{"error": "image upload failed"})
				return
			}
			imageURL = url
		}

		event := models.Event{
			Name:        input.Name,
			Location:    input.Location,
			Date:        input.Date,
			Description: input.Description,
			ImageURL:    imageURL,
			CreatedBy:   c.GetString("user_id"),
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		id, err := events.Insert(ctx, event)
		if err != nil {
			logger.Error("could not create event", zap.Error(err))
			c.JSON(statusFor(err), gin.H{"error": "could not create event"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":      id,
			"message": "event created",
		})
	}
}

// ---------------- LIST ----------------
func ListEvents(events repo.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		list, err := events.List(ctx)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": "could not fetch events"})
			return
		}

		if len(list) == 0 {
			c.JSON(http.StatusOK, []models.Event{})
			return
		}

		// list is ordered newest-first, so the head drives the validators
		latest := list[0]
		etag := utils.GenerateETag(latest.ID.Hex(), latest.CreatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		if ts, err := time.Parse(time.RFC3339, latest.CreatedAt); err == nil {
			c.Header("Last-Modified", ts.UTC().Format(http.TimeFormat))
		}

		c.JSON(http.StatusOK, list)
	}
}

// ---------------- GET ----------------
func GetEvent(events repo.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		event, err := events.Get(ctx, c.Param("id"))
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": "could not read event"})
			return
		}

		etag := utils.GenerateETag(event.ID.Hex(), event.CreatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, event)
	}
}
