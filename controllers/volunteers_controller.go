package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	models "github.com/phillip/volunteerease-go/models"
	repo "github.com/phillip/volunteerease-go/repo"
)

// EmailSender delivers the best-effort confirmation email. May be nil.
type EmailSender func(to, name, subject, body string) error

// ---------------- SUBMIT ----------------
func SubmitApplication(volunteers repo.Volunteers, sendEmail EmailSender, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username    string `json:"username"`
			PhoneNumber string `json:"phone_number"`
			Nationality string `json:"nationality"`
			Email       string `json:"email"`
			Age         string `json:"age"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Username == "" || input.PhoneNumber == "" || input.Nationality == "" ||
			input.Email == "" || input.Age == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill all fields"})
			return
		}

		age, err := strconv.Atoi(input.Age)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a number"})
			return
		}

		app := models.VolunteerApplication{
			UserID:      c.GetString("user_id"),
			Username:    input.Username,
			PhoneNumber: input.PhoneNumber,
			Nationality: input.Nationality,
			Email:       input.Email,
			Age:         age,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		id, err := volunteers.Insert(ctx, app)
		if err != nil {
			logger.Error("could not submit application", zap.Error(err))
			c.JSON(statusFor(err), gin.H{"error": "failed to submit volunteer application"})
			return
		}

		// confirmation email is best effort; the submission already succeeded
		if sendEmail != nil {
			body := fmt.Sprintf("<p>Hi %s,</p><p>Your volunteer application has been received.</p>", input.Username)
			if err := sendEmail(input.Email, input.Username, "Volunteer application received", body); err != nil {
				logger.Warn("could not send confirmation email",
					zap.String("to", input.Email),
					zap.Error(err))
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":      id,
			"message": "volunteer application submitted",
		})
	}
}
