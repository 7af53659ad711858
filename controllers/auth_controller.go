package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperr "github.com/phillip/volunteerease-go/apperr"
	auth "github.com/phillip/volunteerease-go/auth"
)

// statusFor maps an error kind to an HTTP status. Remote failures stay
// generic 500s; the client cannot repair them.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Auth:
		return http.StatusUnauthorized
	case apperr.DataIntegrity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ---------------- SIGNUP ----------------
func Signup(svc *auth.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username             string `json:"username"`
			Email                string `json:"email"`
			Password             string `json:"password"`
			PasswordConfirmation string `json:"password_confirmation"`
			AccountKind          string `json:"account_kind"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// confirmation is checked here, not in the auth service
		if input.Password != input.PasswordConfirmation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		res, err := svc.SignUp(ctx, input.Username, input.Email, input.Password, input.AccountKind)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		token, err := auth.GenerateToken(jwtSecret, auth.Claims{
			UserID:      res.Profile.ID,
			SessionID:   res.SessionID,
			AccountKind: res.AccountKind,
			Username:    res.Profile.DisplayName,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"token":        token,
			"profile":      res.Profile,
			"account_kind": res.AccountKind,
		})
	}
}

// ---------------- LOGIN ----------------
func Login(svc *auth.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		res, err := svc.Login(ctx, input.Email, input.Password)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		token, err := auth.GenerateToken(jwtSecret, auth.Claims{
			UserID:      res.Profile.ID,
			SessionID:   res.SessionID,
			AccountKind: res.AccountKind,
			Username:    res.Profile.DisplayName,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"profile":      res.Profile,
			"account_kind": res.AccountKind,
		})
	}
}

// ---------------- LOGOUT ----------------
func Logout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := svc.SignOut(ctx, sid); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}
