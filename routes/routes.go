package routes

import (
	"github.com/gin-gonic/gin"

	auth "github.com/phillip/volunteerease-go/auth"
	config "github.com/phillip/volunteerease-go/config"
	controllers "github.com/phillip/volunteerease-go/controllers"
	middleware "github.com/phillip/volunteerease-go/middleware"
	repo "github.com/phillip/volunteerease-go/repo"
	utils "github.com/phillip/volunteerease-go/utils"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) error {
	db := cfg.DB()

	provider := auth.NewMongoProvider(db)
	accounts := repo.NewMongoAccounts(db)
	events := repo.NewMongoEvents(db)
	volunteers := repo.NewMongoVolunteers(db)
	svc := auth.NewService(provider, accounts, cfg.Logger)

	uploader, err := utils.NewUploader(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryPreset,
		cfg.CloudinaryFolder,
	)
	if err != nil {
		return err
	}

	// public
	r.POST("/auth/signup", controllers.Signup(svc, cfg.JWTSecret))
	r.POST("/auth/login", controllers.Login(svc, cfg.JWTSecret))

	// protected
	authmw := middleware.AuthMiddleware(cfg.JWTSecret, provider)

	r.POST("/auth/logout", authmw, controllers.Logout(svc))

	ev := r.Group("/events")
	ev.Use(authmw)
	{
		ev.POST("", controllers.CreateEvent(events, uploader, cfg.Logger))
		ev.GET("", controllers.ListEvents(events))
		ev.GET("/:id", controllers.GetEvent(events))
	}

	vol := r.Group("/volunteers")
	vol.Use(authmw)
	{
		vol.POST("", controllers.SubmitApplication(volunteers, utils.SendEmail, cfg.Logger))
	}

	return nil
}
