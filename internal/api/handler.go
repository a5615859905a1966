package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunora-app/lunora/internal/db"
	"github.com/lunora-app/lunora/internal/services"
	"gorm.io/gorm"
)

const authCookieName = "lunora_token"

type Handler struct {
	auth         *services.AuthService
	tracker      *services.TrackerService
	secretKey    []byte
	tokenTTL     time.Duration
	cookieSecure bool
	location     *time.Location
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, cookieSecure bool, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)

	return &Handler{
		auth:         services.NewAuthService(repos.Users),
		tracker:      services.NewTrackerService(repos.PeriodLogs, repos.Symptoms, repos.Temperatures, location),
		secretKey:    []byte(secretKey),
		tokenTTL:     tokenTTL,
		cookieSecure: cookieSecure,
		location:     location,
	}
}

func RegisterRoutes(app *fiber.App, handler *Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/recover", handler.RecoverPassword)

	api := app.Group("/api", handler.RequireAuth)
	api.Get("/logs", handler.ListPeriodLogs)
	api.Post("/logs", handler.CreatePeriodLog)
	api.Put("/logs/:id", handler.ReplacePeriodLog)
	api.Delete("/logs/:id", handler.DeletePeriodLog)

	api.Post("/symptoms", handler.CreateSymptom)
	api.Post("/temperatures", handler.CreateTemperature)

	api.Get("/stats", handler.CycleStats)
	api.Get("/prediction", handler.Prediction)
	api.Get("/calendar", handler.Calendar)
	api.Get("/day", handler.ClassifyDay)
	api.Get("/fertility", handler.Fertility)
	api.Get("/insights", handler.Insights)
	api.Get("/export.csv", handler.ExportCSV)
}
