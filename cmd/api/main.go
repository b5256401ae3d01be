package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"chatflows/internal/config"
	"chatflows/internal/database"
	"chatflows/internal/middleware"
	"chatflows/internal/modules/notification"
	"chatflows/internal/modules/onboarding"
	"chatflows/internal/modules/payment"
	"chatflows/internal/modules/upload"
	"chatflows/internal/repository"
	"chatflows/internal/storage"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	loggerf := log.Printf

	submissionRepo := repository.NewSubmissionRepository(db)
	legacyRepo := repository.NewLegacySubmissionRepository(db)

	store := storage.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, loggerf)
	uploadService := upload.NewService(store, loggerf)

	mailer := notification.NewResendMailer(cfg.ResendAPIKey)
	suppressor := notification.NewMemorySuppressor(cfg.EmailCooldown)
	checker := notification.NewHTTPLinkChecker(cfg.ProbeTimeout)
	notifyService := notification.NewService(mailer, suppressor, checker, cfg.FromEmail, cfg.AdminEmail, loggerf)
	notifyHandler := notification.NewHandler(notifyService)

	checkout := payment.NewCheckoutLinks(cfg.CheckoutLinks)
	paymentService := payment.NewService(
		[]payment.SubmissionSource{
			payment.NewOnboardingSource(submissionRepo),
			payment.NewLegacySource(legacyRepo),
		},
		notifyService,
		cfg.StripeWebhookSecret,
		loggerf,
	)
	paymentHandler := payment.NewHandler(paymentService, loggerf)

	onboardingService := onboarding.NewService(submissionRepo, uploadService, notifyService, checkout, cfg.SourceTag, loggerf)
	onboardingHandler := onboarding.NewHandler(onboardingService, loggerf)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
	})

	v1 := r.Group("/api/v1")
	{
		onboardingHandler.RegisterRoutes(v1)
		paymentHandler.RegisterRoutes(v1)

		internal := v1.Group("/internal")
		internal.Use(middleware.InternalTokenAuth(cfg.InternalToken))
		{
			notifyHandler.RegisterRoutes(internal)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
