package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/sefazor/recipeai-backend/internal/config"
	"github.com/sefazor/recipeai-backend/internal/handler"
	"github.com/sefazor/recipeai-backend/internal/middleware"
	"github.com/sefazor/recipeai-backend/internal/repository"
	"github.com/sefazor/recipeai-backend/internal/service"
	"github.com/sefazor/recipeai-backend/pkg/ai"
	"github.com/sefazor/recipeai-backend/pkg/database"
	"github.com/sefazor/recipeai-backend/pkg/email"
	jwtPkg "github.com/sefazor/recipeai-backend/pkg/jwt"
	"github.com/sefazor/recipeai-backend/pkg/logger"
	"github.com/sefazor/recipeai-backend/pkg/meeting"
	"github.com/sefazor/recipeai-backend/pkg/payment"
	"github.com/sefazor/recipeai-backend/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger := logger.New()
	defer zapLogger.Sync()

	// Database
	db := database.NewDatabase(cfg.DatabaseURL)
	if err := database.RunMigrations(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	packageRepo := repository.NewCreditPackageRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// Sağlayıcı istemcileri — hepsi main'de kurulur, global state yok.
	jwtManager := jwtPkg.NewManager(cfg.JWTSecret)

	zoomClient := meeting.NewZoomClient(meeting.Credentials{
		AccountID:    cfg.Zoom.AccountID,
		ClientID:     cfg.Zoom.ClientID,
		ClientSecret: cfg.Zoom.ClientSecret,
	})

	mailer, err := newMailer(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize email sender", zap.Error(err))
	}

	bedrockClient := ai.NewBedrockClient(cfg.Bedrock.Region, cfg.Bedrock.ModelID, cfg.Bedrock.BearerToken)
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.FrontendURL)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	creditService := service.NewCreditService(creditRepo, zapLogger)
	recipeService := service.NewRecipeService(bedrockClient, creditService, zapLogger)
	bookingService := service.NewBookingService(bookingRepo, zoomClient, mailer, zapLogger)
	paymentService := service.NewPaymentService(stripeService, packageRepo, txRepo, creditService, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	creditHandler := handler.NewCreditHandler(creditService, zapLogger)
	recipeHandler := handler.NewRecipeHandler(recipeService, validator)
	bookingHandler := handler.NewBookingHandler(bookingService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService, cfg.Stripe.WebhookSecret, zapLogger)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Stripe webhook (public)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)
	api.Get("/payments/packages", paymentHandler.GetCreditPackages)

	// Protected routes
	api.Use(middleware.AuthMiddleware(jwtManager))
	{
		api.Get("/credits", creditHandler.GetBalance)
		api.Post("/recipes/generate", recipeHandler.GenerateRecipe)

		bookings := api.Group("/bookings")
		bookings.Post("/", bookingHandler.CreateBooking)
		bookings.Get("/", bookingHandler.GetMyBookings)
		bookings.Put("/:id/reschedule", bookingHandler.RescheduleBooking)
		bookings.Post("/:id/cancel", bookingHandler.CancelBooking)

		payments := api.Group("/payments")
		payments.Post("/checkout/:credits", paymentHandler.CreateCheckoutSession)
		payments.Get("/history", paymentHandler.GetPurchaseHistory)
	}

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}

// newMailer yapılandırmaya göre Resend ya da SES istemcisi kurar.
func newMailer(cfg *config.Config, zapLogger *zap.Logger) (email.Sender, error) {
	if cfg.Email.Provider == "ses" {
		return email.NewSESService(email.SESConfig{
			Region:          cfg.Email.SESRegion,
			FromAddress:     cfg.Email.FromAddress,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		}, zapLogger)
	}
	return email.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, zapLogger), nil
}
