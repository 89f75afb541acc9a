package config

import (
	"digital-kuota-backend/internal/api/handlers"
	"digital-kuota-backend/internal/api/routes"
	"digital-kuota-backend/internal/middleware"
	"digital-kuota-backend/internal/utils"
	"digital-kuota-backend/internal/utils/mailing"
	"digital-kuota-backend/internal/utils/restdb"
	"digital-kuota-backend/internal/utils/storage"
	"digital-kuota-backend/pkg/jwt"
	"digital-kuota-backend/pkg/midtrans"
	"digital-kuota-backend/pkg/paket"
	"digital-kuota-backend/pkg/session"
	"digital-kuota-backend/pkg/transaksi"
	"digital-kuota-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(store *restdb.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	sessionStore := session.NewFileStore(utils.GetConfig("SESSION_FILE"))

	// Repository
	userRepository := user.NewUserRepository(store)
	paketRepository := paket.NewPaketRepository(store)
	transaksiRepository := transaksi.NewTransaksiRepository(store)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, sessionStore, s3)
	paketService := paket.NewPaketService(paketRepository)
	transaksiService := transaksi.NewTransaksiService(
		transaksiRepository,
		paketRepository,
		userRepository,
		sessionStore,
		mailing.SendPurchaseReceipt,
	)
	midtransService := midtrans.NewMidtransService(userService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	paketHandler := handlers.NewPaketHandler(paketService)
	transaksiHandler := handlers.NewTransaksiHandler(transaksiService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		PaketHandler:     paketHandler,
		TransaksiHandler: transaksiHandler,
		MidtransHandler:  midtransHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
