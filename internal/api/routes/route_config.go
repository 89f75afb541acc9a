package routes

import (
	"digital-kuota-backend/internal/api/handlers"
	"digital-kuota-backend/internal/middleware"
	"digital-kuota-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	PaketHandler     handlers.PaketHandler
	TransaksiHandler handlers.TransaksiHandler
	MidtransHandler  handlers.MidtransHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Paket()
	c.Transaksi()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/topup", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.TopUp)
		user.Post("/topup/invoice", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTopUpInvoice)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Paket() {
	paket := c.App.Group("/api/v1/paket", c.Middleware.AuthMiddleware(c.JWTService))
	paket.Get("", c.PaketHandler.GetAllPaket)
	paket.Get("/:id", c.PaketHandler.GetPaketDetail)
}

func (c *Config) Transaksi() {
	transaksi := c.App.Group("/api/v1/transaksi", c.Middleware.AuthMiddleware(c.JWTService))
	transaksi.Post("", c.TransaksiHandler.Purchase)
	transaksi.Get("", c.TransaksiHandler.GetHistory)
	transaksi.Delete("/:id", c.TransaksiHandler.DeleteTransaksi)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
