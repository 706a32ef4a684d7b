package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pkl/config"
	"pkl/database"
	authRoutes "pkl/routers/authRoutes"
	katalogRoutes "pkl/routers/katalogRoutes"
	pendaftaranRoutes "pkl/routers/pendaftaranRoutes"
	penilaianRoutes "pkl/routers/penilaianRoutes"
	"pkl/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded documents
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	katalogRoutes.SetupKatalogRoutes(app)
	pendaftaranRoutes.SetupPendaftaranRoutes(app)
	penilaianRoutes.SetupPenilaianRoutes(app)

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
