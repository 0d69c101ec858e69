package main

import (
	"log"

	"triethoc/config"
	"triethoc/database"
	authRoutes "triethoc/routers/authRoutes"
	badgeRoutes "triethoc/routers/badgeRoutes"
	blogRoutes "triethoc/routers/blogRoutes"
	courseRoutes "triethoc/routers/courseRoutes"
	gameRoutes "triethoc/routers/gameRoutes"
	quizRoutes "triethoc/routers/quizRoutes"
	userRoutes "triethoc/routers/userRoutes"
	"triethoc/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	blogRoutes.SetupBlogRoutes(app)
	badgeRoutes.SetupBadgeRoutes(app)
	gameRoutes.SetupGameRoutes(app)

	utils.StartStreakScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
