package main

import (
	"log"
	"os"
	"time"

	"github.com/Arjunnair2005/dasG/handlers/auth"
	"github.com/Arjunnair2005/dasG/handlers/payments"
	"github.com/Arjunnair2005/dasG/handlers/stats"
	"github.com/Arjunnair2005/dasG/handlers/students"
	"github.com/Arjunnair2005/dasG/migrations"
	"github.com/Arjunnair2005/dasG/seed"
	"github.com/Arjunnair2005/dasG/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found or error loading .env file:", err)
    }
}

func main() {
    r := gin.Default()

    r.Use(cors.New(cors.Config{
        AllowAllOrigins: true,
        AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
        AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
        ExposeHeaders:   []string{"Content-Length"},
        MaxAge:          12 * time.Hour,
    }))

    dbPath := os.Getenv("DB_PATH")
    if dbPath == "" {
        dbPath = "feemaster.db"
    }

    db, err := utils.Connect(dbPath)
    if err != nil {
        log.Fatalf("Failed to connect to database: %v", err)
    }

    if err := migrations.Run(db); err != nil {
        log.Fatalf("Failed to migrate database: %v", err)
    }

    // Seed Initial Data
    if err := seed.Run(db); err != nil {
        log.Fatalf("Failed to seed initial data: %v", err)
    }

    authHandler := auth.NewHandler(db)
    studentsHandler := students.NewHandler(db)
    paymentsHandler := payments.NewHandler(db)
    statsHandler := stats.NewHandler(db)

    api := r.Group("/api")
    {
        api.POST("/login", authHandler.Login)
        api.GET("/students", studentsHandler.List)
        api.GET("/students/:roll_no", studentsHandler.Detail)
        api.POST("/payments", paymentsHandler.Record)
        api.GET("/stats", statsHandler.Get)
        api.GET("/recent-payments", paymentsHandler.Recent)
    }

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    if err := r.Run(":" + port); err != nil {
        log.Fatalf("Failed to run server: %v", err)
    }
}
