package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/contentflow/backlog-api/configs"
	"github.com/contentflow/backlog-api/internal/agent"
	"github.com/contentflow/backlog-api/internal/api/handlers"
	"github.com/contentflow/backlog-api/internal/database"
	job "github.com/contentflow/backlog-api/internal/jobs"
	"github.com/contentflow/backlog-api/internal/queue"
	"github.com/contentflow/backlog-api/internal/repository"
	"github.com/contentflow/backlog-api/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	backlogRepo := repository.NewBacklogRepository(db)

	backlogService := service.NewBacklogService(backlogRepo)
	agentClient := agent.NewClient(cfg.AgentURL)
	orchestrationService := service.NewOrchestrationService(agentClient, backlogService)

	backlog := handlers.NewBacklogHandler(backlogService)
	app.Post("/backlog", backlog.CreateItem)
	app.Get("/backlog", backlog.ListItems)
	app.Get("/backlog/:id", backlog.GetItem)
	app.Patch("/backlog/:id", backlog.UpdateItem)

	orchestration := handlers.NewOrchestrationHandler(orchestrationService)
	app.Post("/orchestrations/weekly-content", orchestration.GenerateWeeklyContent)

	// cron jobs
	publishSweepJob := job.NewPublishSweepJob(backlogRepo, client)

	// queue
	queueW := queue.NewQueue(backlogRepo)

	c := cron.New()
	c.AddFunc("@every 00h05m00s", publishSweepJob.Sweep)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishItem, queueW.HandlePublishItemTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
