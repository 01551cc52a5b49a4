// main.go
package main

import (
	"log"

	"github.com/Zonda001/AirportAPI/cmd"
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/kafka"
	"github.com/Zonda001/AirportAPI/internal/wire"
	"github.com/Zonda001/AirportAPI/pkg/database"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Kafka producer for order events (nil when no brokers configured)
	producer := kafka.NewProducer(config.Kafka, logger)
	if producer != nil {
		defer producer.Close()
		logger.Info("Kafka producer enabled", zap.Strings("brokers", config.Kafka.Brokers))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, producer, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
