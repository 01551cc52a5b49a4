package wire

import (
	"net/http"

	"github.com/Zonda001/AirportAPI/internal/adaptor"
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/kafka"
	"github.com/Zonda001/AirportAPI/internal/usecase"
	"github.com/Zonda001/AirportAPI/pkg/middleware"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(repo *repository.Repository, producer *kafka.Producer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, producer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	if config.Redis.RateLimitEnable {
		rdb := middleware.NewRedisClient(config.Redis, logger)
		r.Use(middleware.RateLimit(config.Redis, rdb, logger))
	}

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireCrew(r, handler.Crew)
	wireAirport(r, handler.Airport)
	wireRoute(r, handler.Route)
	wireAirplane(r, handler.AirplaneType, handler.Airplane)
	wireFlight(r, handler.Flight)
	wireOrder(r, handler.Order, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
