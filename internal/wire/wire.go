package wire

import (
	"net/http"

	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/cache"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/mailer"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	catalogCache cache.CatalogCache,
	mail mailer.Sender,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, catalogCache, mail, logger)
	handler := adaptor.NewHandler(service, config.Payment.WebhookSecret, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireVenue(r, handler.Venue)
	wireBooking(r, handler.Booking, logger)
	wireTableBooking(r, handler.TableBooking, logger)
	wirePayment(r, handler.Payment, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
