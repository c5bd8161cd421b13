package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/iudanet/homelabster/internal/config"
	"github.com/iudanet/homelabster/internal/server/auth"
	"github.com/iudanet/homelabster/internal/server/handlers"
	"github.com/iudanet/homelabster/internal/server/middleware"
	"github.com/iudanet/homelabster/internal/server/storage"
)

// shutdownTimeout время на graceful shutdown HTTP сервера
const shutdownTimeout = 10 * time.Second

// Server собирает все зависимости HTTP сервера дашборда
type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	store   storage.DocumentStore
	images  storage.ImageStore
	auth    *auth.Service
	version string
}

// New создает новый сервер с явно переданными зависимостями
func New(
	logger *slog.Logger,
	cfg *config.Config,
	store storage.DocumentStore,
	images storage.ImageStore,
	authService *auth.Service,
	version string,
) *Server {
	return &Server{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		images:  images,
		auth:    authService,
		version: version,
	}
}

// Router собирает все маршруты и middleware.
// Чтение плиток, настроек и иконок публичное, мутации и загрузка
// файлов закрыты auth middleware.
func (s *Server) Router() http.Handler {
	authHandler := handlers.NewAuthHandler(s.logger, s.auth, s.cfg.Production)
	tilesHandler := handlers.NewTilesHandler(s.logger, s.store)
	settingsHandler := handlers.NewSettingsHandler(s.logger, s.store)
	imagesHandler := handlers.NewImagesHandler(s.logger, s.images)
	healthHandler := handlers.NewHealthHandler(s.logger, s.version)

	router := chi.NewRouter()

	// Глобальные middleware
	router.Use(middleware.RecoveryMiddleware(s.logger))
	router.Use(middleware.LoggingWithSkip(s.logger, []string{"/api/health"}))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Публичное чтение: дашборд доступен без входа
		r.Get("/tiles", tilesHandler.List)
		r.Get("/tiles/{id}", tilesHandler.Get)
		r.Get("/settings", settingsHandler.Get)
		r.Get("/images/{filename}", imagesHandler.Serve)

		// Мутации только для аутентифицированного администратора
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(s.logger, s.auth))

			r.Post("/tiles", tilesHandler.Create)
			r.Put("/tiles/{id}", tilesHandler.Update)
			r.Delete("/tiles/{id}", tilesHandler.Delete)
			r.Put("/settings", settingsHandler.Update)
			r.Post("/upload", imagesHandler.Upload)
		})
	})

	return router
}

// Run запускает HTTP сервер и останавливает его при отмене контекста
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
