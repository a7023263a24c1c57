package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/biolink/api/internal/config"
	"github.com/biolink/api/internal/database"
	"github.com/biolink/api/internal/handler"
	"github.com/biolink/api/internal/jobs"
	"github.com/biolink/api/internal/middleware"
	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/repository"
	"github.com/biolink/api/internal/service"
	"github.com/biolink/api/pkg/jwt"
)

// tokenIssuer adapts the JWT service to the auth service's issuer interface.
type tokenIssuer struct {
	jwt *jwt.Service
}

func (t tokenIssuer) Generate(claims model.TokenClaims) (string, error) {
	return t.jwt.Sign(claims.UserID, claims.Email, claims.Username)
}

// buildJWTService loads the configured signing keys. In development an
// ephemeral key pair is generated when no key files are configured, so
// tokens do not survive a restart.
func buildJWTService(cfg *config.Config) (*jwt.Service, error) {
	if cfg.JWT.PrivateKeyPath == "" && cfg.JWT.PublicKeyPath == "" && cfg.IsDevelopment() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, err
		}
		slog.Warn("no JWT keys configured, using ephemeral signing key")
		return jwt.NewServiceWithKey(key, cfg.JWT.Issuer, time.Duration(cfg.JWT.ExpirationMins)*time.Minute), nil
	}
	return jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
}

func main() {
	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	jwtService, err := buildJWTService(cfg)
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	graphRepo := repository.NewGraphRepository(db)
	metaRepo := repository.NewMetaRepository(db)

	// Services
	authService := service.NewAuthService(service.AuthServiceConfig{
		AccountRepo:         accountRepo,
		Tokens:              tokenIssuer{jwt: jwtService},
		AllowedEmailDomains: cfg.Registration.AllowedEmailDomains,
	})
	graphService := service.NewGraphService(service.GraphServiceConfig{
		GraphRepo:   graphRepo,
		AccountRepo: accountRepo,
	})
	profileService := service.NewProfileService(service.ProfileServiceConfig{
		ProfileRepo: accountRepo,
		MetaRepo:    metaRepo,
	})
	leaderboardService := service.NewLeaderboardService(service.LeaderboardServiceConfig{
		AccountRepo: accountRepo,
		MetaRepo:    metaRepo,
	})

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, graphService)
	followHandler := handler.NewFollowHandler(graphService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)

	// Auth endpoints (protected)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Own profile (protected)
	mux.Handle("GET /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.GetOwn)))
	mux.Handle("PATCH /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Update)))

	// Public profiles; a signed-in viewer gets their follow state annotated
	mux.Handle("GET /v1/profiles/{username}", optionalAuth(http.HandlerFunc(profileHandler.Get)))
	mux.HandleFunc("POST /v1/profiles/{username}/links/{index}/click", profileHandler.ClickLink)

	// Follow graph (protected)
	mux.Handle("POST /v1/users/{userId}/follow", authMiddleware(http.HandlerFunc(followHandler.Toggle)))

	// Leaderboards and site stats (public)
	mux.HandleFunc("GET /v1/leaderboard/followed", leaderboardHandler.MostFollowed)
	mux.HandleFunc("GET /v1/leaderboard/viewed", leaderboardHandler.MostViewed)
	mux.HandleFunc("GET /v1/leaderboard/trending", leaderboardHandler.Trending)
	mux.HandleFunc("GET /v1/stats", leaderboardHandler.Stats)

	// Global middleware
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Background jobs
	viewsResetJob := jobs.NewViewsResetProcessor(metaRepo)
	viewsResetJob.Start()
	defer viewsResetJob.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
