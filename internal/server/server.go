package server

import (
	"net/http"

	"sahl-bank-api/internal/catalog"
	"sahl-bank-api/internal/config"
	"sahl-bank-api/internal/handlers"
	"sahl-bank-api/internal/middleware"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath serves Prometheus metrics outside the tenant-authenticated API.
const MetricsPath = "/metrics"

// New assembles the Echo application: middleware chain, declarative route
// table under the configured base path, and the metrics endpoint. Tenant auth
// is global middleware, so it runs ahead of the router's 404 fallback; the
// CORS middleware answers preflight requests with 204 before auth is reached.
func New(
	cfg *config.Config,
	credentials *catalog.CredentialStore,
	sessionService services.SessionServiceInterface,
	tokenService services.TokenServiceInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.HTTPMetrics())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.ClientIDHeader, middleware.ClientSecretHeader},
	}))
	e.Use(middleware.ClientAuth(credentials, MetricsPath))
	e.Use(middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET(MetricsPath, echo.WrapHandler(promhttp.Handler()))

	infoHandler := handlers.NewInfoHandler(cfg.Provider)
	linkHandler := handlers.NewLinkHandler(tokenService)
	itemHandler := handlers.NewItemHandler(tokenService)
	authHandler := handlers.NewAuthHandler(sessionService)
	transactionHandler := handlers.NewTransactionHandler(sessionService)
	statementHandler := handlers.NewStatementHandler(sessionService)

	api := e.Group(cfg.Server.BasePath)
	api.GET("/info", infoHandler.GetInfo)
	api.POST("/link/token/create", linkHandler.CreateLinkToken)
	api.POST("/item/public_token/exchange", itemHandler.ExchangePublicToken)
	api.POST("/auth/get", authHandler.GetAuth)
	api.POST("/transactions/get", transactionHandler.GetTransactions)
	api.POST("/statements/get", statementHandler.GetStatements)

	return e
}

// NewDefault assembles the application with the built-in catalog and the
// unseeded production generators.
func NewDefault(cfg *config.Config) *echo.Echo {
	cat := catalog.NewDefault()
	sessionService := services.NewSessionService(
		cat,
		services.NewTransactionGenerator(),
		services.NewStatementGenerator(cfg.Provider.PDFBaseURL),
	)

	return New(
		cfg,
		catalog.NewCredentialStore(cfg.Security.Tenants),
		sessionService,
		services.NewTokenService(),
	)
}
