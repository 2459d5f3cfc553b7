package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/storefront/docs"
	"github.com/99minutos/storefront/internal/api/handler"
	"github.com/99minutos/storefront/internal/api/middleware"
	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

// Deps are the services and probes served by the router.
type Deps struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Cart    ports.CartService
	Orders  ports.OrderService
	Checks  map[string]handler.Check
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(middleware.Metrics(StatusOf))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	authHandler := handler.NewAuthHandler(deps.Auth)
	productHandler := handler.NewProductHandler(deps.Catalog)
	cartHandler := handler.NewCartHandler(deps.Cart)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	healthHandler := handler.NewHealthHandler(deps.Checks)

	authenticated := middleware.Auth(deps.Auth)
	verified := middleware.RequireVerified()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify-email", authHandler.VerifyEmail)
	auth.POST("/resend-verification", authHandler.ResendVerification)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", authHandler.Me, authenticated)
	auth.PUT("/profile", authHandler.UpdateProfile, authenticated)
	auth.PUT("/change-password", authHandler.ChangePassword, authenticated)

	// --- Catalog routes ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/slug/:slug", productHandler.BySlug)
	e.POST("/api/products", productHandler.Create, authenticated, middleware.RBAC(domain.RoleAdmin))
	e.GET("/api/categories", productHandler.Categories)

	// --- Cart routes (verified users only) ---
	cart := e.Group("/api/cart", authenticated, verified)
	cart.GET("", cartHandler.List)
	cart.POST("", cartHandler.Add)
	cart.DELETE("", cartHandler.Clear)
	cart.PUT("/:id", cartHandler.Update)
	cart.DELETE("/:id", cartHandler.Remove)

	// --- Order routes (verified users only) ---
	orders := e.Group("/api/orders", authenticated, verified)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
