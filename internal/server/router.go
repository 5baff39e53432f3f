package server

import (
	"log/slog"
	"net"
	"net/http"

	"cdf-insights/internal/config"
	"cdf-insights/internal/handlers"
	"cdf-insights/internal/middleware"
	"cdf-insights/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the HTTP layer needs. DB and Seeder are
// nil when the dataset is not served from a database.
type Dependencies struct {
	Config     *config.Config
	DB         *gorm.DB
	Allocation services.AllocationServiceInterface
	Export     services.ExportServiceInterface
	Tokens     services.TokenServiceInterface
	Seeder     services.DatasetSeederInterface
	Limiter    *middleware.VisitorLimiter
}

// NewRouter builds the echo instance with middleware and every route mounted
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.IPExtractor = ipExtractor(deps.Config.Server.TrustedProxies)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.Config.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{
			echo.HeaderContentDisposition,
			middleware.TraceIDHeader,
			handlers.HeaderRecordCount,
		},
	}))
	if deps.Limiter != nil {
		e.Use(middleware.RateLimiter(deps.Limiter))
	}

	health := handlers.NewHealthCheckHandler(deps.DB, deps.Allocation)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	allocation := handlers.NewAllocationHandler(deps.Allocation, deps.Export)
	allocation.RegisterRoutes(api.Group("/cdf"))

	admin := api.Group("/cdf/admin", middleware.RequireAuth(deps.Tokens), middleware.RequireAdmin())
	handlers.NewAdminHandler(deps.Allocation).RegisterRoutes(admin)

	if deps.Config.IsDevelopment() {
		dev := handlers.NewDevHandler(deps.Seeder, deps.Allocation)
		api.POST("/dev/synthetic", dev.GenerateSyntheticData)
	}

	return e
}

// ipExtractor reads X-Forwarded-For only behind the given proxy ranges.
// Without any, the peer address is the client.
func ipExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			slog.Warn("ignoring invalid trusted proxy range", "cidr", cidr, "error", err)
			continue
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}
