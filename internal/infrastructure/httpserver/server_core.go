package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
	customMiddleware "github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

// ServerDeps lists the services behind the routes. RateLimiterService is nil
// when redis is disabled.
type ServerDeps struct {
	AttendanceService  ports.AttendanceService
	LeaveService       ports.LeaveService
	TimeslipService    ports.TimeslipService
	MessageService     ports.MessageService
	ReferenceService   ports.ReferenceService
	CacheService       ports.CacheService
	AuthService        ports.AuthService
	RateLimiterService ports.RateLimiterService
	HealthCheckers     []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	attendanceSvc  ports.AttendanceService
	leaveSvc       ports.LeaveService
	timeslipSvc    ports.TimeslipService
	messageSvc     ports.MessageService
	referenceSvc   ports.ReferenceService
	cacheSvc       ports.CacheService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{}

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		attendanceSvc:  deps.AttendanceService,
		leaveSvc:       deps.LeaveService,
		timeslipSvc:    deps.TimeslipService,
		messageSvc:     deps.MessageService,
		referenceSvc:   deps.ReferenceService,
		cacheSvc:       deps.CacheService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			deps.RateLimiterService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
