package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/web"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/config"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

type BookingRepository interface {
	service.BookingRepository
	service.BookingCounter
}

// Repositories are the stores the handlers are built on.
type Repositories struct {
	Destinations service.DestinationRepository
	Bookings     BookingRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Destinations: repository.NewDestinationRepository(dao.NewDestinationDAO(db)),
		Bookings:     repository.NewBookingRepository(dao.NewBookingDAO(db)),
	}
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Auth   *service.AuthService

	sessions *middleware.Authenticator
}

func NewServer(conf *config.AppConfig, repos Repositories, revocations middleware.RevocationList) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.SetHTMLTemplate(web.MustTemplates())

	s := &Server{
		Config: conf,
		Router: engine,
		Auth: service.NewAuthService(service.AdminCredentials{
			Username: conf.Admin.Username,
			Password: conf.Admin.Password,
		}),
		sessions: middleware.NewAuthenticator(middleware.SessionOptions{
			SigningKey:   conf.Session.SigningKey,
			CookieName:   conf.Session.CookieName,
			TTL:          conf.Session.TTL,
			SecureCookie: conf.Session.SecureCookie,
		}, revocations),
	}

	s.MountMiddlewares()

	destinationSvc := service.NewDestinationService(repos.Destinations, repos.Bookings)
	destinationHandler := s.initDestinationHandler(destinationSvc)
	bookingHandler := s.initBookingHandler(repos, destinationSvc)
	adminHandler := s.initAdminHandler(destinationSvc)
	authHandler := s.initAuthHandler()
	s.MountHandlers(destinationHandler, bookingHandler, adminHandler, authHandler)

	return s
}

func (s *Server) initDestinationHandler(svc *service.DestinationService) *v1.DestinationHandler {
	handler := v1.NewDestinationHandler(svc)

	return handler
}

func (s *Server) initBookingHandler(repos Repositories, destinationSvc *service.DestinationService) *v1.BookingHandler {
	svc := service.NewBookingService(repos.Bookings, repos.Destinations)
	handler := v1.NewBookingHandler(svc, destinationSvc)

	return handler
}

func (s *Server) initAdminHandler(destinationSvc *service.DestinationService) *v1.AdminHandler {
	handler := v1.NewAdminHandler(destinationSvc)

	return handler
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	handler := v1.NewAuthHandler(s.Auth, s.sessions)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(response.SecureCookies(s.Config.Session.SecureCookie))
	s.Router.Use(s.sessions.LoadSession())

	if s.Config.Session.CSRFKey != "" {
		s.Router.Use(middleware.CSRF(s.Config.Session.CSRFKey, s.Config.Session.SecureCookie, func(ctx *gin.Context, err error) {
			response.RenderErr(ctx, response.ErrForbidden(err))
		}))
	}
}

func (s *Server) MountHandlers(destinationHandler *v1.DestinationHandler, bookingHandler *v1.BookingHandler, adminHandler *v1.AdminHandler, authHandler *v1.AuthHandler) {
	s.Router.GET("/", destinationHandler.HandleListDestinations)
	s.Router.GET("/destination/:id", destinationHandler.HandleGetDestination)
	s.Router.POST("/book/:id", bookingHandler.HandleBook)

	s.Router.GET("/admin/login", authHandler.HandleLoginForm)
	s.Router.POST("/admin/login", authHandler.HandleLogin)
	s.Router.GET("/admin/logout", authHandler.HandleLogout)

	admin := s.Router.Group("/admin", s.sessions.RequireAdmin())
	{
		admin.GET("", adminHandler.HandleDashboard)
		admin.GET("/destination/add", adminHandler.HandleNewDestination)
		admin.POST("/destination/add", adminHandler.HandleCreateDestination)
		admin.GET("/destination/edit/:id", adminHandler.HandleEditDestination)
		admin.POST("/destination/edit/:id", adminHandler.HandleUpdateDestination)
		admin.POST("/destination/delete/:id", adminHandler.HandleDeleteDestination)
		admin.GET("/bookings", bookingHandler.HandleListBookings)
		admin.POST("/booking/cancel/:id", bookingHandler.HandleCancelBooking)
	}

	s.Router.GET("/healthz", v1.HandleHealthcheck)

	s.Router.NoRoute(func(ctx *gin.Context) {
		response.RenderErr(ctx, response.ErrNotFound("page", "path", ctx.Request.URL.Path))
	})
}
