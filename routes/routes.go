package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uni_dashboard/catalog"
	"uni_dashboard/config"
	"uni_dashboard/handlers"
	"uni_dashboard/middleware"
	"uni_dashboard/models"
	"uni_dashboard/web"
)

// NewRouter returns a gin engine with every route of the dashboard.
func NewRouter(cfg *config.Config, version string) (*gin.Engine, error) {
	if err := models.SetupValidator(); err != nil {
		return nil, errors.Wrap(err, "setting up validator")
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	if err := SetupRoutes(r, cfg, version); err != nil {
		return nil, err
	}
	return r, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, cfg *config.Config, version string) error {
	// Initialize handlers
	pageHandler, err := handlers.NewPageHandler(cfg)
	if err != nil {
		return err
	}
	attendanceHandler := handlers.NewAttendanceHandler()
	healthHandler := handlers.NewHealthHandler(version, cfg.Environment)

	r.Use(cors.New(corsConfig(cfg)))

	// Operational routes
	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.StaticFS("/static", web.Static())

	// Pages
	pages := r.Group("/")
	pages.Use(sessions.Sessions(cfg.SessionName, newSessionStore(cfg)), middleware.SessionStore())
	{
		pages.GET("/", pageHandler.Home)
		pages.GET("/resources/university", pageHandler.Resources(catalog.SectionUniversity))
		pages.GET("/resources/clubs", pageHandler.Resources(catalog.SectionClubs))
		pages.GET("/attendance", pageHandler.Attendance)

		// Attendance forms
		pages.POST("/attendance/subjects", pageHandler.AddSubject)
		pages.POST("/attendance/missed", pageHandler.SetMissed)
		pages.POST("/attendance/clear", pageHandler.ClearAll)
	}

	// JSON API
	api := r.Group("/api")
	api.Use(middleware.ErrorHandler(), middleware.QueryStore())
	{
		api.GET("/attendance", attendanceHandler.GetAttendance)
		api.POST("/attendance/subjects", attendanceHandler.CreateSubject)
		api.PUT("/attendance/subjects/missed", attendanceHandler.SetMissed)
		api.DELETE("/attendance/subjects", attendanceHandler.ClearSubjects)
	}
	return nil
}

func newSessionStore(cfg *config.Config) sessions.Store {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

func corsConfig(cfg *config.Config) cors.Config {
	conf := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = cfg.CORSAllowedOrigins
	}
	conf.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		middleware.RequestIDHeader,
	}
	conf.AllowMethods = []string{
		"GET",
		"POST",
		"PUT",
		"DELETE",
	}
	return conf
}
