package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/api/http/handler"
	"github.com/Deba69/BookList/internal/api/http/middleware"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

// Services bundles what the routes delegate to.
type Services struct {
	Auth     handler.AuthService
	Reviews  handler.ReviewService
	Catalog  handler.CatalogService
	Identity middleware.Identifier
	Store    handler.Pinger
}

// Options tunes the cross-cutting middleware.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Router builds the HTTP routing table.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new Router instance.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires middleware and routes into a fresh engine. Path parameters
// are matched on the raw path so an encoded "/" stays inside one segment.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.UseRawPath = true
	engine.UnescapePathValues = true

	logging := middleware.NewLogging(r.logger)
	engine.Use(
		gin.Recovery(),
		logging.Handle(),
		middleware.CORS(r.options.AllowedOrigins),
		middleware.Timeout(r.options.RequestTimeout),
	)

	requireAuth := middleware.NewAuthenticate(r.services.Identity, r.contextManager, r.logger).Handle()

	r.registerHealthRoutes(engine)
	r.registerAuthRoutes(engine, requireAuth)
	r.registerReviewRoutes(engine, requireAuth)
	r.registerCatalogRoutes(engine)

	return engine
}

func (r *Router) registerHealthRoutes(engine *gin.Engine) {
	h := handler.NewHealth(r.services.Store, r.logger)
	engine.GET("/healthz", h.Check)
}

func (r *Router) registerAuthRoutes(engine *gin.Engine, requireAuth gin.HandlerFunc) {
	h := handler.NewAuth(r.services.Auth, r.contextManager, r.logger)
	engine.POST("/signup", h.Signup)
	engine.POST("/login", h.Login)
	engine.GET("/me", requireAuth, h.Me)
	engine.POST("/logout", requireAuth, h.Logout)
}

func (r *Router) registerReviewRoutes(engine *gin.Engine, requireAuth gin.HandlerFunc) {
	h := handler.NewReview(r.services.Reviews, r.contextManager, r.logger)
	books := engine.Group("/books")
	books.POST("/average-ratings", h.AverageRatings)
	books.GET("/:bookKey/reviews", h.List)
	books.POST("/:bookKey/reviews", requireAuth, h.Add)
	books.DELETE("/:bookKey/reviews/:reviewId", requireAuth, h.Delete)
}

func (r *Router) registerCatalogRoutes(engine *gin.Engine) {
	h := handler.NewCatalog(r.services.Catalog, r.logger)
	catalog := engine.Group("/catalog")
	catalog.GET("/works/:workId", h.GetWork)
	catalog.GET("/subjects/:subject", h.ListSubject)
}
