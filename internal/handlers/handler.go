package handlers

import (
	"time"

	"alerts_review/internal/logger"
	"alerts_review/internal/mw"
	"alerts_review/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger

	cacheTTL  time.Duration
	cache     *cache.Cache
	rateLimit rate.Limit
	rateBurst int
}

// Option tunes optional HTTP behaviour.
type Option func(*Handler)

// WithCache caches the case list for ttl; writes flush it.
func WithCache(ttl time.Duration) Option {
	return func(h *Handler) {
		if ttl > 0 {
			h.cacheTTL = ttl
			h.cache = mw.NewStore(ttl)
		}
	}
}

// WithRateLimit limits every client IP to perSecond requests with burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(h *Handler) {
		if perSecond > 0 && burst > 0 {
			h.rateLimit = rate.Limit(perSecond)
			h.rateBurst = burst
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), mw.RequestLogger(h.log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Review stream; browsers cannot set headers on upgrade so the token
	// travels in the query string.
	router.GET("/ws/cases/:case_id", h.wsReview)

	return router
}

func (h *Handler) limiter() []gin.HandlerFunc {
	if h.rateLimit <= 0 {
		return nil
	}
	return []gin.HandlerFunc{mw.RateLimiter(h.rateLimit, h.rateBurst)}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth", h.limiter()...)
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", append(h.limiter(), h.principalMiddleware)...)
	{
		h.registerCaseRoutes(api)
		h.registerActivityRoutes(api)
	}
}

func (h *Handler) registerCaseRoutes(api *gin.RouterGroup) {
	var (
		listMW  []gin.HandlerFunc
		groupMW []gin.HandlerFunc
	)
	if h.cache != nil {
		groupMW = append(groupMW, mw.FlushOnWrite(h.cache))
		listMW = append(listMW, mw.Cache(h.cache, h.cacheTTL))
	}

	cases := api.Group("/cases", groupMW...)
	{
		cases.GET("", append(listMW, h.listCases)...)
		cases.GET("/:case_id", h.getCase)
		cases.GET("/:case_id/snapshots", h.getSnapshots)
		cases.GET("/:case_id/review", h.getReview)
		// Body example: {"text":"Called the site, heater relit"}
		cases.POST("/:case_id/notes", h.addNote)
		// Body example: {"resolved_reason":"Heater replaced"}
		cases.POST("/:case_id/resolve", h.resolveCase)
		// Body example: {"reason":"Known sensor fault"}
		cases.POST("/:case_id/suppress", h.suppressCase)
	}
}

func (h *Handler) registerActivityRoutes(api *gin.RouterGroup) {
	api.GET("/activity", h.getActivity)
}
