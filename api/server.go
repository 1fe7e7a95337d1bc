// Package api serves the calculators over HTTP for the dashboard.
package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/etnz/sip"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultPlanBookKey is the store key of the saved plans.
const DefaultPlanBookKey = "savedPlans"

// Server holds the handlers dependencies.
type Server struct {
	store       sip.Store
	log         *zap.Logger
	planBookKey string

	// mu serializes the operations on calculator sessions and the plan book:
	// a session must not be used by two requests at once.
	mu sync.Mutex
}

// New returns a server persisting in 'store'.
func New(store sip.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{store: store, log: log, planBookKey: DefaultPlanBookKey}
}

// Router returns the gin engine serving the API, allowing cross origin calls from 'origins'.
func (s *Server) Router(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware(origins))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")
	plans := v1.Group("/goal-plans")
	plans.POST("/sip/calculate", s.CalculateSIP)
	plans.POST("/compute", s.ComputeGoal)
	plans.GET("/", s.ListPlans)
	plans.POST("/", s.SavePlan)
	plans.DELETE("/:id", s.DeletePlan)
	plans.PATCH("/:id/status", s.SetPlanStatus)

	calc := v1.Group("/calculators/:key")
	calc.GET("", s.GetCalculator)
	calc.POST("/recompute", s.Recompute)
	calc.PUT("/granularity", s.SetGranularity)
	calc.POST("/reset", s.Reset)
	calc.GET("/report", s.Report)

	v1.GET("/funds", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"funds": sip.Funds}) })
	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// defaultsFor returns the first use state of the calculator stored under key.
// Keys of goal planners start with "goal".
func defaultsFor(key string) sip.CalculatorState {
	if strings.HasPrefix(strings.ToLower(key), "goal") {
		return sip.DefaultGoalState()
	}
	return sip.DefaultState()
}

func (s *Server) session(key string) *sip.Session {
	return sip.NewSession(s.store, key, sip.WithLogger(s.log), sip.WithDefaults(defaultsFor(key)))
}
