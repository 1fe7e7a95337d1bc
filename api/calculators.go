package api

import (
	"net/http"
	"strconv"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"github.com/gin-gonic/gin"
)

// CalculatorResponse is a calculator state with its series.
type CalculatorResponse struct {
	Key    string               `json:"key"`
	State  sip.CalculatorState  `json:"state"`
	Series sip.ProjectionSeries `json:"series"`
}

func newCalculatorResponse(s *sip.Session) CalculatorResponse {
	return CalculatorResponse{Key: s.Key(), State: s.State(), Series: s.Series()}
}

// GetCalculator handles GET /api/v1/calculators/:key.
func (s *Server) GetCalculator(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, newCalculatorResponse(s.session(c.Param("key"))))
}

// Recompute handles POST /api/v1/calculators/:key/recompute.
func (s *Server) Recompute(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.session(c.Param("key"))
	plan, ok := bindPlan(c, session.State().Plan)
	if !ok {
		return
	}
	if _, err := session.Recompute(plan); err != nil {
		writeComputeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCalculatorResponse(session))
}

// SetGranularity handles PUT /api/v1/calculators/:key/granularity.
func (s *Server) SetGranularity(c *gin.Context) {
	var req struct {
		Granularity string `json:"granularity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	g, err := sip.ParseGranularity(req.Granularity)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.session(c.Param("key"))
	session.SetGranularity(g)
	c.JSON(http.StatusOK, newCalculatorResponse(session))
}

// Reset handles POST /api/v1/calculators/:key/reset.
func (s *Server) Reset(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.session(c.Param("key"))
	session.Reset()
	c.JSON(http.StatusOK, newCalculatorResponse(session))
}

// Report handles GET /api/v1/calculators/:key/report, an HTML rendering of the calculator.
func (s *Server) Report(c *gin.Context) {
	opts := renderer.ProjectionOptions{}
	opts.WithTax, _ = strconv.ParseBool(c.DefaultQuery("tax", "false"))
	opts.SkipSeries, _ = strconv.ParseBool(c.DefaultQuery("skip-series", "false"))

	s.mu.Lock()
	state := s.session(c.Param("key")).State()
	s.mu.Unlock()

	html, err := renderer.HTML(renderer.RenderProjection(state, opts))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
