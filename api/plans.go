package api

import (
	"net/http"

	"github.com/etnz/sip"
	"github.com/gin-gonic/gin"
)

// PlansResponse lists the saved plans with their summary.
type PlansResponse struct {
	Plans []sip.SavedPlan `json:"plans"`
	sip.PlanSummary
}

func (s *Server) openPlanBook(c *gin.Context) (*sip.PlanBook, bool) {
	b, err := sip.OpenPlanBook(s.store, s.planBookKey)
	if err != nil {
		s.log.Sugar().Errorw("open-plan-book failed", "error", err)
		writeError(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return b, true
}

// ListPlans handles GET /api/v1/goal-plans/.
func (s *Server) ListPlans(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.openPlanBook(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, PlansResponse{Plans: b.List(), PlanSummary: b.Summary()})
}

// SavePlan handles POST /api/v1/goal-plans/.
func (s *Server) SavePlan(c *gin.Context) {
	plan, ok := bindPlan(c, sip.DefaultGoalState().Plan)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.openPlanBook(c)
	if !ok {
		return
	}
	saved, err := b.Add(plan.Name, plan)
	if err != nil {
		writeComputeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// DeletePlan handles DELETE /api/v1/goal-plans/:id.
func (s *Server) DeletePlan(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.openPlanBook(c)
	if !ok {
		return
	}
	if err := b.Remove(c.Param("id")); err != nil {
		writeComputeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetPlanStatus handles PATCH /api/v1/goal-plans/:id/status.
func (s *Server) SetPlanStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	status, err := sip.ParsePlanStatus(req.Status)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.openPlanBook(c)
	if !ok {
		return
	}
	saved, err := b.SetStatus(c.Param("id"), status)
	if err != nil {
		writeComputeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
