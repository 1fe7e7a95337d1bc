package api

import (
	"net/http"

	"github.com/etnz/sip"
	"github.com/gin-gonic/gin"
)

// SIPResponse is the result of the SIP calculator, amounts as plain numbers.
type SIPResponse struct {
	MaturityValue   float64 `json:"maturityValue"`
	TotalInvestment float64 `json:"totalInvestment"`
	WealthGained    float64 `json:"wealthGained"`
	TotalReturn     float64 `json:"totalReturn"`
}

// GoalResponse is the result of the goal calculator, amounts as plain numbers.
type GoalResponse struct {
	RequiredMonthlySIP float64 `json:"RequiredMonthlySIP"`
	TotalInvestment    float64 `json:"totalInvestment"`
	WealthGained       float64 `json:"wealthGained"`
}

// CalculateSIP handles POST /api/v1/goal-plans/sip/calculate.
func (s *Server) CalculateSIP(c *gin.Context) {
	base := sip.DefaultState().Plan
	plan, ok := bindPlan(c, base)
	if !ok {
		return
	}
	plan.Mode = sip.SIP
	_, res, err := sip.Project(plan)
	if err != nil {
		writeComputeError(c, err)
		return
	}
	c.JSON(http.StatusOK, SIPResponse{
		MaturityValue:   res.MaturityValue.InexactFloat64(),
		TotalInvestment: res.TotalContribution.InexactFloat64(),
		WealthGained:    res.WealthGained.InexactFloat64(),
		TotalReturn:     res.TotalReturnPercent.InexactFloat64(),
	})
}

// ComputeGoal handles POST /api/v1/goal-plans/compute.
func (s *Server) ComputeGoal(c *gin.Context) {
	base := sip.DefaultGoalState().Plan
	plan, ok := bindPlan(c, base)
	if !ok {
		return
	}
	plan.Mode = sip.Goal
	plan, res, err := sip.Project(plan)
	if err != nil {
		writeComputeError(c, err)
		return
	}
	c.JSON(http.StatusOK, GoalResponse{
		RequiredMonthlySIP: plan.PeriodicAmount.InexactFloat64(),
		TotalInvestment:    res.TotalContribution.InexactFloat64(),
		WealthGained:       res.WealthGained.InexactFloat64(),
	})
}

// bindPlan decodes a planRequest body on top of 'base', writing the error response if any.
func bindPlan(c *gin.Context, base sip.ContributionPlan) (sip.ContributionPlan, bool) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return base, false
	}
	plan, err := req.plan(base)
	if err != nil {
		writeComputeError(c, err)
		return base, false
	}
	return plan, true
}
