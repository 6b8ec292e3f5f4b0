package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/pkg/rules"
)

type createRuleRequest struct {
	ActionPattern string     `json:"actionPattern" binding:"required"`
	Scope         string     `json:"scope"`
	Verdict       string     `json:"verdict"`
	CreatedBy     string     `json:"createdBy"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

type ruleResponse struct {
	ID            string     `json:"id"`
	ActionPattern string     `json:"actionPattern"`
	Scope         string     `json:"scope"`
	Verdict       string     `json:"verdict"`
	CreatedBy     string     `json:"createdBy"`
	ApprovalCount int        `json:"approvalCount"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toRuleResponse(r *ent.StandingRule) ruleResponse {
	return ruleResponse{
		ID:            r.ID,
		ActionPattern: r.ActionPattern,
		Scope:         string(r.Scope),
		Verdict:       string(r.Verdict),
		CreatedBy:     r.CreatedBy,
		ApprovalCount: r.ApprovalCount,
		ExpiresAt:     r.ExpiresAt,
		CreatedAt:     r.CreatedAt,
	}
}

// listRulesHandler handles GET /api/v1/rules.
func (s *Server) listRulesHandler(c *gin.Context) {
	rows, err := s.deps.Rules.ListRules(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}
	out := make([]ruleResponse, len(rows))
	for i, r := range rows {
		out[i] = toRuleResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"rules": out, "count": len(out)})
}

// createRuleHandler handles POST /api/v1/rules.
func (s *Server) createRuleHandler(c *gin.Context) {
	var req createRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "user"
	}
	created, err := s.deps.Rules.CreateRule(c.Request.Context(), rules.Spec{
		ActionPattern: req.ActionPattern,
		Scope:         req.Scope,
		Verdict:       req.Verdict,
		CreatedBy:     createdBy,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		abortBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toRuleResponse(created))
}

// deleteRuleHandler handles DELETE /api/v1/rules/:id.
func (s *Server) deleteRuleHandler(c *gin.Context) {
	if err := s.deps.Rules.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
