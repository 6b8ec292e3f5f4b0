package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/queue"
)

// createJobRequest is the POST /api/v1/jobs body.
type createJobRequest struct {
	ConversationID  string         `json:"conversationId" binding:"required"`
	Content         map[string]any `json:"content" binding:"required"`
	Priority        string         `json:"priority"`
	Source          string         `json:"source"`
	SourceMessageID string         `json:"sourceMessageId"`
	DedupKey        string         `json:"dedupKey"`
	Metadata        map[string]any `json:"metadata"`
}

// approvalRequest carries the nonce issued at suspension time.
type approvalRequest struct {
	Nonce  string `json:"nonce" binding:"required"`
	Reason string `json:"reason"`
}

// jobResponse is the external job shape.
type jobResponse struct {
	ID             string                   `json:"id"`
	ConversationID string                   `json:"conversationId"`
	Status         string                   `json:"status"`
	Priority       string                   `json:"priority"`
	Plan           *models.Plan             `json:"plan,omitempty"`
	Validation     *models.ValidationResult `json:"validation,omitempty"`
	Result         *models.JobResult        `json:"result,omitempty"`
	Error          *models.CodedError       `json:"error,omitempty"`
	Attempts       int                      `json:"attempts"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

func toJobResponse(j *ent.Job) jobResponse {
	return jobResponse{
		ID:             j.ID,
		ConversationID: j.ConversationID,
		Status:         string(j.Status),
		Priority:       string(j.Priority),
		Plan:           j.Plan,
		Validation:     j.Validation,
		Result:         j.Result,
		Error:          j.Error,
		Attempts:       j.Attempts,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

// createJobHandler handles POST /api/v1/jobs.
func (s *Server) createJobHandler(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	created, err := s.deps.Queue.Enqueue(c.Request.Context(), queue.EnqueueInput{
		ConversationID:  req.ConversationID,
		Content:         req.Content,
		Priority:        models.Priority(req.Priority),
		Source:          models.JobSource(req.Source),
		SourceMessageID: req.SourceMessageID,
		DedupKey:        req.DedupKey,
		Metadata:        req.Metadata,
	})
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, toJobResponse(created))
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	j, err := s.deps.Queue.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(j))
}

// listJobsHandler handles GET /api/v1/jobs. Filters: status,
// conversation_id; newest first, bounded by limit (default 50, max 200).
func (s *Server) listJobsHandler(c *gin.Context) {
	q := s.deps.Client.Job.Query()

	if v := c.Query("status"); v != "" {
		if !models.JobStatus(v).Valid() {
			abortBadRequest(c, "invalid status: "+v)
			return
		}
		q = q.Where(job.StatusEQ(job.Status(v)))
	}
	if v := c.Query("conversation_id"); v != "" {
		q = q.Where(job.ConversationIDEQ(v))
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			abortBadRequest(c, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	rows, err := q.Order(ent.Desc(job.FieldCreatedAt)).Limit(limit).All(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}

	out := make([]jobResponse, len(rows))
	for i, j := range rows {
		out[i] = toJobResponse(j)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out, "count": len(out)})
}

// approveJobHandler handles POST /api/v1/jobs/:id/approve. A valid
// nonce moves the suspended job back to executing; any worker resumes
// it. The response may carry a standing-rule suggestion when the user
// keeps approving the same action category.
func (s *Server) approveJobHandler(c *gin.Context) {
	j, _, ok := s.validatedApproval(c)
	if !ok {
		return
	}

	if err := s.deps.Queue.Transition(c.Request.Context(), j.ID,
		models.JobAwaitingApproval, models.JobExecuting); err != nil {
		abortError(c, err)
		return
	}

	var suggestions []string
	if s.deps.Rules != nil && j.Plan != nil {
		for _, step := range j.Plan.Steps {
			action := step.Gear + ":" + step.Action
			if s.deps.Rules.SuggestRule(action) {
				suggestions = append(suggestions, step.Gear+":*")
			}
		}
	}

	resp := gin.H{"id": j.ID, "status": string(models.JobExecuting)}
	if len(suggestions) > 0 {
		resp["ruleSuggestions"] = suggestions
	}
	c.JSON(http.StatusOK, resp)
}

// denyJobHandler handles POST /api/v1/jobs/:id/deny.
func (s *Server) denyJobHandler(c *gin.Context) {
	j, req, ok := s.validatedApproval(c)
	if !ok {
		return
	}

	message := "plan denied by user"
	if req.Reason != "" {
		message = "plan denied by user: " + req.Reason
	}
	if err := s.deps.Queue.Fail(c.Request.Context(), j.ID,
		models.NewCodedError(models.CodeApprovalDenied, message)); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": j.ID, "status": string(models.JobFailed)})
}

// validatedApproval loads the job and checks the decision preconditions:
// suspended status, matching nonce, nonce not expired.
func (s *Server) validatedApproval(c *gin.Context) (*ent.Job, *approvalRequest, bool) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return nil, nil, false
	}

	j, err := s.deps.Queue.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortError(c, err)
		return nil, nil, false
	}
	if models.JobStatus(j.Status) != models.JobAwaitingApproval {
		c.AbortWithStatusJSON(http.StatusConflict, errorBody{
			Code:    models.CodeConflict,
			Message: "job is not awaiting approval",
		})
		return nil, nil, false
	}

	nonce, _ := j.Metadata["approvalNonce"].(string)
	if nonce == "" || nonce != req.Nonce {
		c.AbortWithStatusJSON(http.StatusForbidden, errorBody{
			Code:    models.CodeApprovalDenied,
			Message: "approval nonce does not match",
		})
		return nil, nil, false
	}

	if raw, _ := j.Metadata["approvalNonceExpiresAt"].(string); raw != "" {
		expiresAt, err := time.Parse(time.RFC3339, raw)
		if err == nil && expiresAt.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusGone, errorBody{
				Code:    models.CodeApprovalTimeout,
				Message: "approval request has expired",
			})
			return nil, nil, false
		}
	}
	return j, &req, true
}

// cancelJobHandler handles POST /api/v1/jobs/:id/cancel. The terminal
// status is written first; the in-flight context (if processing on this
// node) is cancelled best-effort afterwards.
func (s *Server) cancelJobHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.deps.Queue.Cancel(c.Request.Context(), id); err != nil {
		abortError(c, err)
		return
	}
	if s.deps.Pool != nil {
		s.deps.Pool.CancelJob(id)
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": string(models.JobCancelled)})
}
