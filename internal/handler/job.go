package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

// PostJob creates a job posting owned by the calling HR user.
func (h *Handler) PostJob(c *gin.Context) {
	var req model.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	claims := h.GetClaimsFromContext(c)
	job := &model.Job{
		HRID:               claims.UserID,
		Title:              req.Title,
		Description:        req.Description,
		SkillsRequired:     req.SkillsRequired,
		ExperienceRequired: req.ExperienceRequired,
		Location:           req.Location,
	}

	jobID, err := h.Repository.CreateJob(c.Request.Context(), job)
	if err != nil {
		h.repoError(c, err, "job create")
		return
	}
	job.JobID = jobID
	response.Created(c, job)
}

// ListJobs returns open postings, paginated, with an optional search term.
func (h *Handler) ListJobs(c *gin.Context) {
	var query model.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	offset := (query.Page - 1) * query.PageSize
	jobs, total, err := h.Repository.ListJobs(c.Request.Context(), query.Q, query.PageSize, offset)
	if err != nil {
		h.repoError(c, err, "job list")
		return
	}

	response.OKWithMeta(c, jobs, &response.Meta{
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
		HasNext:  offset+len(jobs) < total,
	})
}

// GetJob returns one posting; for candidates it also says whether they have
// already applied.
func (h *Handler) GetJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.Repository.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}

	detail := model.JobDetail{Job: job}
	claims := h.GetClaimsFromContext(c)
	if claims != nil && claims.Role == model.UserRoleCandidate {
		applied, err := h.Repository.HasApplied(c.Request.Context(), jobID, claims.UserID)
		if err != nil {
			h.repoError(c, err, "job applied check")
			return
		}
		detail.HasApplied = applied
	}
	response.OK(c, detail)
}

// jobUpdates maps the set fields of a partial edit onto update columns.
func jobUpdates(req model.UpdateJobRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.SkillsRequired != nil {
		updates["skills_required"] = *req.SkillsRequired
	}
	if req.ExperienceRequired != nil {
		updates["experience_required"] = *req.ExperienceRequired
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	return updates
}

// UpdateJob edits a posting. Only the HR user who posted it may edit.
func (h *Handler) UpdateJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	updates := jobUpdates(req)
	if len(updates) == 0 {
		response.BadRequest(c, "no fields to update")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	job, err := h.Repository.GetJobByID(ctx, jobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}
	if job.HRID != claims.UserID {
		response.Forbidden(c, "not your job posting")
		return
	}

	if err := h.Repository.UpdateJob(ctx, jobID, claims.UserID, updates); err != nil {
		h.repoError(c, err, "job update")
		return
	}

	job, err = h.Repository.GetJobByID(ctx, jobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}
	response.OK(c, job)
}

// MyJobs lists the calling HR user's postings.
func (h *Handler) MyJobs(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	jobs, err := h.Repository.ListJobsByHR(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "job list by hr")
		return
	}
	response.OK(c, jobs)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	claims := h.GetClaimsFromContext(c)
	if err := h.Repository.DeleteJob(c.Request.Context(), jobID, claims.UserID); err != nil {
		h.repoError(c, err, "job delete")
		return
	}
	response.Message(c, "job deleted")
}
