package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/skills"
	"github.com/talentflow/talentflow/pkg/response"
)

// ListCourses returns the catalog with the caller's progress attached.
func (h *Handler) ListCourses(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	courses, err := h.Repository.ListCoursesWithProgress(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "course list")
		return
	}
	response.OK(c, courses)
}

// GetCourse returns one course and records that the user opened it.
func (h *Handler) GetCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	course, err := h.Repository.GetCourseByID(ctx, courseID)
	if err != nil {
		h.repoError(c, err, "course get")
		return
	}

	if err := h.Repository.TouchCourseProgress(ctx, claims.UserID, courseID); err != nil {
		h.Logger.Sugar().Warnw("course progress touch failed", "course_id", courseID, "err", err)
	}
	response.OK(c, course)
}

// RecommendCourses suggests courses covering the skills the candidate's
// latest resume is missing for a job.
func (h *Handler) RecommendCourses(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Query("job_id"), 10, 64)
	if err != nil || jobID < 1 {
		response.BadRequest(c, "invalid job_id")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	job, err := h.Repository.GetJobByID(ctx, jobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}

	resumes, err := h.Repository.ListResumesByCandidate(ctx, claims.UserID)
	if err != nil {
		h.repoError(c, err, "resume list")
		return
	}
	if len(resumes) == 0 {
		response.BadRequest(c, "upload a resume first")
		return
	}

	_, missing := skills.Match(resumes[0].Profile.Skills, job.SkillsRequired)
	courses, err := h.Repository.SearchCoursesBySkills(ctx, missing)
	if err != nil {
		h.repoError(c, err, "course search")
		return
	}

	response.OK(c, gin.H{
		"missing_skills": missing,
		"courses":        courses,
	})
}
