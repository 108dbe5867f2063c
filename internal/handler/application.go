package handler

import (
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/extract"
	"github.com/talentflow/talentflow/internal/skills"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

// UploadResume receives a resume file targeted at a job, extracts its text,
// parses it into a structured profile and returns a screening preview:
// matched and missing skills, the match analysis and recommended courses.
// Nothing is applied yet; the candidate confirms separately.
func (h *Handler) UploadResume(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)

	jobID, err := strconv.ParseInt(c.PostForm("job_id"), 10, 64)
	if err != nil || jobID < 1 {
		response.BadRequest(c, "invalid job_id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "resume file is required")
		return
	}
	if fileHeader.Size > h.Config.Upload.MaxBytes {
		response.BadRequest(c, "resume file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Logger.Sugar().Errorw("open upload failed", "err", err)
		response.InternalError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.Config.Upload.MaxBytes))
	if err != nil {
		h.Logger.Sugar().Errorw("read upload failed", "err", err)
		response.InternalError(c, "")
		return
	}

	text, err := extract.Text(fileHeader.Filename, data)
	if err != nil {
		h.Logger.Sugar().Warnw("resume extraction failed", "file", fileHeader.Filename, "err", err)
		response.BadRequest(c, "could not extract text from resume")
		return
	}

	ctx := c.Request.Context()
	job, err := h.Repository.GetJobByID(ctx, jobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}

	profile, parseOrigin := h.AI.ParseResume(ctx, text)
	matched, missing := skills.Match(profile.Skills, job.SkillsRequired)
	analysis, matchOrigin := h.AI.AnalyzeMatch(ctx, profile, job.Description, missing)

	resume := &model.Resume{
		CandidateID:            claims.UserID,
		FileName:               fileHeader.Filename,
		Profile:                profile,
		MatchScore:             float64(analysis.MatchScore),
		AIFeedback:             analysis.AIFeedback,
		SkillsMatched:          strings.Join(matched, ", "),
		MissingSkills:          strings.Join(missing, ", "),
		ImprovementSuggestions: analysis.ImprovementSuggestions,
	}
	resumeID, err := h.Repository.CreateResume(ctx, resume)
	if err != nil {
		h.repoError(c, err, "resume create")
		return
	}
	resume.ResumeID = resumeID

	var courses []model.Course
	if resume.MatchScore < screeningPassScore {
		courses, err = h.Repository.SearchCoursesBySkills(ctx, missing)
		if err != nil {
			h.Logger.Sugar().Errorw("course recommendation failed", "err", err)
			courses = nil
		}
	}

	response.Created(c, gin.H{
		"preview": model.ScreeningPreview{
			Resume:             *resume,
			Job:                job,
			MatchedSkills:      matched,
			MissingSkills:      missing,
			RecommendedCourses: courses,
		},
		"parse_origin": parseOrigin.String(),
		"match_origin": matchOrigin.String(),
	})
}

// ScreeningPreview recomputes a stored resume's screening against a job.
// Matched and missing skills come from the live job posting, never from the
// stored snapshot.
func (h *Handler) ScreeningPreview(c *gin.Context) {
	resumeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	jobID, err := strconv.ParseInt(c.Query("job_id"), 10, 64)
	if err != nil || jobID < 1 {
		response.BadRequest(c, "invalid job_id")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	resume, err := h.Repository.GetResumeByID(ctx, resumeID)
	if err != nil {
		h.repoError(c, err, "resume get")
		return
	}
	if resume.CandidateID != claims.UserID {
		response.Forbidden(c, "not your resume")
		return
	}

	job, err := h.Repository.GetJobByID(ctx, jobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}

	matched, missing := skills.Match(resume.Profile.Skills, job.SkillsRequired)
	var courses []model.Course
	if resume.MatchScore < screeningPassScore {
		courses, err = h.Repository.SearchCoursesBySkills(ctx, missing)
		if err != nil {
			h.Logger.Sugar().Errorw("course recommendation failed", "err", err)
			courses = nil
		}
	}

	response.OK(c, model.ScreeningPreview{
		Resume:             resume,
		Job:                job,
		MatchedSkills:      matched,
		MissingSkills:      missing,
		RecommendedCourses: courses,
	})
}

// MyResumes lists the candidate's uploaded resumes.
func (h *Handler) MyResumes(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	resumes, err := h.Repository.ListResumesByCandidate(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "resume list")
		return
	}
	response.OK(c, resumes)
}

// ConfirmApply turns a screened resume into an application.
func (h *Handler) ConfirmApply(c *gin.Context) {
	var req model.ConfirmApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	resume, err := h.Repository.GetResumeByID(ctx, req.ResumeID)
	if err != nil {
		h.repoError(c, err, "resume get")
		return
	}
	if resume.CandidateID != claims.UserID {
		response.Forbidden(c, "not your resume")
		return
	}

	job, err := h.Repository.GetJobByID(ctx, req.JobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}

	// Strict gatekeeper: weak matches are recorded as rejected up front.
	status, advisory := screeningOutcome(resume.MatchScore)

	matched, missing := skills.Match(resume.Profile.Skills, job.SkillsRequired)
	app := &model.Application{
		JobID:                  job.JobID,
		CandidateID:            claims.UserID,
		ResumeID:               &resume.ResumeID,
		MatchScore:             resume.MatchScore,
		AIFeedback:             resume.AIFeedback,
		SkillsMatched:          strings.Join(matched, ", "),
		MissingSkills:          strings.Join(missing, ", "),
		ImprovementSuggestions: resume.ImprovementSuggestions,
		Status:                 status,
	}

	appID, err := h.Repository.CreateApplication(ctx, app)
	if err != nil {
		h.repoError(c, err, "application create")
		return
	}
	app.ApplicationID = appID

	// Strong matches don't need upskilling pointers.
	var courses []model.Course
	if app.MatchScore < screeningPassScore {
		courses, err = h.Repository.SearchCoursesBySkills(ctx, missing)
		if err != nil {
			h.Logger.Sugar().Errorw("course recommendation failed", "err", err)
			courses = nil
		}
	}

	response.Created(c, model.ScreeningResult{
		Application:        *app,
		MatchedSkills:      matched,
		MissingSkills:      missing,
		RecommendedCourses: courses,
		Advisory:           advisory,
	})
}

// MyApplications lists the candidate's applications.
func (h *Handler) MyApplications(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	apps, err := h.Repository.ListApplicationsByCandidate(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "application list")
		return
	}
	response.OK(c, apps)
}

// canViewApplication allows the candidate who owns the application and the
// HR user who owns the posting it targets.
func canViewApplication(userID, candidateID, hrID string) bool {
	return userID == candidateID || userID == hrID
}

// ApplicationDetail returns one application with matched and missing skills
// recomputed against the live posting, never the stored snapshot.
func (h *Handler) ApplicationDetail(c *gin.Context) {
	appID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	app, err := h.Repository.GetApplicationByID(ctx, appID)
	if err != nil {
		h.repoError(c, err, "application get")
		return
	}
	job, err := h.Repository.GetJobByID(ctx, app.JobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}
	if !canViewApplication(claims.UserID, app.CandidateID, job.HRID) {
		response.Forbidden(c, "not your application")
		return
	}

	var resumeSkills []string
	if app.ResumeID != nil {
		if resume, err := h.Repository.GetResumeByID(ctx, *app.ResumeID); err == nil {
			resumeSkills = resume.Profile.Skills
		}
	}
	matched, missing := skills.Match(resumeSkills, job.SkillsRequired)

	candidateName := ""
	if candidate, err := h.Repository.GetUserByID(ctx, app.CandidateID); err == nil {
		candidateName = candidate.Name
	}

	response.OK(c, model.ApplicationDetail{
		Application:   app,
		Job:           job,
		CandidateName: candidateName,
		MatchedSkills: matched,
		MissingSkills: missing,
	})
}

// ListApplicants returns a job's applicants for the HR user who posted it,
// best match first.
func (h *Handler) ListApplicants(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
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

	applicants, err := h.Repository.ListApplicantsByJob(ctx, jobID)
	if err != nil {
		h.repoError(c, err, "applicant list")
		return
	}
	response.OK(c, applicants)
}

// UpdateApplicationStatus lets the posting's HR user move an application
// through the pipeline.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	appID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		response.BadRequest(c, "invalid status")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	app, err := h.Repository.GetApplicationByID(ctx, appID)
	if err != nil {
		h.repoError(c, err, "application get")
		return
	}
	job, err := h.Repository.GetJobByID(ctx, app.JobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}
	if job.HRID != claims.UserID {
		response.Forbidden(c, "not your job posting")
		return
	}

	if err := h.Repository.UpdateApplication(ctx, appID, map[string]interface{}{
		"status": req.Status,
	}); err != nil {
		h.repoError(c, err, "application update")
		return
	}

	notif := &model.Notification{
		RecipientID: app.CandidateID,
		Title:       "Application update",
		Message:     "Your application for " + job.Title + " is now " + string(req.Status) + ".",
		Type:        model.NotifyGeneral,
	}
	if _, err := h.Repository.CreateNotification(ctx, notif); err != nil {
		h.Logger.Sugar().Errorw("status notification failed", "application_id", appID, "err", err)
	}

	response.Message(c, "status updated")
}
