package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/apperr"
	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/middleware"
	"github.com/openhired/jobboard/internal/repository"
	"github.com/openhired/jobboard/internal/services"
)

type JobHandler struct {
	jobs      *services.JobService
	uploadDir string
	logger    *zap.Logger
}

func NewJobHandler(jobs *services.JobService, uploadDir string, logger *zap.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, uploadDir: uploadDir, logger: logger}
}

// Add is POST /job.
func (h *JobHandler) Add(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req dtos.AddJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.jobs.Add(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job": job})
}

// Update is PATCH /job/:id.
func (h *JobHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": job})
}

// Delete is DELETE /job/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// All is GET /job.
func (h *JobHandler) All(c *gin.Context) {
	jobs, err := h.jobs.AllWithCompany(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ByCompany is GET /job/company?company_name=.
func (h *JobHandler) ByCompany(c *gin.Context) {
	var query dtos.JobsByCompanyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	jobs, err := h.jobs.ByCompanyName(c.Request.Context(), query.CompanyName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Filter is GET /job/filter.
func (h *JobHandler) Filter(c *gin.Context) {
	var query dtos.FilterJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	jobs, err := h.jobs.Filter(c.Request.Context(), repository.JobFilter{
		WorkingTime:    query.WorkingTime,
		JobLocation:    query.JobLocation,
		SeniorityLevel: query.SeniorityLevel,
		JobTitle:       query.JobTitle,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Apply is POST /job/:id/apply. The request is multipart with two
// mandatory file fields, resume and coverLetter.
func (h *JobHandler) Apply(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Both attachments are validated before either touches disk so a
	// rejected request leaves nothing behind.
	resume, err := c.FormFile("resume")
	if err != nil {
		respondError(c, h.logger, apperr.Validation("missing_attachment", "resume file is required."))
		return
	}
	coverLetter, err := c.FormFile("coverLetter")
	if err != nil {
		respondError(c, h.logger, apperr.Validation("missing_attachment", "coverLetter file is required."))
		return
	}

	resumePath, err := h.saveAttachment(c, resume)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	coverLetterPath, err := h.saveAttachment(c, coverLetter)
	if err != nil {
		h.removeAttachment(resumePath)
		respondError(c, h.logger, err)
		return
	}

	application, err := h.jobs.Apply(c.Request.Context(), actor, jobID, resumePath, coverLetterPath)
	if err != nil {
		h.removeAttachment(resumePath)
		h.removeAttachment(coverLetterPath)
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "application": application})
}

// saveAttachment stores an uploaded file under the upload directory and
// returns the saved path.
func (h *JobHandler) saveAttachment(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dst := filepath.Join(h.uploadDir, uuid.NewString()+safeExt(file))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", apperr.Internal(err)
	}
	return dst, nil
}

func (h *JobHandler) removeAttachment(path string) {
	if err := os.Remove(path); err != nil {
		h.logger.Warn("remove orphaned upload failed",
			zap.String("path", path),
			zap.Error(err))
	}
}

func safeExt(file *multipart.FileHeader) string {
	ext := filepath.Ext(filepath.Base(file.Filename))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
