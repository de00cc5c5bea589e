package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/export"
	"github.com/openhired/jobboard/internal/middleware"
	"github.com/openhired/jobboard/internal/repository"
	"github.com/openhired/jobboard/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CompanyHandler struct {
	companies *services.CompanyService
	logger    *zap.Logger
}

func NewCompanyHandler(companies *services.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companies: companies, logger: logger}
}

// Add is POST /company.
func (h *CompanyHandler) Add(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req dtos.AddCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	company, err := h.companies.Add(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Company created successfully", "company": company})
}

// Update is PATCH /company/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
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
	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	company, err := h.companies.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company updated successfully", "company": company})
}

// Delete is DELETE /company/:id.
func (h *CompanyHandler) Delete(c *gin.Context) {
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
	if err := h.companies.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

// Search is GET /company/search.
func (h *CompanyHandler) Search(c *gin.Context) {
	var query dtos.SearchCompaniesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	if query.CompanyName == "" && query.CompanyEmail == "" && query.Industry == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "validation_failed",
			"error_description": "At least one of company_name, company_email, or industry is required.",
		})
		return
	}
	companies, err := h.companies.Search(c.Request.Context(), repository.CompanySearch{
		Name:     query.CompanyName,
		Email:    query.CompanyEmail,
		Industry: query.Industry,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// DataAndJobs is GET /company/:id/jobs.
func (h *CompanyHandler) DataAndJobs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	company, jobs, err := h.companies.DataAndJobs(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company, "jobs": jobs})
}

// ApplicationsForJob is GET /company/applications/:jobID.
func (h *CompanyHandler) ApplicationsForJob(c *gin.Context) {
	jobID, err := pathID(c, "jobID")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	applications, err := h.companies.ApplicationsForJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// ExportApplications is GET /company/applications/export. It streams
// an xlsx of the company's applications submitted on the given day.
func (h *CompanyHandler) ExportApplications(c *gin.Context) {
	var query dtos.ApplicationsExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	// The day is bucketed in server-local time.
	day, err := time.ParseInLocation("2006-01-02", query.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "validation_failed",
			"error_description": "date must be YYYY-MM-DD.",
		})
		return
	}

	applications, err := h.companies.ApplicationsOnDate(c.Request.Context(), query.CompanyID, day)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	workbook, err := export.ApplicationsWorkbook(applications)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("applications-%s.xlsx", query.Date)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
