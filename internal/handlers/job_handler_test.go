package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/middleware"
	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/services"
	"github.com/openhired/jobboard/internal/token"
)

type applyFixture struct {
	router       *gin.Engine
	uploadDir    string
	applications *applicationRecorder
	authHeader   string
}

func newApplyFixture(t *testing.T) *applyFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	applicant := &models.User{ID: 7, Email: "sara@example.com", Role: models.RoleUser}
	jobs := &stubJobRepo{job: &models.Job{ID: 3, JobTitle: "Backend Engineer", CompanyID: 1}}
	applications := &applicationRecorder{}

	issuer := token.NewIssuer("handler-test-secret-0123456789abcd", time.Hour)
	signed, err := issuer.Sign(applicant.ID)
	require.NoError(t, err)

	uploadDir := t.TempDir()
	svc := services.NewJobService(jobs, &stubCompanyRepo{}, applications, nil, zap.NewNop())
	handler := NewJobHandler(svc, uploadDir, zap.NewNop())

	auth := middleware.NewAuth(issuer, &stubUserRepo{user: applicant})
	r := gin.New()
	r.POST("/job/:id/apply", auth.RequireRoles(models.RoleUser, models.RoleCompanyHR), handler.Apply)

	return &applyFixture{
		router:       r,
		uploadDir:    uploadDir,
		applications: applications,
		authHeader:   "Bearer " + signed,
	}
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, filename := range files {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("file content for " + field))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func (fx *applyFixture) apply(t *testing.T, path string, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", fx.authHeader)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func (fx *applyFixture) uploadCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(fx.uploadDir)
	require.NoError(t, err)
	return len(entries)
}

func TestApplyMissingCoverLetter(t *testing.T) {
	fx := newApplyFixture(t)

	w := fx.apply(t, "/job/3/apply", map[string]string{"resume": "resume.pdf"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_attachment")
	assert.Empty(t, fx.applications.applications)
	assert.Zero(t, fx.uploadCount(t), "a rejected request must leave no files behind")
}

func TestApplyMissingResume(t *testing.T) {
	fx := newApplyFixture(t)

	w := fx.apply(t, "/job/3/apply", map[string]string{"coverLetter": "cover.pdf"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_attachment")
	assert.Zero(t, fx.uploadCount(t))
}

func TestApplyStoresBothAttachments(t *testing.T) {
	fx := newApplyFixture(t)

	w := fx.apply(t, "/job/3/apply", map[string]string{
		"resume":      "resume.pdf",
		"coverLetter": "cover.pdf",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, fx.applications.applications, 1)
	created := fx.applications.applications[0]
	assert.Equal(t, uint(3), created.JobID)
	assert.Equal(t, uint(7), created.UserID)

	_, err := os.Stat(created.ResumeFile)
	assert.NoError(t, err)
	_, err = os.Stat(created.CoverLetterFile)
	assert.NoError(t, err)
	assert.Equal(t, 2, fx.uploadCount(t))
}

func TestApplyUnknownJobCleansUploads(t *testing.T) {
	fx := newApplyFixture(t)

	w := fx.apply(t, "/job/99/apply", map[string]string{
		"resume":      "resume.pdf",
		"coverLetter": "cover.pdf",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "job_not_found")
	assert.Empty(t, fx.applications.applications)
	assert.Zero(t, fx.uploadCount(t))
}
