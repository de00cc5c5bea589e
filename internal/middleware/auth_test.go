package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/repository"
	"github.com/openhired/jobboard/internal/token"
)

type stubUserRepo struct {
	users map[uint]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByIdentifier(ctx context.Context, email, recoveryEmail, mobile string) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) MobileTaken(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) Save(ctx context.Context, user *models.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error         { return nil }

func newTestRouter(t *testing.T, roles ...models.Role) (*gin.Engine, *token.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := token.NewIssuer("middleware-test-secret-0123456789a", time.Hour)
	repo := &stubUserRepo{users: map[uint]*models.User{
		1: {ID: 1, Email: "hr@corp.test", Role: models.RoleCompanyHR},
		2: {ID: 2, Email: "user@corp.test", Role: models.RoleUser},
	}}

	auth := NewAuth(issuer, repo)
	r := gin.New()
	r.GET("/protected", auth.RequireRoles(roles...), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r, issuer
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRolesMissingHeader(t *testing.T) {
	r, _ := newTestRouter(t, models.RoleCompanyHR)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestRequireRolesMalformedHeader(t *testing.T) {
	r, _ := newTestRouter(t, models.RoleCompanyHR)

	w := doRequest(r, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesBadToken(t *testing.T) {
	r, _ := newTestRouter(t, models.RoleCompanyHR)

	w := doRequest(r, "Bearer not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestRequireRolesDeletedUser(t *testing.T) {
	r, issuer := newTestRouter(t, models.RoleCompanyHR)

	signed, err := issuer.Sign(99)
	require.NoError(t, err)
	w := doRequest(r, "Bearer "+signed)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesWrongRole(t *testing.T) {
	r, issuer := newTestRouter(t, models.RoleCompanyHR)

	signed, err := issuer.Sign(2)
	require.NoError(t, err)
	w := doRequest(r, "Bearer "+signed)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
}

func TestRequireRolesAllowedRole(t *testing.T) {
	r, issuer := newTestRouter(t, models.RoleCompanyHR, models.RoleUser)

	signed, err := issuer.Sign(1)
	require.NoError(t, err)
	w := doRequest(r, "Bearer "+signed)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hr@corp.test")
}
