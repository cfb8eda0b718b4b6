package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/service"
)

// fakeAuth accepts one fixed credential pair.
type fakeAuth struct{}

func (fakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	if username == "admin" && password == "secret123" {
		return "signed.token.value", nil
	}
	return "", domain.Unauthorized("fakeAuth.Login", "Identifiants invalides")
}

func (fakeAuth) Verify(ctx context.Context, token string) (string, error) {
	if token == "signed.token.value" {
		return "admin", nil
	}
	return "", domain.Unauthorized("fakeAuth.Verify", "Authentification requise")
}

// fakeProjects records mutations.
type fakeProjects struct {
	created *domain.CreateProjectParams
	updated *domain.UpdateProjectParams
	deleted []int64
}

func (f *fakeProjects) List(ctx context.Context, category string) ([]domain.Project, error) {
	return nil, nil
}

func (f *fakeProjects) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return nil, domain.NotFound("fakeProjects.GetBySlug", "Projet non trouvé")
}

func (f *fakeProjects) ListSimilar(ctx context.Context, category, excludeSlug string) ([]domain.Project, error) {
	return nil, nil
}

func (f *fakeProjects) ListFeatured(ctx context.Context) ([]domain.Project, error) { return nil, nil }

func (f *fakeProjects) Create(ctx context.Context, params domain.CreateProjectParams) (*domain.Project, error) {
	f.created = &params
	return &domain.Project{ID: 42, Title: params.Title, Slug: "toiture-haussmannienne"}, nil
}

func (f *fakeProjects) Update(ctx context.Context, params domain.UpdateProjectParams) error {
	f.updated = &params
	return nil
}

func (f *fakeProjects) UpdateImage(ctx context.Context, id int64, imageURL string) error { return nil }

func (f *fakeProjects) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeCatalog records the last upserted setting.
type fakeCatalog struct {
	lastSetting *domain.Setting
}

func (f *fakeCatalog) ListServices(ctx context.Context) ([]domain.Service, error) { return nil, nil }

func (f *fakeCatalog) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	return nil, domain.NotFound("fakeCatalog.GetServiceBySlug", "Service non trouvé")
}

func (f *fakeCatalog) GetServiceDetail(ctx context.Context, slug string) (*service.ServiceDetailPage, error) {
	return nil, domain.NotFound("fakeCatalog.GetServiceDetail", "Service non trouvé")
}

func (f *fakeCatalog) ListSettings(ctx context.Context) ([]domain.Setting, error) { return nil, nil }

func (f *fakeCatalog) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	return nil, domain.NotFound("fakeCatalog.GetSetting", "Paramètre non trouvé")
}

func (f *fakeCatalog) CreateService(ctx context.Context, params domain.CreateServiceParams) (*domain.Service, error) {
	return &domain.Service{ID: 1, Title: params.Title}, nil
}

func (f *fakeCatalog) UpdateService(ctx context.Context, params domain.UpdateServiceParams) error {
	return nil
}

func (f *fakeCatalog) DeleteService(ctx context.Context, id int64) error { return nil }

func (f *fakeCatalog) UpsertServiceDetails(ctx context.Context, serviceID int64, sections []domain.ServiceDetail) error {
	return nil
}

func (f *fakeCatalog) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	f.lastSetting = &setting
	return nil
}

type fakeImages struct{}

func (fakeImages) UploadProjectImage(ctx context.Context, projectID int64, filename, contentType string, data []byte) (string, error) {
	return "http://localhost:8080/uploads/projects/1/photo.jpg", nil
}

// requireToken mimics the auth middleware against fakeAuth.
func requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer signed.token.value" {
			writeJSON(w, http.StatusUnauthorized, Envelope{Success: false, Message: "Authentification requise"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func adminFixture() (*http.ServeMux, *fakeProjects, *fakeCatalog) {
	projects := &fakeProjects{}
	catalog := &fakeCatalog{}
	h := NewAdminHandler(fakeAuth{}, &fakeJobs{}, projects, catalog, fakeImages{}, testLogger())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, requireToken)
	return mux, projects, catalog
}

func TestAdminLogin(t *testing.T) {
	mux, _, _ := adminFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"secret123"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Connexion réussie", env.Message)
	assert.Equal(t, "signed.token.value", dataField(t, env, "token"))
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	mux, _, _ := adminFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Identifiants invalides", env.Message)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	mux, projects, _ := adminFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/42", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, projects.deleted)
}

func TestAdminCreateProject(t *testing.T) {
	mux, projects, _ := adminFixture()

	body := `{"title":"Toiture haussmannienne","description":"Réfection","category":"couverture","location":"Paris","year":2024,"featured":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer signed.token.value")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Projet créé avec succès", env.Message)

	require.NotNil(t, projects.created)
	assert.Equal(t, "Toiture haussmannienne", projects.created.Title)
	assert.Equal(t, 2024, projects.created.Year)
	assert.True(t, projects.created.Featured)
}

func TestAdminDeleteProject(t *testing.T) {
	mux, projects, _ := adminFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/42", nil)
	req.Header.Set("Authorization", "Bearer signed.token.value")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{42}, projects.deleted)
}

func TestAdminUpdateProject_InvalidID(t *testing.T) {
	mux, _, _ := adminFixture()

	req := httptest.NewRequest(http.MethodPut, "/api/admin/projects/abc", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer signed.token.value")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Identifiant invalide", env.Message)
}

func TestAdminUpsertSetting(t *testing.T) {
	mux, _, catalog := adminFixture()

	body := `{"setting_value":"01 23 45 67 89","setting_group":"contact","is_public":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/company_phone", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer signed.token.value")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, catalog.lastSetting)
	assert.Equal(t, "company_phone", catalog.lastSetting.Key)
	assert.Equal(t, "01 23 45 67 89", catalog.lastSetting.Value)
	assert.True(t, catalog.lastSetting.Public)
}
