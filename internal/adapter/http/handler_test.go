package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/internal/adapter/repository"
	"portfolio-cms/internal/auth"
	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/model"
)

func newTestApp(t *testing.T) (*fiber.App, *repository.MemoryContent) {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	admins := repository.NewMemoryAdmins()
	admins.Put(domain.AdminUser{Email: "admin@example.com", PasswordHash: hash})

	store := repository.NewMemoryContent(nil)
	h := NewHandler(store, auth.NewService([]byte("test-secret"), admins), nil, false)

	app := fiber.New()
	h.Register(app)
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie string) *nethttp.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func loginCookie(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "correct horse",
	}, "")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("login set no session cookie")
	return ""
}

func decodeBody(t *testing.T, resp *nethttp.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestGetContent_ServesSeededDocumentWithSystemFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/content", nil, "")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "_id")
	assert.Contains(t, body, "createdAt")
	assert.Equal(t, float64(1), body["__v"])

	profile := body["profile"].(map[string]any)
	assert.NotEmpty(t, profile["name"])
}

func TestSaveContent_RequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/content", map[string]any{
		"profile": map[string]any{"name": "X"}, "sections": []any{},
	}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestSaveContent_RoundTrip(t *testing.T) {
	app, store := newTestApp(t)
	cookie := loginCookie(t, app)

	// fetch, edit the wire payload (system fields included), save it back
	get := doJSON(t, app, "GET", "/api/content", nil, "")
	doc := decodeBody(t, get)
	doc["profile"].(map[string]any)["name"] = "Morgan Reyes"

	resp := doJSON(t, app, "POST", "/api/content", doc, cookie)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	rec, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Morgan Reyes", rec.Document.Profile.Name)
	assert.Equal(t, 2, rec.Version)
}

func TestSaveContent_RejectsInvalidDocument(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginCookie(t, app)

	resp := doJSON(t, app, "POST", "/api/content", map[string]any{
		"profile": map[string]any{"name": ""}, "sections": []any{},
	}, cookie)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestGetProject(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/content/projects/1", nil, "")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Project Alpha", body["title"])

	missing := doJSON(t, app, "GET", "/api/content/projects/nope", nil, "")
	assert.Equal(t, nethttp.StatusNotFound, missing.StatusCode)
}

func TestAuthFlow_LoginCheckLogout(t *testing.T) {
	app, _ := newTestApp(t)

	// unauthenticated check
	resp := doJSON(t, app, "GET", "/api/auth/check", nil, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp)["authenticated"])

	cookie := loginCookie(t, app)

	resp = doJSON(t, app, "GET", "/api/auth/check", nil, cookie)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["authenticated"])

	// logout clears the cookie
	resp = doJSON(t, app, "POST", "/api/auth/logout", nil, cookie)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the session cookie")
}

func TestLogin_BadCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeBody(t, resp)["message"])
}

func TestLogin_MissingCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{"email": "admin@example.com"}, "")
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestLogin_CookieAttributes(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "correct horse",
	}, "")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var session *nethttp.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, nethttp.SameSiteStrictMode, session.SameSite)
}

func TestAdminPutSections(t *testing.T) {
	app, store := newTestApp(t)
	cookie := loginCookie(t, app)

	rec, err := store.Get(context.Background())
	require.NoError(t, err)

	// reverse the section order
	var sections []model.Section
	for i := len(rec.Document.Sections) - 1; i >= 0; i-- {
		sections = append(sections, rec.Document.Sections[i])
	}
	raw, err := json.Marshal(map[string]any{"sections": sections})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/admin/sections", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	after, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rec.Document.Sections[len(rec.Document.Sections)-1].ID, after.Document.Sections[0].ID)
}

func TestAdminPutSectionItems(t *testing.T) {
	app, store := newTestApp(t)
	cookie := loginCookie(t, app)

	payload := map[string]any{"items": []map[string]any{
		{"id": "c1", "title": "AWS Solutions Architect", "issuer": "AWS", "date": "2026"},
	}}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/admin/sections/certifications/items", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	rec, err := store.Get(context.Background())
	require.NoError(t, err)
	data := rec.Document.FindSection(model.SectionCertifications).Data.(model.CertificationsData)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "AWS Solutions Architect", data.Items[0].Title)
}

func TestAdminPutSectionItems_AboutHasNoItems(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginCookie(t, app)

	req := httptest.NewRequest("PUT", "/api/admin/sections/about/items", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestAdminPutProfile(t *testing.T) {
	app, store := newTestApp(t)
	cookie := loginCookie(t, app)

	resp := doJSON(t, app, "PUT", "/api/admin/profile", map[string]any{
		"profile": map[string]any{"name": "Morgan Reyes", "tagline": "Platform Engineer"},
	}, cookie)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	rec, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Morgan Reyes", rec.Document.Profile.Name)
	assert.Equal(t, "Platform Engineer", rec.Document.Profile.Tagline)
}

func TestAdminRoutes_RequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/admin/sections", "/api/admin/profile"} {
		resp := doJSON(t, app, "PUT", path, map[string]any{}, "")
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestResumePDF_NotConfigured(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "GET", "/api/resume/pdf", nil, "")
	assert.Equal(t, nethttp.StatusNotImplemented, resp.StatusCode)
}
