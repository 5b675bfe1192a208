package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go-portfolio/internal/app/apptest"
	"go-portfolio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	t     *testing.T
	srv   *apptest.Server
	token string
}

func (a apiCall) do(method, path string, body any) (*http.Response, []byte) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.srv.URL+path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(a.t, err)
	return res, data
}

func decodeInto[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

func TestHealth(t *testing.T) {
	srv := apptest.NewServer(t)
	api := apiCall{t: t, srv: srv}

	for _, path := range []string{"/", "/api/health"} {
		res, data := api.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		body := decodeInto[map[string]string](t, data)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "Portfolio API is running", body["message"])
		assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
	}
}

func TestLogin(t *testing.T) {
	srv := apptest.NewServer(t)
	api := apiCall{t: t, srv: srv}

	res, data := api.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid password", decodeInto[map[string]any](t, data)["message"])

	res, _ = api.do(http.MethodPost, "/api/auth/login", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, data = api.do(http.MethodPost, "/api/auth/login", map[string]string{"password": apptest.Password})
	require.Equal(t, http.StatusOK, res.StatusCode)
	auth := decodeInto[domain.AuthResponse](t, data)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "Login successful", auth.Message)

	api.token = auth.Token
	res, _ = api.do(http.MethodGet, "/api/auth/verify", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := apptest.NewServer(t)
	api := apiCall{t: t, srv: srv}

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/skills"},
		{http.MethodPut, "/api/skills/1"},
		{http.MethodDelete, "/api/skills/1"},
		{http.MethodGet, "/api/kpis/all"},
		{http.MethodPost, "/api/about"},
		{http.MethodPost, "/api/experience/1/skills"},
		{http.MethodDelete, "/api/experience-skills/1"},
		{http.MethodPost, "/api/upload"},
	}
	for _, r := range routes {
		res, _ := api.do(r.method, r.path, map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s %s", r.method, r.path)
	}

	api.token = "not-a-token"
	res, data := api.do(http.MethodPost, "/api/skills", map[string]string{"name": "Go"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid or expired token", decodeInto[map[string]any](t, data)["message"])
}

func TestProjectLinksAreFreeForm(t *testing.T) {
	srv := apptest.NewServer(t)
	admin := apiCall{t: t, srv: srv, token: srv.AdminToken(t)}

	res, data := admin.do(http.MethodPost, "/api/projects", map[string]any{
		"name":        "Site",
		"description": "Portfolio",
		"live_url":    "example.com",
		"github_url":  "github.com/me/site",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(data))
	project := decodeInto[domain.Project](t, data)
	assert.Equal(t, "example.com", project.LiveURL)
	assert.Equal(t, "github.com/me/site", project.GithubURL)
}

func TestSkillsCRUD(t *testing.T) {
	srv := apptest.NewServer(t)
	public := apiCall{t: t, srv: srv}
	admin := apiCall{t: t, srv: srv, token: srv.AdminToken(t)}

	res, data := public.do(http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, "[]", string(data))

	res, data = admin.do(http.MethodPost, "/api/skills", map[string]any{"name": "Go", "category": "Backend", "order": 2})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(data))
	created := decodeInto[domain.Skill](t, data)
	require.NotZero(t, created.ID)

	res, _ = admin.do(http.MethodPost, "/api/skills", map[string]any{"name": "SQL", "order": 1})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	_, data = public.do(http.MethodGet, "/api/skills", nil)
	list := decodeInto[[]domain.Skill](t, data)
	require.Len(t, list, 2)
	assert.Equal(t, "SQL", list[0].Name)
	assert.Equal(t, "Go", list[1].Name)

	res, data = admin.do(http.MethodPut, "/api/skills/"+itoa(created.ID), map[string]any{"name": "Golang", "order": 3})
	require.Equal(t, http.StatusOK, res.StatusCode, string(data))
	assert.Equal(t, "Golang", decodeInto[domain.Skill](t, data).Name)

	res, data = admin.do(http.MethodPost, "/api/skills", map[string]any{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, decodeInto[map[string]any](t, data)["message"], "name")

	res, _ = admin.do(http.MethodPut, "/api/skills/abc", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, data = admin.do(http.MethodDelete, "/api/skills/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, decodeInto[map[string]any](t, data)["success"])

	res, data = public.do(http.MethodGet, "/api/skills/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Skill not found", decodeInto[map[string]any](t, data)["message"])
}

func TestKPIVisibility(t *testing.T) {
	srv := apptest.NewServer(t)
	public := apiCall{t: t, srv: srv}
	admin := apiCall{t: t, srv: srv, token: srv.AdminToken(t)}

	res, data := admin.do(http.MethodPost, "/api/kpis", map[string]any{"title": "Launch", "description": "Ship v1"})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(data))
	kpi := decodeInto[domain.KPI](t, data)
	assert.Equal(t, domain.KPIStatusPlanned, kpi.Status)
	assert.Equal(t, domain.KPIVisibilityPublic, kpi.Visibility)

	res, data = admin.do(http.MethodPost, "/api/kpis", map[string]any{
		"title": "Secret", "description": "Later", "visibility": domain.KPIVisibilityComingSoon,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(data))

	res, data = admin.do(http.MethodPost, "/api/kpis", map[string]any{"title": "Bad", "description": "x", "status": "Done"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, string(data))

	_, data = public.do(http.MethodGet, "/api/kpis", nil)
	publicList := decodeInto[[]domain.KPI](t, data)
	require.Len(t, publicList, 1)
	assert.Equal(t, "Launch", publicList[0].Title)

	_, data = admin.do(http.MethodGet, "/api/kpis/all", nil)
	assert.Len(t, decodeInto[[]domain.KPI](t, data), 2)
}

func TestExperienceWithSkills(t *testing.T) {
	srv := apptest.NewServer(t)
	public := apiCall{t: t, srv: srv}
	admin := apiCall{t: t, srv: srv, token: srv.AdminToken(t)}

	res, data := admin.do(http.MethodPost, "/api/experience", map[string]any{
		"company": "Acme", "role": "Engineer", "start_date": "2021-03-01", "end_date": "2020-01-01",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, string(data))

	res, data = admin.do(http.MethodPost, "/api/experience", map[string]any{
		"company": "Acme", "role": "Engineer", "start_date": "2021-03-01",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(data))
	exp := decodeInto[domain.WorkExperience](t, data)

	res, data = admin.do(http.MethodPost, "/api/experience/"+itoa(exp.ID)+"/skills", map[string]any{
		"skill_name": "Go", "explanation": "Built services", "order": 1,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(data))
	skill := decodeInto[domain.ExperienceSkill](t, data)
	assert.Equal(t, exp.ID, skill.ExperienceID)

	res, _ = admin.do(http.MethodPost, "/api/experience/999/skills", map[string]any{
		"skill_name": "Go", "explanation": "x",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, data = admin.do(http.MethodPut, "/api/experience-skills/"+itoa(skill.ID), map[string]any{
		"skill_name": "Go", "explanation": "Built many services",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, string(data))

	_, data = public.do(http.MethodGet, "/api/experience/"+itoa(exp.ID), nil)
	detail := decodeInto[domain.WorkExperience](t, data)
	require.Len(t, detail.SkillsAcquired, 1)
	assert.Equal(t, "Built many services", detail.SkillsAcquired[0].Explanation)

	_, data = public.do(http.MethodGet, "/api/experience", nil)
	list := decodeInto[[]domain.WorkExperience](t, data)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].SkillsAcquired)

	res, _ = admin.do(http.MethodDelete, "/api/experience/"+itoa(exp.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = admin.do(http.MethodDelete, "/api/experience-skills/"+itoa(skill.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAboutAndContact(t *testing.T) {
	srv := apptest.NewServer(t)
	public := apiCall{t: t, srv: srv}
	admin := apiCall{t: t, srv: srv, token: srv.AdminToken(t)}

	res, data := public.do(http.MethodGet, "/api/about", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, decodeInto[domain.About](t, data).Overview)

	res, data = admin.do(http.MethodPost, "/api/about", map[string]any{"overview": "Hello **world**"})
	require.Equal(t, http.StatusOK, res.StatusCode, string(data))

	_, data = public.do(http.MethodGet, "/api/about", nil)
	about := decodeInto[domain.About](t, data)
	assert.Equal(t, "Hello **world**", about.Overview)
	assert.Contains(t, about.OverviewHTML, "<strong>world</strong>")

	res, data = admin.do(http.MethodPost, "/api/contact", map[string]any{"email": "me at host"})
	assert.Equal(t, http.StatusOK, res.StatusCode, string(data))

	res, _ = admin.do(http.MethodPost, "/api/contact", map[string]any{"email": "me@example.com", "location": "Jakarta"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = admin.do(http.MethodPost, "/api/contact", map[string]any{"email": "me@example.com", "location": "Bandung"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, data = public.do(http.MethodGet, "/api/contact", nil)
	contact := decodeInto[domain.Contact](t, data)
	assert.Equal(t, "Bandung", contact.Location)
}

func TestUpload(t *testing.T) {
	srv := apptest.NewServer(t)
	token := srv.AdminToken(t)

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	res, data := upload(t, srv.URL, token, "photo.png", buf.Bytes())
	require.Equal(t, http.StatusOK, res.StatusCode, string(data))
	uploaded := decodeInto[domain.UploadResponse](t, data)
	require.True(t, strings.HasPrefix(uploaded.URL, "/uploads/"), uploaded.URL)

	stored, err := os.ReadFile(filepath.Join(srv.UploadDir, filepath.Base(uploaded.URL)))
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)

	served, err := http.Get(srv.URL + uploaded.URL)
	require.NoError(t, err)
	served.Body.Close()
	assert.Equal(t, http.StatusOK, served.StatusCode)
	assert.Contains(t, served.Header.Get("Content-Security-Policy"), "sandbox")

	res, _ = upload(t, srv.URL, token, "script.exe", []byte("MZ"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)

	res, _ = upload(t, srv.URL, token, "fake.png", []byte("definitely not a png"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}

func upload(t *testing.T, baseURL, token, filename string, content []byte) (*http.Response, []byte) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, baseURL+"/api/upload", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, data
}

func TestCORSPreflight(t *testing.T) {
	srv := apptest.NewServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/skills", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get("Access-Control-Allow-Origin"))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
