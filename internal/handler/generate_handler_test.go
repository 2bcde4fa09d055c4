package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vetpost/backend/internal/handler"
	"vetpost/backend/internal/metrics"
	"vetpost/backend/internal/model"
	"vetpost/backend/internal/service"
	servicemock "vetpost/backend/internal/service/mock"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	echo   *echo.Echo
	posts  *servicemock.MockPostService
	images *servicemock.MockImageService
}

func newTestEnv(t *testing.T, loc *time.Location) testEnv {
	ctrl := gomock.NewController(t)
	posts := servicemock.NewMockPostService(ctrl)
	images := servicemock.NewMockImageService(ctrl)

	e := echo.New()
	h := handler.NewGenerateHandler(posts, images, loc, nil)
	h.RegisterRoutes(e.Group("/api"))
	return testEnv{echo: e, posts: posts, images: images}
}

func (env testEnv) do(t *testing.T, method, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/generate", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestGenerateHandler_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, nil)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		status, body := env.do(t, method, "")
		require.Equal(t, http.StatusMethodNotAllowed, status)
		require.Equal(t, "Método não permitido", body["error"])
	}
}

func TestGenerateHandler_InvalidAction(t *testing.T) {
	env := newTestEnv(t, nil)

	status, body := env.do(t, http.MethodPost, `{"action":"unknown"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Ação inválida.", body["error"])

	status, _ = env.do(t, http.MethodPost, `{}`)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestGenerateHandler_InvalidBody(t *testing.T) {
	env := newTestEnv(t, nil)
	status, body := env.do(t, http.MethodPost, `{"action":`)
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, body["error"])
}

func TestGenerateHandler_BodyWithoutContentType(t *testing.T) {
	env := newTestEnv(t, nil)
	env.images.EXPECT().Ready().Return(nil)
	env.images.EXPECT().Search(gomock.Any(), "gato").Return(model.ImageSearchResult{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"action":"searchImages","searchTerm":"gato"}`))
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	status, body := env.do(t, http.MethodPost, "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Ação inválida.", body["error"])
}

func TestGenerateHandler_GenerateContent_MissingCredential(t *testing.T) {
	env := newTestEnv(t, nil)
	env.posts.EXPECT().Ready().Return(&service.ConfigError{Setting: "API_KEY", Message: "Chave ausente."})

	status, body := env.do(t, http.MethodPost, `{"action":"generateContent","date":"2026-01-01","tone":"Divertido"}`)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Contains(t, body["error"], "API_KEY")
}

func TestGenerateHandler_GenerateContent_MissingDate(t *testing.T) {
	env := newTestEnv(t, nil)
	env.posts.EXPECT().Ready().Return(nil)

	status, body := env.do(t, http.MethodPost, `{"action":"generateContent","tone":"Divertido"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body["error"], "date")
}

func TestGenerateHandler_GenerateContent_BadDate(t *testing.T) {
	env := newTestEnv(t, nil)
	env.posts.EXPECT().Ready().Return(nil)

	status, _ := env.do(t, http.MethodPost, `{"action":"generateContent","date":"01/02/2026","tone":"Divertido"}`)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestGenerateHandler_GenerateContent_MissingTone(t *testing.T) {
	env := newTestEnv(t, nil)
	env.posts.EXPECT().Ready().Return(nil)
	env.posts.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(model.GeneratedPost{}, &service.ValidationError{Message: "O campo 'tone' é obrigatório."})

	status, body := env.do(t, http.MethodPost, `{"action":"generateContent","date":"2026-01-01"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "O campo 'tone' é obrigatório.", body["error"])
}

func TestGenerateHandler_GenerateContent_Success(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	env := newTestEnv(t, loc)
	env.posts.EXPECT().Ready().Return(nil)
	env.posts.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params service.GenerateParams) (model.GeneratedPost, error) {
			require.Equal(t, "Divertido", params.Tone)
			require.Equal(t, loc, params.Date.Location())
			require.Equal(t, time.March, params.Date.Month())
			require.Equal(t, 4, params.Date.Day())
			return model.GeneratedPost{
				Topic:       "Tema",
				Caption:     "Legenda",
				Hashtags:    []string{"#pet"},
				ImagePrompt: "um cão",
			}, nil
		})

	status, body := env.do(t, http.MethodPost, `{"action":"generateContent","date":"2026-03-05T01:00:00Z","tone":"Divertido"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Tema", body["post_idea"])
	require.Equal(t, "Legenda", body["caption"])
	require.Equal(t, []any{"#pet"}, body["hashtags"])
	require.Equal(t, "um cão", body["image_prompt"])
}

func TestGenerateHandler_GenerateContent_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.posts.EXPECT().Ready().Return(nil)
	env.posts.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(model.GeneratedPost{}, &service.UpstreamError{Upstream: "gemini", Op: "parse response", Raw: "oops"})

	status, body := env.do(t, http.MethodPost, `{"action":"generateContent","date":"2026-01-01","tone":"Urgente"}`)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Contains(t, body["error"], "gemini")
	require.NotContains(t, body, "caption")
}

func TestGenerateHandler_SearchImages_MissingCredential(t *testing.T) {
	env := newTestEnv(t, nil)
	env.images.EXPECT().Ready().Return(&service.ConfigError{Setting: "UNSPLASH_ACCESS_KEY", Message: "Chave ausente."})

	status, body := env.do(t, http.MethodPost, `{"action":"searchImages","searchTerm":"gato"}`)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Contains(t, body["error"], "UNSPLASH_ACCESS_KEY")
}

func TestGenerateHandler_SearchImages_Success(t *testing.T) {
	alt := "a cat sleeping"
	env := newTestEnv(t, nil)
	env.images.EXPECT().Ready().Return(nil)
	env.images.EXPECT().
		Search(gomock.Any(), "gato").
		Return(model.ImageSearchResult{
			Results:    []model.StockImage{{ID: "abc", AltDescription: &alt, ThumbnailURL: "https://img/abc", PageURL: "https://page/abc", AuthorName: "Ana"}},
			Total:      1,
			TotalPages: 1,
		}, nil)

	status, body := env.do(t, http.MethodPost, `{"action":"searchImages","searchTerm":"gato"}`)
	require.Equal(t, http.StatusOK, status)
	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	require.Equal(t, "abc", first["id"])
	require.Equal(t, alt, first["alt_description"])
	require.Equal(t, "https://img/abc", first["thumbnail_url"])
}

func TestGenerateHandler_SearchImages_BlankTerm(t *testing.T) {
	env := newTestEnv(t, nil)
	env.images.EXPECT().Ready().Return(nil)
	env.images.EXPECT().
		Search(gomock.Any(), "").
		Return(model.ImageSearchResult{}, &service.ValidationError{Message: "O campo 'searchTerm' é obrigatório."})

	status, _ := env.do(t, http.MethodPost, `{"action":"searchImages"}`)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestGenerateHandler_CountsRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := servicemock.NewMockPostService(ctrl)
	images := servicemock.NewMockImageService(ctrl)
	collector := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	handler.NewGenerateHandler(posts, images, nil, collector).RegisterRoutes(e.Group("/api"))

	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"action":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 2.0, testutil.ToFloat64(collector.Requests.WithLabelValues("none", "405")))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.Requests.WithLabelValues("none", "400")))
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	handler.NewHealthHandler().RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
