package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/skin-finder/models"
	"github.com/raushankrgupta/skin-finder/narration"
	"github.com/raushankrgupta/skin-finder/session"
	"github.com/raushankrgupta/skin-finder/viewer"
)

type stubResolver struct {
	result []models.SkinData
}

func (s stubResolver) Name() string { return "stub" }

func (s stubResolver) Resolve(ctx context.Context, query string, sink narration.Sink) []models.SkinData {
	sink.Line("resolving " + query)
	return s.result
}

type nopAdapter struct{}

func (nopAdapter) Reconstruct(string) {}
func (nopAdapter) LoadImage(string)   {}
func (nopAdapter) Highlight(int)      {}

func configureTestSession(result []models.SkinData) {
	s := session.New(stubResolver{result: result}, &narration.BuilderSink{}, viewer.NewController(nopAdapter{}))
	s.Narrator = &narration.Narrator{
		Steps: []string{"analyzing..."},
		Sleep: func(time.Duration) {},
	}
	Configure(s)
}

func threeSkins() []models.SkinData {
	return []models.SkinData{
		{ImageURL: "u0", Title: "Variant 1", DetailLink: "d0"},
		{ImageURL: "u1", Title: "Variant 2", DetailLink: "d1"},
		{ImageURL: "u2", Title: "Variant 3", DetailLink: "d2"},
	}
}

func TestGenerateHandlerSuccess(t *testing.T) {
	configureTestSession(threeSkins())

	req := httptest.NewRequest(http.MethodGet, "/generate?name=Steve", nil)
	rec := httptest.NewRecorder()
	GenerateHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var state models.VariantState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	require.Len(t, state.Items, 3)
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, "Variant 1", state.Items[0].Title)
	assert.Equal(t, "Variant 3", state.Items[2].Title)
}

func TestGenerateHandlerJSONBody(t *testing.T) {
	configureTestSession(threeSkins())

	body := strings.NewReader(`{"name":"Steve"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	rec := httptest.NewRecorder()
	GenerateHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateHandlerBlankName(t *testing.T) {
	configureTestSession(threeSkins())

	for _, target := range []string{"/generate", "/generate?name=", "/generate?name=%20%20"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		GenerateHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestGenerateHandlerNoResults(t *testing.T) {
	configureTestSession(nil)

	req := httptest.NewRequest(http.MethodGet, "/generate?name=Steve", nil)
	rec := httptest.NewRecorder()
	GenerateHandler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Generation failed")
}

func TestSelectVariantHandler(t *testing.T) {
	configureTestSession(threeSkins())

	// Load a result set first
	genReq := httptest.NewRequest(http.MethodGet, "/generate?name=Steve", nil)
	GenerateHandler(httptest.NewRecorder(), genReq)

	req := httptest.NewRequest(http.MethodPost, "/variants/select", strings.NewReader(`{"index":2}`))
	rec := httptest.NewRecorder()
	SelectVariantHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u2")

	cur, ok := Active.Controller.Current()
	require.True(t, ok)
	assert.Equal(t, "u2", cur.ImageURL)
}

func TestSelectVariantHandlerOutOfRange(t *testing.T) {
	configureTestSession(threeSkins())
	genReq := httptest.NewRequest(http.MethodGet, "/generate?name=Steve", nil)
	GenerateHandler(httptest.NewRecorder(), genReq)

	req := httptest.NewRequest(http.MethodPost, "/variants/select", strings.NewReader(`{"index":7}`))
	rec := httptest.NewRecorder()
	SelectVariantHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Cursor untouched
	cur, ok := Active.Controller.Current()
	require.True(t, ok)
	assert.Equal(t, "u0", cur.ImageURL)
}

func TestSelectVariantHandlerRejectsGet(t *testing.T) {
	configureTestSession(threeSkins())

	req := httptest.NewRequest(http.MethodGet, "/variants/select", nil)
	rec := httptest.NewRecorder()
	SelectVariantHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCurrentVariantHandlerBeforeAnyCycle(t *testing.T) {
	configureTestSession(threeSkins())

	req := httptest.NewRequest(http.MethodGet, "/variants/current", nil)
	rec := httptest.NewRecorder()
	CurrentVariantHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCurrentVariantHandlerAfterCycle(t *testing.T) {
	configureTestSession(threeSkins())
	genReq := httptest.NewRequest(http.MethodGet, "/generate?name=Steve", nil)
	GenerateHandler(httptest.NewRecorder(), genReq)

	req := httptest.NewRequest(http.MethodGet, "/variants/current", nil)
	rec := httptest.NewRecorder()
	CurrentVariantHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var skin models.SkinData
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&skin))
	assert.Equal(t, "u0", skin.ImageURL)
}
