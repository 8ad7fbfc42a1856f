package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func regulatoryRouter(handler *HTTPHandler) *gin.Engine {
	router := gin.New()
	router.PUT("/shnq/:id", handler.UpdateShnq)
	router.PUT("/standards/:id", handler.UpdateStandard)
	return router
}

func TestUpdateShnqRejectsOversizedTranslatedTitle(t *testing.T) {
	handler := newTestHandler(t, newFakeRepo())
	router := regulatoryRouter(handler)

	payload, err := json.Marshal(map[string]string{
		"title_ru": strings.Repeat("н", 300),
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/shnq/1", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", recorder.Code, recorder.Body.String())
	}
	var body APIError
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != ErrCodeValidation {
		t.Fatalf("code = %q, want %q", body.Code, ErrCodeValidation)
	}
}

func TestUpdateStandardRejectsBlankDescription(t *testing.T) {
	handler := newTestHandler(t, newFakeRepo())
	router := regulatoryRouter(handler)

	req := httptest.NewRequest(http.MethodPut, "/standards/1", strings.NewReader(`{"description_uz":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", recorder.Code, recorder.Body.String())
	}
	var body APIError
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != ErrCodeValidation {
		t.Fatalf("code = %q, want %q", body.Code, ErrCodeValidation)
	}
}
