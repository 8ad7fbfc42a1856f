package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tmsiti/internal/entity"
	"tmsiti/internal/i18n"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestFromErrorTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid page", entity.ErrInvalidPage, http.StatusBadRequest, ErrCodeInvalidRequest},
		{"invalid page size", entity.ErrInvalidPageSize, http.StatusBadRequest, ErrCodeInvalidRequest},
		{"unsupported lang", i18n.ErrUnsupportedLang, http.StatusBadRequest, ErrCodeInvalidRequest},
		{"bad document code", entity.ErrInvalidDocumentCode, http.StatusUnprocessableEntity, ErrCodeValidation},
		{"missing title", entity.ErrTitleRequired, http.StatusUnprocessableEntity, ErrCodeValidation},
		{"email taken", entity.ErrEmailTaken, http.StatusUnprocessableEntity, ErrCodeEmailExists},
		{"phone taken", entity.ErrPhoneTaken, http.StatusUnprocessableEntity, ErrCodePhoneExists},
		{"bad credentials", entity.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeInvalidCredentials},
		{"locked", entity.ErrAccountLocked, http.StatusUnauthorized, ErrCodeAccountLocked},
		{"pending", entity.ErrAccountPending, http.StatusUnauthorized, ErrCodeAccountPending},
		{"suspended", entity.ErrAccountSuspended, http.StatusUnauthorized, ErrCodeAccountSuspended},
		{"code missing", entity.ErrVerificationNotFound, http.StatusNotFound, ErrCodeVerification},
		{"code expired", entity.ErrVerificationExpired, http.StatusBadRequest, ErrCodeVerification},
		{"code mismatch", entity.ErrVerificationMismatch, http.StatusBadRequest, ErrCodeVerification},
		{"reset invalid", entity.ErrResetTokenInvalid, http.StatusBadRequest, ErrCodeResetToken},
		{"reset expired", entity.ErrResetTokenExpired, http.StatusBadRequest, ErrCodeResetToken},
		{"mail failure", entity.ErrMailDelivery, http.StatusBadGateway, ErrCodeUpstreamFailure},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusUnprocessableEntity, ErrCodeValidation},
		{"missing row", gorm.ErrRecordNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			FromError(c, tc.err)

			if recorder.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tc.wantStatus)
			}
			var body APIError
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", body.Code, tc.wantCode)
			}
			if body.Message == "" {
				t.Fatal("expected a non-empty message")
			}
		})
	}
}

func TestFromErrorUnknownIsOpaque(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	FromError(c, errors.New("dsn contains a password"))

	var body APIError
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "internal server error" {
		t.Fatalf("message = %q, internal details must not leak", body.Message)
	}
}
