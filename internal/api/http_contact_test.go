package api

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

type fakeNotifier struct {
	received chan *entity.DbContact
}

func (f *fakeNotifier) NotifyContact(_ context.Context, contact *entity.DbContact) {
	f.received <- contact
}

func contactForm(t *testing.T, fields map[string]string) (*strings.Reader, string) {
	t.Helper()
	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return strings.NewReader(body.String()), writer.FormDataContentType()
}

func TestCreateContactStoresAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{received: make(chan *entity.DbContact, 1)}
	handler := newTestHandler(t, repo)
	handler.notifier = notifier

	router := gin.New()
	router.POST("/contact", handler.CreateContact)

	body, contentType := contactForm(t, map[string]string{
		"fio":        "Aliyeva Nodira",
		"email":      "nodira@example.uz",
		"phone":      "+998901234567",
		"message_uz": "Standart matni haqida savol",
	})
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if len(repo.contacts) != 1 {
		t.Fatalf("stored contacts = %d, want 1", len(repo.contacts))
	}
	if repo.contacts[0].Fio != "Aliyeva Nodira" {
		t.Fatalf("fio = %q", repo.contacts[0].Fio)
	}

	select {
	case contact := <-notifier.received:
		if contact.Email != "nodira@example.uz" {
			t.Fatalf("notified email = %q", contact.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called")
	}
}

func TestCreateContactRequiresCoreFields(t *testing.T) {
	repo := newFakeRepo()
	handler := newTestHandler(t, repo)

	router := gin.New()
	router.POST("/contact", handler.CreateContact)

	body, contentType := contactForm(t, map[string]string{
		"fio":   "No Message",
		"email": "nobody@example.uz",
		"phone": "+998900000000",
	})
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if len(repo.contacts) != 0 {
		t.Fatalf("stored contacts = %d, want 0", len(repo.contacts))
	}
}

func TestListNewsValidatesLang(t *testing.T) {
	repo := newFakeRepo()
	repo.news = []entity.DbNews{{ID: 1, TitleUZ: "Yangilik", TitleRU: "Новость", ContentUZ: "Matn"}}
	handler := newTestHandler(t, repo)

	router := gin.New()
	router.GET("/news", handler.ListNews)

	req := httptest.NewRequest(http.MethodGet, "/news?lang=de", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unsupported lang: status = %d, want 400", recorder.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/news?lang=ru", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	var page struct {
		Items []entity.NewsView `json:"items"`
		Total int64             `json:"total"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Title != "Новость" {
		t.Fatalf("unexpected page: %+v", page)
	}
}
