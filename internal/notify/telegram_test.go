package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tmsiti/internal/entity"
)

func newTestNotifier(serverURL string) *TelegramNotifier {
	return &TelegramNotifier{
		apiBase: serverURL,
		token:   "test-token",
		chatID:  "12345",
		client:  &http.Client{Timeout: time.Second},
	}
}

func TestNotifyContactSendsMessage(t *testing.T) {
	var got struct {
		ChatID string `json:"chat_id"`
		Text   string `json:"text"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	n.NotifyContact(context.Background(), &entity.DbContact{
		ID:        7,
		Fio:       "Aliyev Ali",
		Email:     "ali@example.uz",
		Phone:     "+998901234567",
		MessageUZ: "Salom",
	})

	if got.ChatID != "12345" {
		t.Fatalf("chat_id = %q", got.ChatID)
	}
	if got.Text == "" {
		t.Fatal("empty message text")
	}
}

func TestNotifyContactRetriesOnce(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	n.NotifyContact(context.Background(), &entity.DbContact{ID: 1, Fio: "Test"})

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestNotifyContactDisabledWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request sent despite missing token")
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	n.token = ""
	n.NotifyContact(context.Background(), &entity.DbContact{ID: 2})
}
