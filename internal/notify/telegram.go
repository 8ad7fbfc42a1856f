package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tmsiti/internal/config"
	"tmsiti/internal/entity"

	"github.com/sirupsen/logrus"
)

// Notifier announces new contact submissions to the staff channel. Delivery is
// best effort: a failed notification never fails the originating request.
type Notifier interface {
	NotifyContact(ctx context.Context, contact *entity.DbContact)
}

// TelegramNotifier posts submissions to a Telegram chat via the Bot API.
type TelegramNotifier struct {
	apiBase string
	token   string
	chatID  string
	client  *http.Client
}

const telegramAPIBase = "https://api.telegram.org"

func NewTelegramNotifier(cfg config.Config) *TelegramNotifier {
	return &TelegramNotifier{
		apiBase: telegramAPIBase,
		token:   cfg.TelegramBotToken,
		chatID:  cfg.TelegramChatID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a bot token and chat are configured.
func (n *TelegramNotifier) Enabled() bool {
	return n != nil && n.token != "" && n.chatID != ""
}

// NotifyContact posts the submission to the configured chat. Retries once on
// failure, then logs and gives up.
func (n *TelegramNotifier) NotifyContact(ctx context.Context, contact *entity.DbContact) {
	if !n.Enabled() || contact == nil {
		return
	}

	text := fmt.Sprintf("Yangi murojaat #%d\nF.I.O: %s\nEmail: %s\nTelefon: %s\nMavzu: %s\n\n%s",
		contact.ID, contact.Fio, contact.Email, contact.Phone, contact.CategoryUZ, contact.MessageUZ)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if lastErr = n.sendMessage(ctx, text); lastErr == nil {
			return
		}
		if ctx.Err() != nil {
			break
		}
	}
	logrus.WithError(lastErr).WithField("contact_id", contact.ID).Warn("telegram notification failed")
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": n.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage: status %d", resp.StatusCode)
	}
	return nil
}
