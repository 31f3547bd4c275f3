package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"bolajon-kids/models"
	"bolajon-kids/utils"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramService sends new-order notifications to a Telegram channel.
// The bot token and channel id live only on the server; the browser talks
// to our /api/telegram endpoint and never sees the credentials.
type TelegramService struct {
	token   string
	chatID  string
	apiBase string
	client  *http.Client
}

// NewTelegramService creates a new TelegramService instance
func NewTelegramService(token, chatID string) *TelegramService {
	return &TelegramService{
		token:   token,
		chatID:  chatID,
		apiBase: telegramAPIBase,
		client:  &http.Client{},
	}
}

// Ensure TelegramService implements NotificationSink
var _ NotificationSink = (*TelegramService)(nil)

// FormatOrderMessage builds the notification text for one order. The
// output is Telegram Markdown: backticked values, starred section headers.
// Keep the shape stable — the channel renderer rejects malformed markup.
// The comment line is omitted entirely when the comment is empty.
func FormatOrderMessage(record *models.OrderRecord) string {
	var b strings.Builder

	b.WriteString("🛍 *Yangi buyurtma!*\n\n")

	b.WriteString("*Mahsulot:*\n")
	fmt.Fprintf(&b, "`%s`\n", record.ProductName)
	fmt.Fprintf(&b, "`ID: %s`\n\n", record.ProductID)

	fmt.Fprintf(&b, "*Narxi:* `%s %s`\n\n", utils.FormatUZS(record.Price), record.Currency)

	b.WriteString("*Variant:*\n")
	fmt.Fprintf(&b, "`Rang: %s`\n", record.SelectedColorLabel)
	fmt.Fprintf(&b, "`O'lcham: %d sm (%s)`\n", record.SelectedSize, record.SelectedSizeAgeLabel)
	fmt.Fprintf(&b, "`Til: %s`\n\n", record.Language)

	b.WriteString("*Mijoz:*\n")
	fmt.Fprintf(&b, "`Ism: %s`\n", record.CustomerName)
	fmt.Fprintf(&b, "`Telefon: %s`\n", record.CustomerPhone)
	fmt.Fprintf(&b, "`Tuman: %s`\n", record.CustomerDistrict)
	fmt.Fprintf(&b, "`Manzil: %s`\n", record.CustomerAddress)
	if record.Comment != "" {
		fmt.Fprintf(&b, "`Izoh: %s`\n", record.Comment)
	}
	b.WriteString("\n")

	b.WriteString("*Rasm:*\n")
	fmt.Fprintf(&b, "%s\n\n", record.CurrentImageURL)

	fmt.Fprintf(&b, "_Vaqt: %s_", record.Timestamp)

	return b.String()
}

// sendMessageRequest is the Bot API sendMessage payload
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Notify formats the order and sends it to the configured channel
func (s *TelegramService) Notify(ctx context.Context, record *models.OrderRecord) error {
	payload := sendMessageRequest{
		ChatID:                s.chatID,
		Text:                  FormatOrderMessage(record),
		ParseMode:             "Markdown",
		DisableWebPagePreview: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call telegram api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("✓ Telegram notification sent to channel %s", s.chatID)
	return nil
}
