package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"bolajon-kids/models"
	"bolajon-kids/service"
)

// TelegramController is the credential-holding intermediary in front of
// the Telegram Bot API. The bot token and channel id never leave the
// server; clients post a raw order record here and this endpoint formats
// and forwards the message.
type TelegramController struct {
	telegram *service.TelegramService // nil when credentials are not configured
}

// NewTelegramController creates a new TelegramController
func NewTelegramController(telegram *service.TelegramService) *TelegramController {
	return &TelegramController{telegram: telegram}
}

// telegramResponse is the response body for POST /api/telegram
type telegramResponse struct {
	Success bool   `json:"success"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Notify handles POST /api/telegram
// Accepts an order record body and forwards the formatted notification.
// Missing credentials are not an error — notifications are simply
// disabled and the endpoint reports {"success":true,"skipped":true}.
func (c *TelegramController) Notify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if c.telegram == nil {
		log.Printf("⚠️  Notify: Telegram credentials not configured, skipping notification")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(telegramResponse{Success: true, Skipped: true})
		return
	}

	var record models.OrderRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Printf("❌ Notify: Failed to decode request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(telegramResponse{Success: false, Error: "Invalid request body"})
		return
	}
	defer r.Body.Close()

	if err := c.telegram.Notify(r.Context(), &record); err != nil {
		log.Printf("❌ Notify: Telegram send failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(telegramResponse{Success: false, Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(telegramResponse{Success: true})
}
