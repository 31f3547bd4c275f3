package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"bolajon-kids/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsService appends order rows to a Google Sheets spreadsheet
type SheetsService struct {
	client        *sheets.Service
	spreadsheetID string
	writeRange    string
}

// NewSheetsService creates a new SheetsService instance
// credentialsPath should be the path to the Service Account JSON file
func NewSheetsService(credentialsPath, spreadsheetID, writeRange string) (*SheetsService, error) {
	ctx := context.Background()

	// Create Sheets service using credentials file
	// option.WithCredentialsFile automatically handles Service Account authentication
	sheetsService, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	if writeRange == "" {
		writeRange = "Orders!A:P"
	}

	return &SheetsService{
		client:        sheetsService,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
	}, nil
}

// Ensure SheetsService implements StructuredSink
var _ StructuredSink = (*SheetsService)(nil)

// Append writes one order as a row at the end of the configured range
func (s *SheetsService) Append(ctx context.Context, record *models.OrderRecord) error {
	row := []interface{}{
		record.Timestamp,
		record.ProductID,
		record.ProductName,
		record.Price,
		record.Currency,
		record.SelectedColorID,
		record.SelectedColorLabel,
		record.SelectedSize,
		record.SelectedSizeAgeLabel,
		string(record.Language),
		record.CustomerName,
		record.CustomerPhone,
		record.CustomerDistrict,
		record.CustomerAddress,
		record.Comment,
		record.CurrentImageURL,
	}

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := s.client.Spreadsheets.Values.
		Append(s.spreadsheetID, s.writeRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append order row: %w", err)
	}

	log.Printf("✓ Order row appended to spreadsheet %s", s.spreadsheetID)
	return nil
}

// WebhookSink posts the raw order record as JSON to an external endpoint.
// Used for Apps-Script-style spreadsheet endpoints and for the optional
// backup webhook. Only transport success is observed; the response body
// is opaque.
type WebhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink creates a new WebhookSink for the given URL
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url:    url,
		client: &http.Client{},
	}
}

// Ensure WebhookSink implements StructuredSink
var _ StructuredSink = (*WebhookSink)(nil)

// Append posts the order record to the webhook URL
func (s *WebhookSink) Append(ctx context.Context, record *models.OrderRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal order record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post order to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
