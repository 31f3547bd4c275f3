package service

import (
	"context"
	"log"
	"time"

	"bolajon-kids/models"
	"bolajon-kids/repository"
)

// StructuredSink records an order in the structured backend (the
// spreadsheet). Its outcome decides whether the submission succeeded.
type StructuredSink interface {
	Append(ctx context.Context, record *models.OrderRecord) error
}

// NotificationSink alerts staff of a new order (the Telegram channel).
// Its outcome never affects the submission result.
type NotificationSink interface {
	Notify(ctx context.Context, record *models.OrderRecord) error
}

// OrderSubmitterInterface defines the contract for the order pipeline
type OrderSubmitterInterface interface {
	SubmitOrder(ctx context.Context, record *models.OrderRecord) models.SubmitResult
}

const (
	structuredTimeout   = 10 * time.Second
	notificationTimeout = 8 * time.Second
)

// genericSubmitError is the only failure message the customer ever sees
const genericSubmitError = "Failed to submit order"

// OrderService delivers one order record to the structured-data sink and
// the notification sink. The policy is strictly sequential: the spreadsheet
// append must succeed first; only then is the notification attempted, and
// a notification failure is logged without affecting the result.
type OrderService struct {
	structured StructuredSink
	notifier   NotificationSink
	backup     StructuredSink
	archive    repository.OrderRepositoryInterface
}

// NewOrderService creates a new OrderService. structured may be nil when
// no spreadsheet backend is configured — every submission then fails with
// the generic message instead of crashing. notifier, backup and archive
// are optional and skipped when nil.
func NewOrderService(
	structured StructuredSink,
	notifier NotificationSink,
	backup StructuredSink,
	archive repository.OrderRepositoryInterface,
) *OrderService {
	return &OrderService{
		structured: structured,
		notifier:   notifier,
		backup:     backup,
		archive:    archive,
	}
}

// Ensure OrderService implements OrderSubmitterInterface
var _ OrderSubmitterInterface = (*OrderService)(nil)

// SubmitOrder performs one best-effort send per sink. No retry, no dedup:
// a failed submission is resubmitted by the customer from the form.
func (s *OrderService) SubmitOrder(ctx context.Context, record *models.OrderRecord) models.SubmitResult {
	if s.structured == nil {
		log.Printf("❌ SubmitOrder: No structured-data sink configured, rejecting order for %s", record.CustomerPhone)
		return models.SubmitResult{Success: false, Error: genericSubmitError}
	}

	// Step 1: the spreadsheet append is mandatory. A failure here is the
	// only user-visible failure, and it short-circuits the notification.
	appendCtx, cancel := context.WithTimeout(ctx, structuredTimeout)
	err := s.structured.Append(appendCtx, record)
	cancel()
	if err != nil {
		log.Printf("❌ SubmitOrder: Structured sink failed: %v", err)
		return models.SubmitResult{Success: false, Error: genericSubmitError}
	}

	// Step 2: staff notification, diagnostics only on failure
	if s.notifier != nil {
		notifyCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
		if err := s.notifier.Notify(notifyCtx, record); err != nil {
			log.Printf("⚠️  SubmitOrder: Notification sink failed (order still accepted): %v", err)
		}
		cancel()
	}

	// Step 3: optional secondary webhook, same best-effort class as the
	// notification
	if s.backup != nil {
		backupCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
		if err := s.backup.Append(backupCtx, record); err != nil {
			log.Printf("⚠️  SubmitOrder: Backup webhook failed (order still accepted): %v", err)
		}
		cancel()
	}

	// Step 4: optional local archive for /admin/orders
	if s.archive != nil {
		if _, err := s.archive.Insert(ctx, record); err != nil {
			log.Printf("⚠️  SubmitOrder: Failed to archive order (order still accepted): %v", err)
		}
	}

	log.Printf("✅ SubmitOrder: Order accepted for %s (%s, size %d)",
		record.CustomerName, record.SelectedColorID, record.SelectedSize)
	return models.SubmitResult{Success: true}
}
