package service

import (
	"context"
	"errors"
	"testing"

	"bolajon-kids/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStructuredSink counts Append calls and fails on demand
type fakeStructuredSink struct {
	calls int
	err   error
}

func (f *fakeStructuredSink) Append(ctx context.Context, record *models.OrderRecord) error {
	f.calls++
	return f.err
}

// fakeNotificationSink counts Notify calls and fails on demand
type fakeNotificationSink struct {
	calls int
	err   error
}

func (f *fakeNotificationSink) Notify(ctx context.Context, record *models.OrderRecord) error {
	f.calls++
	return f.err
}

func testRecord() *models.OrderRecord {
	return &models.OrderRecord{
		ProductID:     "kids-set-001",
		ProductName:   "Premium Winter Jacket",
		Price:         495000,
		Currency:      "UZS",
		CustomerName:  "Aziz Karimov",
		CustomerPhone: "+998901234567",
		Timestamp:     "2026-01-15T10:30:00Z",
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	structured := &fakeStructuredSink{}
	notifier := &fakeNotificationSink{}
	svc := NewOrderService(structured, notifier, nil, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, structured.calls)
	assert.Equal(t, 1, notifier.calls)
}

func TestSubmitOrderStructuredFailureShortCircuits(t *testing.T) {
	structured := &fakeStructuredSink{err: errors.New("sheet unreachable")}
	notifier := &fakeNotificationSink{}
	svc := NewOrderService(structured, notifier, nil, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	require.False(t, result.Success)
	assert.Equal(t, "Failed to submit order", result.Error)
	assert.Equal(t, 1, structured.calls)
	assert.Equal(t, 0, notifier.calls, "notification must never be attempted after a structured failure")
}

func TestSubmitOrderNotificationFailureIsSwallowed(t *testing.T) {
	structured := &fakeStructuredSink{}
	notifier := &fakeNotificationSink{err: errors.New("telegram down")}
	svc := NewOrderService(structured, notifier, nil, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	assert.True(t, result.Success, "notification outcome never flips a successful append")
	assert.Equal(t, 1, notifier.calls)
}

func TestSubmitOrderWithoutNotifier(t *testing.T) {
	structured := &fakeStructuredSink{}
	svc := NewOrderService(structured, nil, nil, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	assert.True(t, result.Success)
	assert.Equal(t, 1, structured.calls)
}

func TestSubmitOrderWithoutStructuredSinkIsConfigurationError(t *testing.T) {
	notifier := &fakeNotificationSink{}
	svc := NewOrderService(nil, notifier, nil, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	require.False(t, result.Success)
	assert.Equal(t, "Failed to submit order", result.Error)
	assert.Equal(t, 0, notifier.calls)
}

func TestSubmitOrderBackupWebhookFailureIsSwallowed(t *testing.T) {
	structured := &fakeStructuredSink{}
	backup := &fakeStructuredSink{err: errors.New("webhook 500")}
	svc := NewOrderService(structured, nil, backup, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	assert.True(t, result.Success)
	assert.Equal(t, 1, structured.calls)
	assert.Equal(t, 1, backup.calls)
}

func TestSubmitOrderBackupNotCalledOnStructuredFailure(t *testing.T) {
	structured := &fakeStructuredSink{err: errors.New("sheet unreachable")}
	backup := &fakeStructuredSink{}
	svc := NewOrderService(structured, nil, backup, nil)

	result := svc.SubmitOrder(context.Background(), testRecord())

	assert.False(t, result.Success)
	assert.Equal(t, 0, backup.calls)
}
