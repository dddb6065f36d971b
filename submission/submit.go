// Package submission executes signed transactions and classifies the
// outcome for the UI layer.
package submission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Divine-mercyx/MILO/clients"
	"github.com/Divine-mercyx/MILO/logger"
	"github.com/Divine-mercyx/MILO/metrics"
	"github.com/Divine-mercyx/MILO/types"
)

// Observer receives every state of a tracked record. The pending state is
// delivered before any network round-trip so the UI can render an
// in-flight indicator with zero latency; the terminal state replaces it
// (same record ID), never coexists with it.
type Observer func(record types.TransactionRecord)

// RefreshHook runs after a successful submission, when the payer's
// native-coin balance has changed.
type RefreshHook func(ctx context.Context)

// Service drives one submission attempt through the
// pending -> success|failed state machine. No automatic retry: a failed
// submission is terminal and a repeated attempt is a brand-new record.
type Service struct {
	executor clients.Executor
	timeout  time.Duration
	log      logger.Logger
	metrics  metrics.Recorder

	observer  Observer
	onSuccess RefreshHook
}

// NewService creates a submission service around a chain executor.
func NewService(executor clients.Executor, timeout time.Duration, log logger.Logger, rec metrics.Recorder) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Service{
		executor: executor,
		timeout:  timeout,
		log:      log,
		metrics:  rec,
	}
}

// SetObserver registers the record observer. Pass nil to drop updates.
func (s *Service) SetObserver(o Observer) {
	s.observer = o
}

// SetRefreshHook registers the balance-refresh hook fired on success.
func (s *Service) SetRefreshHook(h RefreshHook) {
	s.onSuccess = h
}

// Submit hands a signed payload to the network and returns the terminal
// record. The returned error is non-nil exactly when the record is failed.
func (s *Service) Submit(ctx context.Context, signed *types.SignedTransaction) (*types.TransactionRecord, error) {
	record := types.TransactionRecord{
		ID:        uuid.NewString(),
		Status:    types.TxPending,
		Timestamp: time.Now(),
	}
	s.notify(record)
	s.metrics.IncCounter("submission_started", nil)

	submitCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.executor.ExecuteTransactionBlock(submitCtx, signed)
	s.metrics.ObserveLatency("submit", time.Since(start), nil)

	if err != nil {
		return s.fail(record, "", err.Error())
	}

	if result.Effects != nil && result.Effects.Status.Status == "failure" {
		// Rejected post-broadcast: the digest is real, the execution is not.
		reason := result.Effects.Status.Error
		if reason == "" {
			reason = "transaction failed on chain"
		}
		return s.fail(record, result.Digest, reason)
	}

	record.Status = types.TxSuccess
	record.Digest = result.Digest
	record.EventsCount = len(result.Events)
	if result.Effects != nil {
		record.GasUsed = result.Effects.GasUsed.ComputationCost
	}
	record.Timestamp = time.Now()
	s.notify(record)
	s.metrics.IncCounter("submission_succeeded", nil)
	s.log.Info("transaction executed", map[string]any{
		"digest": record.Digest,
		"gas":    record.GasUsed,
		"events": record.EventsCount,
	})

	if s.onSuccess != nil {
		s.onSuccess(ctx)
	}

	return &record, nil
}

func (s *Service) fail(record types.TransactionRecord, digest, reason string) (*types.TransactionRecord, error) {
	record.Status = types.TxFailed
	record.Digest = digest
	record.Error = reason
	record.Timestamp = time.Now()
	s.notify(record)
	s.metrics.IncCounter("submission_failed", nil)
	s.log.Warn("transaction failed", map[string]any{
		"digest": digest,
		"reason": reason,
	})
	return &record, types.NewSubmissionError(reason, digest)
}

func (s *Service) notify(record types.TransactionRecord) {
	if s.observer != nil {
		s.observer(record)
	}
}
