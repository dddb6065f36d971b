// Package milo is the core of a conversational Sui wallet: it classifies
// natural-language commands into typed intents, builds the matching
// transactions, and tracks their submission. Chat rendering, speech input
// and wallet key management live outside this module.
package milo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Divine-mercyx/MILO/clients"
	"github.com/Divine-mercyx/MILO/contacts"
	"github.com/Divine-mercyx/MILO/intent"
	"github.com/Divine-mercyx/MILO/logger"
	"github.com/Divine-mercyx/MILO/metrics"
	"github.com/Divine-mercyx/MILO/query"
	"github.com/Divine-mercyx/MILO/submission"
	"github.com/Divine-mercyx/MILO/txbuilder"
	"github.com/Divine-mercyx/MILO/types"
	"github.com/Divine-mercyx/MILO/upload"
)

// Version information
const Version = "1.0.0"

// Milo wires the intent pipeline: source -> resolver -> builder -> signer
// -> submission, plus the read-only balance path and the blob uploader.
// Every collaborator is injected at construction; there are no package-
// level singletons.
type Milo struct {
	config  *types.Config
	log     logger.Logger
	metrics metrics.Recorder
	timeout time.Duration

	source   intent.Source
	signer   clients.Signer
	executor clients.Executor
	reader   clients.Reader

	builder   *txbuilder.Builder
	submitter *submission.Service
	balances  *query.BalanceService
	store     *contacts.Store
	uploader  *upload.WalrusClient

	account     string
	observer    submission.Observer
	refreshHook submission.RefreshHook

	closers []func()
}

// Reply is what the conversational layer renders for one user message.
type Reply struct {
	Text string `json:"text"`

	// Record is present when the message triggered a submission attempt.
	Record *types.TransactionRecord `json:"record,omitempty"`
}

// New creates a ready Milo instance. The source chain defaults to
// parser-first with a Gemini fallback when an API key is configured; the
// chain endpoints default to the configured network's fullnode.
func New(config *types.Config, opts ...Option) (*Milo, error) {
	if config == nil {
		config = &types.Config{}
	}
	if config.Network == "" {
		config.Network = types.NetworkTestnet
	}

	m := &Milo{
		config:  config,
		log:     logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
		timeout: config.DefaultTimeout,
	}
	if m.timeout <= 0 {
		m.timeout = 30 * time.Second
	}
	if config.LogLevel != "" {
		m.log = logger.NewZapLogger(config.LogLevel)
	}
	if config.EnableMetrics {
		m.metrics = metrics.NewPrometheusRecorder()
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.executor == nil || m.reader == nil {
		sui, err := clients.NewSuiClient(config.Network, config.RPCUrl, m.timeout)
		if err != nil {
			return nil, err
		}
		if m.executor == nil {
			m.executor = sui
		}
		if m.reader == nil {
			m.reader = sui
		}
		m.closers = append(m.closers, sui.Close)
	}

	if m.source == nil {
		sources := []intent.Source{intent.NewParser()}
		if config.GeminiAPIKey != "" {
			classifier, err := intent.NewGeminiClassifier(context.Background(), config.GeminiAPIKey, config.GeminiModel)
			if err != nil {
				return nil, err
			}
			sources = append(sources, classifier)
			m.closers = append(m.closers, func() { classifier.Close() })
		}
		m.source = intent.NewChain(sources...)
	}

	if config.ContactsPath != "" {
		store, err := contacts.Open(config.ContactsPath)
		if err != nil {
			return nil, types.NewConfigError("failed to open contact store: %v", err)
		}
		m.store = store
		m.closers = append(m.closers, func() { store.Close() })
	}

	m.builder = txbuilder.NewBuilder("", "", config.DefaultGasBudget)
	m.balances = query.NewBalanceService(m.reader, m.timeout, m.log)
	m.uploader = upload.NewWalrusClient(config.WalrusPublisherURL, config.WalrusAggregatorURL, m.timeout)

	m.submitter = submission.NewService(m.executor, m.timeout, m.log, m.metrics)
	m.submitter.SetObserver(m.observer)
	if m.refreshHook != nil {
		m.submitter.SetRefreshHook(m.refreshHook)
	}

	return m, nil
}

// HandleMessage drives one conversation turn. Within the turn, intent
// resolution strictly precedes building, building precedes signing, and
// signing precedes submission. Every taxonomy error becomes a user-visible
// reply; only unexpected failures surface as errors.
func (m *Milo) HandleMessage(ctx context.Context, text string, snapshot []types.Contact) (*Reply, error) {
	if snapshot == nil && m.store != nil {
		loaded, err := m.store.List()
		if err != nil {
			return nil, err
		}
		snapshot = loaded
	}

	start := time.Now()
	result, err := m.source.Classify(ctx, text, snapshot)
	m.metrics.ObserveLatency("classify", time.Since(start), nil)
	if err != nil {
		return m.replyForError(err)
	}

	if result.Kind == intent.KindConversation {
		return &Reply{Text: result.Reply}, nil
	}

	return m.executeIntent(ctx, result.Intent, snapshot)
}

func (m *Milo) executeIntent(ctx context.Context, in *types.Intent, snapshot []types.Contact) (*Reply, error) {
	labels := map[string]string{"action": in.Action.String()}
	m.metrics.IncCounter("intent_received", labels)
	m.log.Info("intent received", map[string]any{"action": in.Action.String()})

	if in.Action == types.ActionQueryBalance {
		return m.answerBalance(ctx, in)
	}

	// Recipient names are resolved here, never inside the builder.
	if in.Action == types.ActionTransfer {
		address, err := contacts.Resolve(in.Recipient, snapshot)
		if err != nil {
			return m.replyForError(err)
		}
		in.Recipient = address
	}

	tx, err := m.builder.Build(in)
	if err != nil {
		return m.replyForError(err)
	}

	if m.signer == nil {
		return m.replyForError(types.NewSigningError(errors.New("no wallet connected")))
	}

	signed, err := m.signer.Sign(ctx, tx)
	if err != nil {
		return m.replyForError(types.NewSigningError(err))
	}

	record, err := m.submitter.Submit(ctx, signed)
	if err != nil {
		reply, rerr := m.replyForError(err)
		if reply != nil {
			reply.Record = record
		}
		return reply, rerr
	}

	text := fmt.Sprintf("Transaction successful! Digest: %s", record.Digest)
	if url := m.config.Network.ExplorerTxURL(record.Digest); url != "" {
		text += "\nView on explorer: " + url
	}
	return &Reply{Text: text, Record: record}, nil
}

func (m *Milo) answerBalance(ctx context.Context, in *types.Intent) (*Reply, error) {
	owner := in.Recipient
	if owner == "" {
		owner = m.account
	}
	if owner == "" {
		return m.replyForError(types.NewValidationError("no account connected for balance query"))
	}

	amount, err := m.balances.GetBalance(ctx, owner, in.Asset)
	if err != nil {
		return m.replyForError(err)
	}
	return &Reply{Text: fmt.Sprintf("Balance: %g %s", amount, types.NativeAsset)}, nil
}

// replyForError converts a taxonomy error into a chat reply. Errors
// outside the taxonomy propagate to the caller unchanged.
func (m *Milo) replyForError(err error) (*Reply, error) {
	code := types.CodeOf(err)
	if code == "" {
		return nil, err
	}
	m.metrics.IncCounter("intent_error", map[string]string{"action": code})
	m.log.Warn("turn ended with error", map[string]any{"code": code, "error": err.Error()})
	return &Reply{Text: err.Error()}, nil
}

// Classify exposes the intent source directly.
func (m *Milo) Classify(ctx context.Context, text string, snapshot []types.Contact) (*intent.Result, error) {
	return m.source.Classify(ctx, text, snapshot)
}

// BuildTransaction exposes the builder directly.
func (m *Milo) BuildTransaction(in *types.Intent) (*txbuilder.Transaction, error) {
	return m.builder.Build(in)
}

// Balance exposes the read-only balance path directly.
func (m *Milo) Balance(ctx context.Context, owner string, asset types.Asset) (float64, error) {
	return m.balances.GetBalance(ctx, owner, asset)
}

// Contacts returns the persistent contact store, or nil when none is
// configured.
func (m *Milo) Contacts() *contacts.Store {
	return m.store
}

// Uploader returns the blob upload collaborator.
func (m *Milo) Uploader() *upload.WalrusClient {
	return m.uploader
}

// Close releases all owned collaborators.
func (m *Milo) Close() {
	for _, c := range m.closers {
		c()
	}
	m.closers = nil
}
