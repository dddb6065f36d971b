package milo

import (
	"time"

	"github.com/Divine-mercyx/MILO/clients"
	"github.com/Divine-mercyx/MILO/intent"
	"github.com/Divine-mercyx/MILO/logger"
	"github.com/Divine-mercyx/MILO/metrics"
	"github.com/Divine-mercyx/MILO/submission"
)

type Option func(*Milo)

func WithLogger(l logger.Logger) Option {
	return func(m *Milo) {
		m.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(m *Milo) {
		m.metrics = r
	}
}

func WithTimeout(t time.Duration) Option {
	return func(m *Milo) {
		m.timeout = t
	}
}

// WithSource replaces the default intent source chain (parser first,
// Gemini fallback when configured).
func WithSource(s intent.Source) Option {
	return func(m *Milo) {
		m.source = s
	}
}

// WithSigner connects the external wallet. Without a signer, commands that
// need signing are answered with a signing error.
func WithSigner(s clients.Signer) Option {
	return func(m *Milo) {
		m.signer = s
	}
}

// WithExecutor substitutes the chain execution endpoint, mainly for tests.
func WithExecutor(e clients.Executor) Option {
	return func(m *Milo) {
		m.executor = e
	}
}

// WithReader substitutes the chain read endpoint, mainly for tests.
func WithReader(r clients.Reader) Option {
	return func(m *Milo) {
		m.reader = r
	}
}

// WithAccount sets the active account whose balance queries and refreshes
// apply.
func WithAccount(address string) Option {
	return func(m *Milo) {
		m.account = address
	}
}

// WithRecordObserver registers the submission record observer.
func WithRecordObserver(o submission.Observer) Option {
	return func(m *Milo) {
		m.observer = o
	}
}

// WithRefreshHook registers the balance-refresh hook fired after a
// successful submission.
func WithRefreshHook(h submission.RefreshHook) Option {
	return func(m *Milo) {
		m.refreshHook = h
	}
}
