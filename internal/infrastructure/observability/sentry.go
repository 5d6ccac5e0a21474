// Package observability wires the optional Sentry error tracker.
package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry enables Sentry. An empty DSN leaves it disabled, in which case
// captures are dropped by the SDK.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
}

func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// SentryReporter sends internal faults to the current Sentry hub.
type SentryReporter struct{}

func (SentryReporter) CaptureError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}
