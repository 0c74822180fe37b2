// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. The CLI registers hooks at startup; the
// registry client and the validator emit events through them.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    observability.SetValidatorHooks(&myValidatorHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Validator().OnRunStart(ctx, len(names))
//	// ... validate ...
//	observability.Validator().OnRunComplete(ctx, checked, valid, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Validator Hooks
// =============================================================================

// ValidatorHooks receives events from a validation run.
type ValidatorHooks interface {
	// OnRunStart records the start of a run over total candidate names.
	OnRunStart(ctx context.Context, total int)

	// OnPackageChecked records the verdict for a single candidate.
	// releases is -1 when the registry had no record for the name.
	OnPackageChecked(ctx context.Context, name string, releases int, valid bool, duration time.Duration)

	// OnRunComplete records the end of a run. err is nil on success.
	OnRunComplete(ctx context.Context, checked, valid int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopValidatorHooks is a no-op implementation of ValidatorHooks.
type NoopValidatorHooks struct{}

func (NoopValidatorHooks) OnRunStart(context.Context, int) {}
func (NoopValidatorHooks) OnPackageChecked(context.Context, string, int, bool, time.Duration) {
}
func (NoopValidatorHooks) OnRunComplete(context.Context, int, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	validatorHooks ValidatorHooks = NoopValidatorHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetValidatorHooks registers custom validator hooks.
// This should be called once at application startup before any run starts.
func SetValidatorHooks(h ValidatorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		validatorHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Validator returns the registered validator hooks.
func Validator() ValidatorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return validatorHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	validatorHooks = NoopValidatorHooks{}
	httpHooks = NoopHTTPHooks{}
}
