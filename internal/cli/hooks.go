package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyvalid/pkg/observability"
)

// logHooks reports registry traffic and per-package verdicts at debug level,
// so they show up with --verbose.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

var (
	_ observability.HTTPHooks      = (*logHooks)(nil)
	_ observability.ValidatorHooks = (*logHooks)(nil)
)

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "host", host, "path", path, "err", err)
}

func (h *logHooks) OnRunStart(_ context.Context, total int) {
	h.logger.Debug("run started", "candidates", total)
}

func (h *logHooks) OnPackageChecked(_ context.Context, name string, releases int, valid bool, d time.Duration) {
	if releases < 0 {
		h.logger.Debug("checked", "name", name, "found", false, "valid", valid)
		return
	}
	h.logger.Debug("checked", "name", name, "releases", releases, "valid", valid, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnRunComplete(_ context.Context, checked, valid int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run aborted", "checked", checked, "err", err)
		return
	}
	h.logger.Debug("run finished", "checked", checked, "valid", valid, "duration", d.Round(time.Millisecond))
}
