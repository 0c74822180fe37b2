package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/pyvalid/pkg/integrations/pypi"
	"github.com/matzehuels/pyvalid/pkg/observability"
	"github.com/matzehuels/pyvalid/pkg/validator"
)

// runValidate executes one validation pass with the effective configuration.
// Each run gets a short ID that is attached to every log line it produces.
func (c *CLI) runValidate(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runID := uuid.NewString()[:8]
	logger := c.Logger.With("run", runID)
	ctx = withLogger(ctx, logger)

	hooks := newLogHooks(logger)
	observability.SetHTTPHooks(hooks)
	observability.SetValidatorHooks(hooks)

	client := pypi.NewClient(cfg.Registry, cfg.Timeout)
	v := validator.New(client, c.Fs, validator.Options{
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
		Progress:   c.Stdout,
		Logger:     logger,
	})

	logger.Info("validating packages", "input", cfg.Input, "registry", client.BaseURL())
	prog := newProgress(loggerFromContext(ctx))

	res, err := v.Run(ctx)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Validated %d packages", res.Checked))
	printSummary(c.Stderr, res, cfg.Output)
	return nil
}
