package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	pverrors "github.com/matzehuels/pyvalid/pkg/errors"
	"github.com/matzehuels/pyvalid/pkg/integrations"
	"github.com/matzehuels/pyvalid/pkg/integrations/pypi"
	"github.com/matzehuels/pyvalid/pkg/listfile"
	"github.com/matzehuels/pyvalid/pkg/observability"
)

// MinReleases is the smallest release count a package needs to be valid.
const MinReleases = 2

// Registry looks up project records by name.
// [*pypi.Client] is the production implementation.
type Registry interface {
	FetchProject(ctx context.Context, name string) (*pypi.Project, error)
}

// Options configures a [Validator].
type Options struct {
	// InputPath is the list of candidate names to read.
	InputPath string

	// OutputPath receives the valid names. It is overwritten on each run.
	OutputPath string

	// Progress receives each valid name, one per line, as soon as it is found.
	// Nil discards progress output.
	Progress io.Writer

	// Logger receives diagnostics. Nil uses log.Default().
	Logger *log.Logger
}

// Result summarizes a completed run.
type Result struct {
	Checked  int           // Candidate names processed
	Valid    []string      // Names with more than one release, in input order
	Rejected int           // Names that were not found, refused or had too few releases
	Duration time.Duration // Wall time of the run
}

// Validator filters candidate names down to published packages with release
// history. It processes names one at a time and issues at most one registry
// request per name.
type Validator struct {
	registry Registry
	fs       afero.Fs
	opts     Options
	logger   *log.Logger
}

// New creates a Validator that reads and writes list files through fs.
func New(registry Registry, fs afero.Fs, opts Options) *Validator {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	return &Validator{
		registry: registry,
		fs:       fs,
		opts:     opts,
		logger:   logger,
	}
}

// Validate reports whether name resolves to a project with more than one
// release.
//
// A project the registry does not know (404) or refuses (other 4xx) is not
// valid, and Validate returns false with a nil error. Names that are unsafe
// to place in a URL are rejected the same way without a request. Any other
// failure, such as a network error or a malformed response, is returned.
func (v *Validator) Validate(ctx context.Context, name string) (bool, error) {
	start := time.Now()
	releases, err := v.releaseCount(ctx, name)
	if err != nil {
		return false, err
	}
	valid := releases >= MinReleases
	observability.Validator().OnPackageChecked(ctx, name, releases, valid, time.Since(start))
	return valid, nil
}

// releaseCount returns -1 for names the registry has no usable record of.
func (v *Validator) releaseCount(ctx context.Context, name string) (int, error) {
	if err := pverrors.ValidatePackageName(name); err != nil {
		v.logger.Warn("skipping package", "name", name, "reason", pverrors.UserMessage(err))
		return -1, nil
	}

	project, err := v.registry.FetchProject(ctx, name)
	switch {
	case err == nil:
		v.logger.Debug("fetched project",
			"name", name,
			"canonical", integrations.NormalizePkgName(project.Name),
			"latest", project.Version,
			"releases", project.ReleaseCount())
		return project.ReleaseCount(), nil
	case errors.Is(err, integrations.ErrNotFound), errors.Is(err, integrations.ErrClient):
		v.logger.Debug("package not in registry", "name", name, "err", err)
		return -1, nil
	case errors.Is(err, integrations.ErrNetwork):
		return 0, pverrors.Wrap(networkCode(err), err, "fetch %s", name)
	case ctx.Err() != nil:
		return 0, err
	default:
		return 0, pverrors.Wrap(pverrors.ErrCodeInternal, err, "fetch %s", name)
	}
}

func networkCode(err error) pverrors.Code {
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return pverrors.ErrCodeTimeout
	}
	return pverrors.ErrCodeNetwork
}

// Run validates every name in the input list and writes the valid ones to
// the output list.
//
// The input is read in full before the first request. Names are checked in
// input order and each valid name is written to Options.Progress as soon as it
// is found. The output file is written once, after the last name; if any name
// fails with an error, Run returns that error and leaves the output untouched.
func (v *Validator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	hooks := observability.Validator()

	names, err := listfile.Read(v.fs, v.opts.InputPath)
	if err != nil {
		hooks.OnRunComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnRunStart(ctx, len(names))
	v.logger.Debug("loaded candidates", "count", len(names), "path", v.opts.InputPath)

	res := &Result{Valid: make([]string, 0, len(names))}
	fail := func(err error) (*Result, error) {
		hooks.OnRunComplete(ctx, res.Checked, len(res.Valid), time.Since(start), err)
		return nil, err
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		ok, err := v.Validate(ctx, name)
		if err != nil {
			return fail(err)
		}
		res.Checked++
		if !ok {
			res.Rejected++
			continue
		}
		res.Valid = append(res.Valid, name)
		if _, err := fmt.Fprintln(v.opts.Progress, name); err != nil {
			return fail(fmt.Errorf("write progress: %w", err))
		}
	}

	if err := listfile.Write(v.fs, v.opts.OutputPath, res.Valid); err != nil {
		return fail(err)
	}

	res.Duration = time.Since(start)
	hooks.OnRunComplete(ctx, res.Checked, len(res.Valid), res.Duration, nil)
	return res, nil
}
