// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains the shared HTTP plumbing for registry clients. Each
// registry has its own subpackage:
//
//   - [pypi]: Python Package Index
//
// # Client Pattern
//
// Registry clients embed [Client] and add a typed fetch method:
//
//	client := pypi.NewClient(pypi.DefaultBaseURL, 10*time.Second)
//	project, err := client.FetchProject(ctx, "fastapi")
//
// # Error Classification
//
// [Client.Get] maps HTTP outcomes onto sentinel errors so callers can decide
// which failures are fatal:
//
//   - 404: [ErrNotFound]
//   - other 4xx: [ErrClient]
//   - 5xx, other statuses, transport failures: [ErrNetwork]
//
// Context cancellation is returned as the context's own error.
//
// [pypi]: github.com/matzehuels/pyvalid/pkg/integrations/pypi
package integrations
