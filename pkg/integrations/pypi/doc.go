// Package pypi provides an HTTP client for the Python Package Index JSON API.
//
// # Overview
//
// This package fetches project records from PyPI (https://pypi.org), the
// official repository for Python packages.
//
// # Usage
//
//	client := pypi.NewClient(pypi.DefaultBaseURL, 10*time.Second)
//
//	project, err := client.FetchProject(ctx, "fastapi")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // no such project
//	}
//
//	fmt.Println(project.Name, project.ReleaseCount())
//
// # Project
//
// [Client.FetchProject] returns a [Project] containing:
//
//   - Name, Version: Project identity from the info block
//   - Releases: the "releases" mapping, keyed by version
//
// A response without a "releases" object is rejected with [ErrMalformed].
package pypi
