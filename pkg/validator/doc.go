// Package validator filters a list of candidate package names down to those
// published on the registry with more than one release.
//
// # Overview
//
// A [Validator] reads the candidate list, asks the [Registry] about each name
// in order and writes the names that pass to the output list:
//
//	client := pypi.NewClient(pypi.DefaultBaseURL, 10*time.Second)
//	v := validator.New(client, afero.NewOsFs(), validator.Options{
//	    InputPath:  "files/pip_packages.txt",
//	    OutputPath: "valid_pip_packages.txt",
//	    Progress:   os.Stdout,
//	})
//	res, err := v.Run(ctx)
//
// # Verdicts
//
// A name is valid when its project record lists at least [MinReleases]
// releases. Names the registry reports as missing (404) or rejects (other
// 4xx) are invalid but are not errors.
//
// # Failure Handling
//
// Every other failure ends the run: transport errors, 5xx responses,
// malformed records and context cancellation. Nothing is retried, and the
// output list is only written after every name has been checked, so a failed
// run leaves any previous output in place.
//
// # Ordering
//
// Requests are sequential. The output is the input with invalid names
// removed; relative order and duplicates are preserved.
package validator
