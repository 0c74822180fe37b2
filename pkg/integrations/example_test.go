package integrations_test

import (
	"fmt"

	"github.com/matzehuels/pyvalid/pkg/integrations"
)

func ExampleNormalizePkgName() {
	// Package names are normalized to lowercase with hyphens (PEP 503)
	fmt.Println(integrations.NormalizePkgName("FastAPI"))
	fmt.Println(integrations.NormalizePkgName("my_package"))
	fmt.Println(integrations.NormalizePkgName("zope.interface"))
	// Output:
	// fastapi
	// my-package
	// zope-interface
}

func ExamplePathEscape() {
	// Names are escaped before they are placed into a registry URL
	fmt.Println(integrations.PathEscape("requests"))
	fmt.Println(integrations.PathEscape("odd name"))
	// Output:
	// requests
	// odd%20name
}
