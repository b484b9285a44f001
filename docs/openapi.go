package docs

import _ "embed"

// OpenAPIYAML is the raw generated spec, served on /openapi.yaml.
//
//go:embed swagger.yaml
var OpenAPIYAML []byte
