// Package schemas holds the JSON Schemas for request and configuration files.
package schemas

import "embed"

// Names of the bundled schema files.
const (
	EnhancementRequest = "enhancement_request.schema.json"
	Config             = "config.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
