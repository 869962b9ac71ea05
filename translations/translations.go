// Package translations embeds the application string tables.
package translations

import "embed"

// FS holds one YAML file per language.
//
//go:embed *.yaml
var FS embed.FS
