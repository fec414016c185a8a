// Package content embeds the YAML documents that make up the product's
// static catalog: question bank, guidance results, job postings, the canned
// resume analysis and page copy.
package content

import "embed"

//go:embed *.yaml
var FS embed.FS
