package docs

import _ "embed"

// UsageGuide is the embedded usage guide served by the guide tool.
//
// It documents every tool the server exposes, the argument shapes they
// accept, and the recommended import → explore → request workflow.
//
//go:embed usage.md
var UsageGuide string
