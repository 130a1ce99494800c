package constants

// HTTP header and content-type constants.
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"

	ContentTypeJSON         = "application/json"
	ContentTypeText         = "text/plain"
	ContentTypeTextMarkdown = "text/markdown"

	HealthCheckResponse = `{"status":"ok"}`
)
