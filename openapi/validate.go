package openapi

// Validate checks the mandatory top-level fields of a parsed document:
// openapi, info (with info.title and info.version), and paths. All checks
// run; the resulting ValidationError carries every missing field in check
// order. Presence only — no type checks, no $ref resolution, no meta-schema
// validation.
func Validate(doc *Value) error {
	var missing []string

	if _, ok := doc.Field("openapi"); !ok {
		missing = append(missing, "openapi")
	}
	if info, ok := doc.Field("info"); !ok {
		missing = append(missing, "info")
	} else {
		if _, ok := info.Field("title"); !ok {
			missing = append(missing, "info.title")
		}
		if _, ok := info.Field("version"); !ok {
			missing = append(missing, "info.version")
		}
	}
	if _, ok := doc.Field("paths"); !ok {
		missing = append(missing, "paths")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
