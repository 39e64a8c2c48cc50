package api

import (
	"github.com/lib/pq"

	"github.com/rohanj-gh/devfolio-backend/schemas"
)

// filterColumns keeps only the updatable columns of a partial update body.
// Immutable columns (id, created_at) are never in the allowed set, so a
// PATCH cannot touch creation metadata no matter what the body carries.
func filterColumns(body map[string]any, allowed map[string]bool) map[string]any {
	fields := make(map[string]any, len(body))
	for k, v := range body {
		if allowed[k] {
			fields[k] = v
		}
	}
	return fields
}

// toStringArray normalizes a decoded JSON value into a text[] column value.
// Accepts a JSON array of strings or the admin form's comma-separated
// string.
func toStringArray(v any) pq.StringArray {
	switch vals := v.(type) {
	case []any:
		out := make(pq.StringArray, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return pq.StringArray(vals)
	case string:
		return pq.StringArray(schemas.SplitTechStack(vals))
	default:
		return nil
	}
}
