// SPDX-License-Identifier: Apache-2.0

package models

// MetadataPatch is the body of a metadata PATCH request. It intentionally
// carries nothing but the custom fields being changed: the platform merges
// the document server-side, and sending unrelated keys risks clobbering them.
type MetadataPatch struct {
	// CustomFields maps category name to field name to value.
	CustomFields map[string]map[string]any `json:"customFields"`
}

// NewCustomFieldPatch builds the minimal patch that sets a single custom
// field nested under category.
func NewCustomFieldPatch(category, field string, value any) MetadataPatch {
	return MetadataPatch{
		CustomFields: map[string]map[string]any{
			category: {field: value},
		},
	}
}
