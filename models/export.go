// SPDX-License-Identifier: Apache-2.0

package models

// MetadataRecord is one entry of a bulk metadata export. The export format
// is open-ended, so records are kept as generic mappings: the filter
// transform touches only the keys it knows about and passes everything else
// through untouched.
type MetadataRecord map[string]any

// Export field names the filter transform operates on.
const (
	ExportFieldName       = "name"
	ExportFieldTags       = "tags"
	ExportFieldMasterTags = "master_tags"
)

// Name returns the record's name field, or an empty string if it is missing
// or not a string.
func (r MetadataRecord) Name() string {
	name, _ := r[ExportFieldName].(string)
	return name
}
