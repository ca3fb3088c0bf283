// SPDX-License-Identifier: Apache-2.0

package models

// Dataset is a read-only reference to a published dataset, as returned by the
// platform's view lookup endpoint. It is never mutated directly; all changes
// go through a [Revision].
type Dataset struct {
	// FourFour is the platform's unique short identifier for the dataset,
	// e.g. "j88g-nmjt".
	FourFour string `json:"id"`

	// Name is the human-readable dataset title.
	Name string `json:"name"`

	// DisplayType describes how the platform renders the dataset.
	// Blob datasets report "blob".
	DisplayType string `json:"displayType,omitempty"`

	// BlobFilename is the file name of the current blob content, if the
	// dataset is a blob dataset.
	BlobFilename string `json:"blobFilename,omitempty"`
}

// IsBlob reports whether the dataset is a file-based (blob) dataset rather
// than a tabular one.
func (d Dataset) IsBlob() bool {
	return d.DisplayType == "blob"
}
