// SPDX-License-Identifier: Apache-2.0

package models

// Attachment describes one secondary file associated with a dataset, distinct
// from its primary blob content. Attachments are stored as an ordered list on
// the revision; order is user-controlled and significant.
type Attachment struct {
	// Name is the user-visible display name of the attachment.
	Name string `json:"name"`

	// Filename is the internal file name the server generated on upload.
	Filename string `json:"filename"`

	// BlobID is unused for asset-backed attachments and is always null on
	// newly uploaded files. Kept so round-tripped descriptors survive intact.
	BlobID *string `json:"blob_id"`

	// AssetID is the server-assigned asset identifier returned by the
	// attachment upload endpoint.
	AssetID string `json:"asset_id"`
}

// AttachmentUpload is the response body of the attachment upload endpoint.
type AttachmentUpload struct {
	// Filename is the internal file name assigned by the server.
	Filename string `json:"filename"`

	// FileID is the asset identifier of the stored file.
	FileID string `json:"file_id"`
}

// Descriptor converts an upload response into the attachment descriptor the
// revision stores, using displayName as the user-visible name.
func (u AttachmentUpload) Descriptor(displayName string) Attachment {
	return Attachment{
		Name:     displayName,
		Filename: u.Filename,
		BlobID:   nil,
		AssetID:  u.FileID,
	}
}
