// SPDX-License-Identifier: Apache-2.0

// Package service implements the datakeeper maintenance flows on top of the
// platform adapter: blob replacement through publishing revisions, ordered
// attachment appends, single-field metadata patches, and the purely local
// metadata export transform.
package service

import (
	"context"

	"github.com/MKhiriev/go-data-keeper/models"
)

// PublishService replaces a dataset's blob content through a publishing
// revision and waits for the asynchronous publish job.
type PublishService interface {
	// ReplaceBlob runs the full replace flow: look up the dataset, open a
	// replace revision, upload the file at filePath as the new source, apply
	// the revision, and wait for the publish job to reach a terminal status.
	// Returns the terminal job. A job that ends in failure surfaces as
	// [ErrPublishFailed].
	ReplaceBlob(ctx context.Context, fourfour, filePath string, visibility models.Visibility) (models.Job, error)

	// WaitForJob polls the publish job of rev until its status is terminal,
	// the poll timeout elapses, or ctx is cancelled. onPoll, when non-nil,
	// is invoked once per observed status. Returns the last observed job.
	WaitForJob(ctx context.Context, rev models.Revision, onPoll func(models.Job)) (models.Job, error)
}

// AttachmentService appends attachment files to datasets without disturbing
// existing attachments.
type AttachmentService interface {
	// AddAttachment uploads one attachment to the open revision rev and
	// appends its descriptor to the revision's attachment list
	// (read-modify-write: the complete list is resent). It never applies the
	// revision; the caller remains responsible for publishing. On any
	// failure the revision's attachment list is left exactly as it was.
	AddAttachment(ctx context.Context, rev models.Revision, content AttachmentContent) (models.Revision, error)

	// AttachFiles opens a replace revision on fourfour, adds each content in
	// order (callers control final display order by argument order), applies
	// the revision, and waits for the publish job.
	AttachFiles(ctx context.Context, fourfour string, visibility models.Visibility, contents ...AttachmentContent) (models.Job, error)
}

// MetadataService patches individual custom metadata fields.
type MetadataService interface {
	// SetCustomField updates the single custom field nested under category
	// to value, leaving the rest of the metadata document untouched. The
	// platform is trusted to merge partially; see DESIGN.md for the
	// unverified-contract caveat.
	SetCustomField(ctx context.Context, fourfour, category, field string, value any) error
}

// ExportService transforms bulk metadata exports locally. No network calls.
type ExportService interface {
	// FilterExport keeps records whose name contains marker, strips the tags
	// and master_tags fields, and rewrites names by removing prefix and
	// replacing spaces with underscores. Input records are not mutated.
	FilterExport(records []models.MetadataRecord, marker, prefix string) []models.MetadataRecord

	// TransformFile reads a JSON array of records from inPath, applies
	// FilterExport, and writes the result to outPath (full overwrite).
	// Returns the number of records written.
	TransformFile(inPath, outPath, marker, prefix string) (int, error)
}
