// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the hosted open-data publishing platform.
//
// The primary abstraction is [PlatformAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPlatformAdapter]) built on resty with basic-auth
// credentials.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-data-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_adapter_mock.go -package=mock

// PlatformAdapter defines transport-agnostic communication with the
// publishing platform. Implementations are responsible for serialisation,
// authentication, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// The platform is the sole source of truth for legality of an operation: no
// method performs local pre-validation, and every non-2xx response surfaces
// as an error so a caller can never believe a write succeeded when it
// didn't.
type PlatformAdapter interface {
	// LookupDataset fetches the dataset identified by fourfour.
	// Returns [ErrNotFound] (wrapped) if the identifier is unknown or
	// inaccessible, [ErrUnauthorized] / [ErrForbidden] on credential
	// failures.
	LookupDataset(ctx context.Context, fourfour string) (models.Dataset, error)

	// OpenRevision creates a draft revision of the given type on the
	// dataset. visibility controls the dataset's permission once the
	// revision is applied.
	OpenRevision(ctx context.Context, fourfour string, typ models.RevisionType, visibility models.Visibility) (models.Revision, error)

	// UploadSource streams body byte-for-byte as the revision's new blob
	// content. filename is the display name recorded for the blob.
	UploadSource(ctx context.Context, rev models.Revision, filename string, body io.Reader) (models.Source, error)

	// UploadAttachment streams body to the revision's attachment endpoint
	// with displayName carried in the x-file-name header. It only stores the
	// file server-side; associating the returned descriptor with the
	// revision is the caller's responsibility (see service.AddAttachment).
	UploadAttachment(ctx context.Context, rev models.Revision, displayName string, body io.Reader) (models.AttachmentUpload, error)

	// UpdateRevision sets attributes on an open revision. Attachments, when
	// present in update, replace the stored list wholesale.
	UpdateRevision(ctx context.Context, rev models.Revision, update models.RevisionUpdate) (models.Revision, error)

	// ApplyRevision publishes the revision and returns the asynchronous job
	// processing it. A revision without a source is rejected by the server;
	// the error is propagated unchanged.
	ApplyRevision(ctx context.Context, rev models.Revision) (models.Job, error)

	// GetJob fetches the current status of the publish job for the given
	// revision. Safe to call repeatedly; used by the polling wait.
	GetJob(ctx context.Context, rev models.Revision) (models.Job, error)

	// PatchMetadata sends a partial metadata document for the dataset. The
	// server performs the merge; the patch should contain only the fields
	// being changed.
	PatchMetadata(ctx context.Context, fourfour string, patch models.MetadataPatch) error
}
