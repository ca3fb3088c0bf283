// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-data-keeper/internal/config"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// fileNameHeader carries the user-visible display name on raw file uploads.
const fileNameHeader = "x-file-name"

type httpPlatformAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPPlatformAdapter constructs an HTTP/REST implementation of
// [PlatformAdapter]. It normalises and validates the platform domain from
// platformCfg, configures the underlying resty client with the resolved base
// URL, the request timeout, and the basic-auth credential pair, and attaches
// a per-request X-Request-Id header for traceability.
//
// Returns an error if platformCfg.Domain is empty or cannot be parsed as a
// valid URL.
func NewHTTPPlatformAdapter(platformCfg config.Platform, authCfg config.Auth, adapterCfg config.Adapter, log *logger.Logger) (PlatformAdapter, error) {
	baseURL, err := normalizeBaseURL(platformCfg.Domain)
	if err != nil {
		return nil, fmt.Errorf("invalid platform domain: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetBasicAuth(authCfg.KeyID, authCfg.KeySecret)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &httpPlatformAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty domain")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("domain must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Response envelopes: the publishing API wraps resources in a "resource" key.
type (
	revisionEnvelope struct {
		Resource models.Revision `json:"resource"`
	}
	sourceEnvelope struct {
		Resource models.Source `json:"resource"`
	}
	jobEnvelope struct {
		Resource models.Job `json:"resource"`
	}
)

// LookupDataset implements [PlatformAdapter]. It GETs /api/views/{fourfour}
// and decodes the dataset attributes. Returns [ErrNotFound] (wrapped) for an
// unknown identifier.
func (h *httpPlatformAdapter) LookupDataset(ctx context.Context, fourfour string) (models.Dataset, error) {
	var dataset models.Dataset

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&dataset).
		Get("/api/views/" + url.PathEscape(fourfour))
	if err != nil {
		return models.Dataset{}, transportError("lookup dataset", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dataset{}, err
	}

	h.logger.Debug().Str("fourfour", dataset.FourFour).Str("display_type", dataset.DisplayType).Msg("dataset looked up")
	return dataset, nil
}

// OpenRevision implements [PlatformAdapter]. It POSTs the revision action to
// POST /api/publishing/v1/revision/{fourfour} and returns the created draft,
// including its sequence number.
func (h *httpPlatformAdapter) OpenRevision(ctx context.Context, fourfour string, typ models.RevisionType, visibility models.Visibility) (models.Revision, error) {
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	var env revisionEnvelope
	body := map[string]models.RevisionAction{
		"action": {Type: typ, Permission: visibility},
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env).
		Post("/api/publishing/v1/revision/" + url.PathEscape(fourfour))
	if err != nil {
		return models.Revision{}, transportError("open revision", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Revision{}, err
	}

	rev := env.Resource
	if rev.FourFour == "" {
		rev.FourFour = fourfour
	}

	h.logger.Debug().Str("fourfour", rev.FourFour).Int64("revision_seq", rev.Seq).Msg("revision opened")
	return rev, nil
}

// UploadSource implements [PlatformAdapter]. It streams body unmodified to
// POST /api/publishing/v1/revision/{id}/{seq}/source with filename in the
// x-file-name header.
func (h *httpPlatformAdapter) UploadSource(ctx context.Context, rev models.Revision, filename string, body io.Reader) (models.Source, error) {
	var env sourceEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(fileNameHeader, filename).
		SetBody(body).
		SetResult(&env).
		Post(revisionPath(rev, "source"))
	if err != nil {
		return models.Source{}, transportError("upload source", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Source{}, err
	}

	h.logger.Debug().Str("fourfour", rev.FourFour).Int64("revision_seq", rev.Seq).Str("filename", filename).Msg("source uploaded")
	return env.Resource, nil
}

// UploadAttachment implements [PlatformAdapter]. It streams body unmodified
// to POST /api/publishing/v1/revision/{id}/{seq}/attachment with displayName
// in the x-file-name header and decodes the generated filename and asset id
// from the response.
func (h *httpPlatformAdapter) UploadAttachment(ctx context.Context, rev models.Revision, displayName string, body io.Reader) (models.AttachmentUpload, error) {
	var upload models.AttachmentUpload

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(fileNameHeader, displayName).
		SetBody(body).
		SetResult(&upload).
		Post(revisionPath(rev, "attachment"))
	if err != nil {
		return models.AttachmentUpload{}, transportError("upload attachment", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AttachmentUpload{}, err
	}

	h.logger.Debug().Str("fourfour", rev.FourFour).Int64("revision_seq", rev.Seq).Str("asset_id", upload.FileID).Msg("attachment uploaded")
	return upload, nil
}

// UpdateRevision implements [PlatformAdapter]. It PUTs the update to the
// revision resource. Attributes present in update replace the stored values
// wholesale; in particular the attachment list must always be complete.
func (h *httpPlatformAdapter) UpdateRevision(ctx context.Context, rev models.Revision, update models.RevisionUpdate) (models.Revision, error) {
	var env revisionEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&env).
		Put(revisionPath(rev, ""))
	if err != nil {
		return models.Revision{}, transportError("update revision", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Revision{}, err
	}

	updated := env.Resource
	if updated.FourFour == "" {
		updated.FourFour = rev.FourFour
		updated.Seq = rev.Seq
	}

	return updated, nil
}

// ApplyRevision implements [PlatformAdapter]. It PUTs to the revision's
// apply endpoint, starting the asynchronous publish, and returns the created
// job. A revision with no source set is a server-side error propagated
// unchanged.
func (h *httpPlatformAdapter) ApplyRevision(ctx context.Context, rev models.Revision) (models.Job, error) {
	var env jobEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&env).
		Put(revisionPath(rev, "apply"))
	if err != nil {
		return models.Job{}, transportError("apply revision", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Job{}, err
	}

	job := env.Resource
	if job.FourFour == "" {
		job.FourFour = rev.FourFour
		job.Seq = rev.Seq
	}

	h.logger.Debug().Str("fourfour", job.FourFour).Int64("revision_seq", job.Seq).Str("status", string(job.Status)).Msg("revision applied")
	return job, nil
}

// GetJob implements [PlatformAdapter]. It GETs the revision's apply endpoint
// and returns the current job status. Idempotent; polled by the publish
// service until the status is terminal.
func (h *httpPlatformAdapter) GetJob(ctx context.Context, rev models.Revision) (models.Job, error) {
	var env jobEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&env).
		Get(revisionPath(rev, "apply"))
	if err != nil {
		return models.Job{}, transportError("get job", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Job{}, err
	}

	job := env.Resource
	if job.FourFour == "" {
		job.FourFour = rev.FourFour
		job.Seq = rev.Seq
	}

	return job, nil
}

// PatchMetadata implements [PlatformAdapter]. It PATCHes the minimal custom
// field document to PATCH /api/views/metadata/v1/{fourfour}. The server
// performs the merge; the client sends only the fields being changed.
func (h *httpPlatformAdapter) PatchMetadata(ctx context.Context, fourfour string, patch models.MetadataPatch) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/views/metadata/v1/" + url.PathEscape(fourfour))
	if err != nil {
		return transportError("patch metadata", err)
	}

	return mapHTTPError(resp)
}

// revisionPath builds a publishing endpoint path scoped to a revision.
// suffix may be empty for the revision resource itself.
func revisionPath(rev models.Revision, suffix string) string {
	path := fmt.Sprintf("/api/publishing/v1/revision/%s/%d", url.PathEscape(rev.FourFour), rev.Seq)
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}

// transportError wraps connection-level failures (the request never produced
// a platform response) with [ErrTransientNetwork] so callers can identify
// the only error class that is safe to retry.
func transportError(op string, err error) error {
	return fmt.Errorf("%s request: %w", op, errors.Join(ErrTransientNetwork, err))
}
