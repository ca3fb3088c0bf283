// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-data-keeper/internal/config"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpPlatformAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpPlatformAdapter {
	t.Helper()

	platformCfg := config.Platform{Domain: serverURL}
	authCfg := config.Auth{KeyID: "key-id", KeySecret: "key-secret"}
	adapterCfg := config.Adapter{RequestTimeout: 5 * time.Second}

	a, err := NewHTTPPlatformAdapter(platformCfg, authCfg, adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPlatformAdapter)
}

func testRevision() models.Revision {
	return models.Revision{FourFour: "j88g-nmjt", Seq: 3}
}

// ── LookupDataset ────────────────────────────────────────────────────────────

func TestLookupDataset_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/views/j88g-nmjt", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key-id", user)
		assert.Equal(t, "key-secret", pass)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Dataset{
			FourFour:     "j88g-nmjt",
			Name:         "State Profile Report",
			DisplayType:  "blob",
			BlobFilename: "report.pdf",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.LookupDataset(context.Background(), "j88g-nmjt")

	require.NoError(t, err)
	assert.Equal(t, "j88g-nmjt", got.FourFour)
	assert.True(t, got.IsBlob())
}

func TestLookupDataset_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such view"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LookupDataset(context.Background(), "zzzz-zzzz")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupDataset_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LookupDataset(context.Background(), "j88g-nmjt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLookupDataset_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	a := newTestAdapter(t, srv.URL)
	_, err := a.LookupDataset(context.Background(), "j88g-nmjt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransientNetwork)
}

// ── OpenRevision ─────────────────────────────────────────────────────────────

func TestOpenRevision_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/publishing/v1/revision/j88g-nmjt", r.URL.Path)

		var body map[string]models.RevisionAction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.RevisionTypeReplace, body["action"].Type)
		assert.Equal(t, models.VisibilityPublic, body["action"].Permission)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(revisionEnvelope{Resource: models.Revision{
			ID:       101,
			FourFour: "j88g-nmjt",
			Seq:      3,
			Action:   body["action"],
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	rev, err := a.OpenRevision(context.Background(), "j88g-nmjt", models.RevisionTypeReplace, "")

	require.NoError(t, err)
	assert.Equal(t, int64(3), rev.Seq)
	assert.Equal(t, "j88g-nmjt", rev.FourFour)
}

func TestOpenRevision_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.OpenRevision(context.Background(), "j88g-nmjt", models.RevisionTypeReplace, models.VisibilityPrivate)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── UploadSource ─────────────────────────────────────────────────────────────

func TestUploadSource_ByteForByte(t *testing.T) {
	payload := []byte("%PDF-1.7 raw pdf bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/publishing/v1/revision/j88g-nmjt/3/source", r.URL.Path)
		assert.Equal(t, "new_pdf.pdf", r.Header.Get("x-file-name"))

		got, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sourceEnvelope{Resource: models.Source{ID: 55}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	src, err := a.UploadSource(context.Background(), testRevision(), "new_pdf.pdf", bytes.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, int64(55), src.ID)
}

// ── UploadAttachment ─────────────────────────────────────────────────────────

func TestUploadAttachment_Success(t *testing.T) {
	payload := []byte("attachment body")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/publishing/v1/revision/j88g-nmjt/3/attachment", r.URL.Path)
		assert.Equal(t, "Notes.pdf", r.Header.Get("x-file-name"))

		got, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AttachmentUpload{
			Filename: "notes-generated.pdf",
			FileID:   "asset-123",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	upload, err := a.UploadAttachment(context.Background(), testRevision(), "Notes.pdf", bytes.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, "notes-generated.pdf", upload.Filename)
	assert.Equal(t, "asset-123", upload.FileID)

	desc := upload.Descriptor("Notes.pdf")
	assert.Equal(t, "Notes.pdf", desc.Name)
	assert.Nil(t, desc.BlobID)
	assert.Equal(t, "asset-123", desc.AssetID)
}

func TestUploadAttachment_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upload failed"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UploadAttachment(context.Background(), testRevision(), "Notes.pdf", bytes.NewReader([]byte("x")))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── UpdateRevision ───────────────────────────────────────────────────────────

func TestUpdateRevision_SendsCompleteAttachmentList(t *testing.T) {
	attachments := []models.Attachment{
		{Name: "First.pdf", Filename: "first.pdf", AssetID: "a-1"},
		{Name: "Second.pdf", Filename: "second.pdf", AssetID: "a-2"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/publishing/v1/revision/j88g-nmjt/3", r.URL.Path)

		var update models.RevisionUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.Attachments)
		assert.Equal(t, attachments, *update.Attachments)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(revisionEnvelope{Resource: models.Revision{
			FourFour:    "j88g-nmjt",
			Seq:         3,
			Attachments: attachments,
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	rev, err := a.UpdateRevision(context.Background(), testRevision(), models.RevisionUpdate{Attachments: &attachments})

	require.NoError(t, err)
	assert.Equal(t, attachments, rev.Attachments)
}

// ── ApplyRevision / GetJob ───────────────────────────────────────────────────

func TestApplyRevision_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/publishing/v1/revision/j88g-nmjt/3/apply", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jobEnvelope{Resource: models.Job{
			ID:     7,
			Status: models.JobStatusPending,
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	job, err := a.ApplyRevision(context.Background(), testRevision())

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)
	assert.Equal(t, "j88g-nmjt", job.FourFour)
	assert.False(t, job.Status.Terminal())
}

func TestApplyRevision_NoSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("revision has no source"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ApplyRevision(context.Background(), testRevision())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "revision has no source")
}

func TestGetJob_TerminalStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/publishing/v1/revision/j88g-nmjt/3/apply", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jobEnvelope{Resource: models.Job{
			ID:     7,
			Status: models.JobStatusSuccessful,
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	job, err := a.GetJob(context.Background(), testRevision())

	require.NoError(t, err)
	assert.True(t, job.Status.Terminal())
	assert.True(t, job.Status.Succeeded())
}

// ── PatchMetadata ────────────────────────────────────────────────────────────

func TestPatchMetadata_StructurallyMinimal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/views/metadata/v1/j88g-nmjt", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// exactly one top-level key with exactly the requested path
		require.Len(t, body, 1)
		custom, ok := body["customFields"].(map[string]any)
		require.True(t, ok)
		require.Len(t, custom, 1)
		category, ok := custom["Surveillance"].(map[string]any)
		require.True(t, ok)
		require.Len(t, category, 1)
		assert.Equal(t, "2026-08-29", category["Report Date"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	patch := models.NewCustomFieldPatch("Surveillance", "Report Date", "2026-08-29")
	require.NoError(t, a.PatchMetadata(context.Background(), "j88g-nmjt", patch))
}

func TestPatchMetadata_Validation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("malformed custom fields"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.PatchMetadata(context.Background(), "j88g-nmjt", models.MetadataPatch{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare domain gets https", in: "data.example.gov", want: "https://data.example.gov"},
		{name: "explicit scheme kept", in: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", in: "https://data.example.gov/", want: "https://data.example.gov"},
		{name: "empty", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
