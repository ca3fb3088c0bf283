// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/MKhiriev/go-data-keeper/internal/adapter"
	"github.com/MKhiriev/go-data-keeper/internal/config"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/internal/store"
)

// Services aggregates all datakeeper services behind their interfaces.
type Services struct {
	Publish     PublishService
	Attachments AttachmentService
	Metadata    MetadataService
	Export      ExportService
}

// NewServices wires the service layer. journal may be nil to disable the
// local revision journal (journaling is best-effort either way).
func NewServices(platform adapter.PlatformAdapter, journal store.RevisionJournal, publishCfg config.Publish, log *logger.Logger) *Services {
	publish := NewPublishService(platform, journal, publishCfg, log)

	return &Services{
		Publish:     publish,
		Attachments: NewAttachmentService(platform, publish, journal, log),
		Metadata:    NewMetadataService(platform, log),
		Export:      NewExportService(log),
	}
}
