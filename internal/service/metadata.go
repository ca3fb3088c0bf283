// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-data-keeper/internal/adapter"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
)

type metadataService struct {
	platform adapter.PlatformAdapter
	logger   *logger.Logger
}

func NewMetadataService(platform adapter.PlatformAdapter, log *logger.Logger) MetadataService {
	return &metadataService{platform: platform, logger: log}
}

// SetCustomField implements [MetadataService]. The patch carries only the
// one field being changed; the platform merges it into the stored document.
func (s *metadataService) SetCustomField(ctx context.Context, fourfour, category, field string, value any) error {
	if category == "" || field == "" {
		return ErrInvalidCustomField
	}

	patch := models.NewCustomFieldPatch(category, field, value)
	if err := s.platform.PatchMetadata(ctx, fourfour, patch); err != nil {
		return fmt.Errorf("patch metadata of %s: %w", fourfour, err)
	}

	s.logger.Info().
		Str("fourfour", fourfour).
		Str("category", category).
		Str("field", field).
		Msg("custom metadata field updated")

	return nil
}
