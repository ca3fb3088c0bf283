// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
)

// Default marker and prefix for the export transform, matching the report
// series this tool was built to maintain.
const (
	DefaultExportMarker      = "State Profile Report"
	DefaultExportStripPrefix = "COVID-19 State Profile Report - "
)

type exportService struct {
	logger *logger.Logger
}

func NewExportService(log *logger.Logger) ExportService {
	return &exportService{logger: log}
}

// FilterExport implements [ExportService]. The transform is idempotent on
// its own output: renamed entries no longer contain the prefix, and spaces
// are already underscores, so a second pass changes nothing.
func (s *exportService) FilterExport(records []models.MetadataRecord, marker, prefix string) []models.MetadataRecord {
	kept := make([]models.MetadataRecord, 0, len(records))
	for _, record := range records {
		if !strings.Contains(record.Name(), marker) {
			continue
		}
		kept = append(kept, transformRecord(record, prefix))
	}
	return kept
}

// transformRecord returns a copy of record with the tag fields removed
// (tolerating their absence) and the name rewritten: prefix stripped, spaces
// replaced with underscores. The input record is left untouched.
func transformRecord(record models.MetadataRecord, prefix string) models.MetadataRecord {
	out := models.MetadataRecord(maps.Clone(map[string]any(record)))
	delete(out, models.ExportFieldTags)
	delete(out, models.ExportFieldMasterTags)

	name := out.Name()
	name = strings.ReplaceAll(name, prefix, "")
	name = strings.ReplaceAll(name, " ", "_")
	out[models.ExportFieldName] = name

	return out
}

// TransformFile implements [ExportService]. The output file is fully
// overwritten; no merge with prior contents.
func (s *exportService) TransformFile(inPath, outPath, marker, prefix string) (int, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("read export file: %w", err)
	}

	var records []models.MetadataRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decode export file: %w", err)
	}

	filtered := s.FilterExport(records, marker, prefix)

	payload, err := json.MarshalIndent(filtered, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode filtered export: %w", err)
	}
	if err = os.WriteFile(outPath, payload, 0o644); err != nil {
		return 0, fmt.Errorf("write filtered export: %w", err)
	}

	s.logger.Info().
		Str("in", inPath).
		Str("out", outPath).
		Int("total", len(records)).
		Int("kept", len(filtered)).
		Msg("export filtered")

	return len(filtered), nil
}
