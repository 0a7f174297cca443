package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
)

// ExportService writes repurpose results to text files
type ExportService struct {
	now func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{now: time.Now}
}

// Export writes result to dir as contentply-export-<unix millis>.txt and returns the file path.
// An empty dir means the current directory.
func (s *ExportService) Export(result *domain.RepurposeResult, dir string) (string, error) {
	if result == nil || len(result.Results) == 0 {
		return "", fmt.Errorf("nothing to export")
	}
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("contentply-export-%d.txt", s.now().UnixMilli()))
	if err := os.WriteFile(path, []byte(domain.FormatExport(result)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	logging.Logger.Info("Results exported", "path", path, "variants", result.VariantCount())
	return path, nil
}
