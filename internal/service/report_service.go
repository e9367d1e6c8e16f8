package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/repository/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultReportURLExpiry is how long export links stay valid when not configured
const DefaultReportURLExpiry = 15 * time.Minute

var ErrReportStorageNotConfigured = errors.New("report storage not configured")

// ReportExport holds temporary links to an exported report
type ReportExport struct {
	ID           string    `json:"id"`
	GeneratedAt  time.Time `json:"generatedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
	ChartURL     string    `json:"chartUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	DataURL      string    `json:"dataUrl"`
}

// ReportService exports projection reports (chart images and JSON) to object storage
type ReportService struct {
	projections *ProjectionService
	storage     storage.ReportRepository
	expiry      time.Duration
	now         func() time.Time
}

// NewReportService creates a new ReportService; storage may be nil when exports are disabled
func NewReportService(projections *ProjectionService, storage storage.ReportRepository, expiry time.Duration) *ReportService {
	if expiry <= 0 {
		expiry = DefaultReportURLExpiry
	}
	return &ReportService{
		projections: projections,
		storage:     storage,
		expiry:      expiry,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// IsEnabled indicates whether exports are supported (storage configured)
func (s *ReportService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// Export renders the workspace's current report and uploads it
func (s *ReportService) Export(ctx context.Context, workspaceID int32) (*ReportExport, error) {
	if !s.IsEnabled() {
		return nil, ErrReportStorageNotConfigured
	}

	pr, err := s.projections.GetReport(workspaceID)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	data, err := json.Marshal(NewReportDocument(pr, generatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	chart := RenderProjectionChart(pr.Report.Projection)
	chartPNG, err := encodePNG(chart)
	if err != nil {
		return nil, err
	}
	thumbPNG, err := encodePNG(RenderThumbnail(chart))
	if err != nil {
		return nil, err
	}

	reportID := uuid.New().String()
	objects := []struct {
		name        string
		contentType string
		body        []byte
	}{
		{"chart.png", "image/png", chartPNG},
		{"thumb.png", "image/png", thumbPNG},
		{"report.json", "application/json", data},
	}

	paths := make([]string, 0, len(objects))
	for _, obj := range objects {
		objectPath := fmt.Sprintf("%d/reports/%s/%s", workspaceID, reportID, obj.name)
		path, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(obj.body), obj.contentType, int64(len(obj.body)))
		if err != nil {
			s.cleanup(ctx, paths)
			return nil, fmt.Errorf("failed to upload %s: %w", obj.name, err)
		}
		paths = append(paths, path)
	}

	urls := make([]string, len(paths))
	for i, path := range paths {
		url, err := s.storage.GeneratePresignedURL(ctx, path, s.expiry)
		if err != nil {
			s.cleanup(ctx, paths)
			return nil, fmt.Errorf("failed to sign %s: %w", path, err)
		}
		urls[i] = url
	}

	log.Info().
		Int32("workspace_id", workspaceID).
		Str("report_id", reportID).
		Msg("Exported projection report")

	return &ReportExport{
		ID:           reportID,
		GeneratedAt:  generatedAt,
		ExpiresAt:    generatedAt.Add(s.expiry),
		ChartURL:     urls[0],
		ThumbnailURL: urls[1],
		DataURL:      urls[2],
	}, nil
}

// cleanup removes objects uploaded before a failure; errors are ignored
func (s *ReportService) cleanup(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := s.storage.Delete(ctx, path); err != nil {
			log.Warn().Err(err).Str("object_path", path).Msg("Failed to clean up report object")
		}
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
