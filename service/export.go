package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"polarplotter/chart"
	"polarplotter/db"
	"polarplotter/models"
)

// ExportService writes chart artifacts into the exports directory and records
// them in the store. Artifacts are plain files; nothing else outlives them.
type ExportService struct {
	exportsDir string
	store      *db.DB
	chromePath string
	pngTimeout time.Duration
}

func NewExportService(exportsDir string, store *db.DB, chromePath string, pngTimeout time.Duration) (*ExportService, error) {
	if err := os.MkdirAll(exportsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create exports directory: %w", err)
	}

	return &ExportService{
		exportsDir: exportsDir,
		store:      store,
		chromePath: chromePath,
		pngTimeout: pngTimeout,
	}, nil
}

// GenerateFileName creates a unique filename with timestamp and nanos.
func (e *ExportService) GenerateFileName(format string) string {
	timestamp := time.Now().Format("20060102_150405")
	nanos := time.Now().UnixNano()
	return fmt.Sprintf("chart_%s_%d.%s", timestamp, nanos, format)
}

// FilePath returns the on-disk path for a stored export. The filename is
// reduced to its base so clients cannot escape the exports directory.
func (e *ExportService) FilePath(filename string) string {
	return filepath.Join(e.exportsDir, filepath.Base(filename))
}

// ListExports returns the recorded exports, newest first.
func (e *ExportService) ListExports() ([]models.ExportRecord, error) {
	return e.store.ListExports()
}

// GetExport returns the record for one exported file.
func (e *ExportService) GetExport(filename string) (*models.ExportRecord, error) {
	return e.store.GetExport(filepath.Base(filename))
}

func (e *ExportService) record(filename, format, sessionID string, size int) (models.ExportRecord, error) {
	rec := models.ExportRecord{
		Filename:  filename,
		Format:    format,
		SessionID: sessionID,
		Size:      int64(size),
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := e.store.StoreExport(rec); err != nil {
		return models.ExportRecord{}, fmt.Errorf("failed to record export: %w", err)
	}
	return rec, nil
}

// SaveHTML serializes the chart to a self-contained interactive document and
// stores it in the exports directory.
func (e *ExportService) SaveHTML(desc models.ChartDescription, sessionID string) (models.ExportRecord, error) {
	html, err := chart.WriteHTML(desc)
	if err != nil {
		return models.ExportRecord{}, err
	}

	filename := e.GenerateFileName("html")
	if err := os.WriteFile(e.FilePath(filename), html, 0644); err != nil {
		return models.ExportRecord{}, fmt.Errorf("failed to write HTML file: %w", err)
	}

	return e.record(filename, "html", sessionID, len(html))
}

// SavePNG renders the interactive document in headless Chrome and screenshots
// the chart node. Requires Chrome/Chromium to be installed on the system.
func (e *ExportService) SavePNG(ctx context.Context, desc models.ChartDescription, sessionID string) (models.ExportRecord, error) {
	html, err := chart.WriteHTML(desc)
	if err != nil {
		return models.ExportRecord{}, err
	}

	// The document is written to a temp file so Chrome can load it by URL.
	tmp, err := os.CreateTemp("", "polarplotter-*.html")
	if err != nil {
		return models.ExportRecord{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return models.ExportRecord{}, fmt.Errorf("failed to write temp file: %w", err)
	}
	tmp.Close()

	png, err := e.renderPNG(ctx, "file://"+tmp.Name())
	if err != nil {
		return models.ExportRecord{}, err
	}

	filename := e.GenerateFileName("png")
	if err := os.WriteFile(e.FilePath(filename), png, 0644); err != nil {
		return models.ExportRecord{}, fmt.Errorf("failed to write PNG file: %w", err)
	}

	return e.record(filename, "png", sessionID, len(png))
}

func (e *ExportService) renderPNG(ctx context.Context, url string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, e.pngTimeout)
	defer cancel()

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("#chart"),
		// Give plotly a moment to finish drawing the trace.
		chromedp.Sleep(time.Second),
		chromedp.Screenshot("#chart", &png, chromedp.NodeVisible),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	return png, nil
}
