package exporter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/pkg/utils"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Columns é o cabeçalho do arquivo, sem coluna de índice.
var Columns = []string{"campaign_id", "start_time", "end_time", "impressions", "spend"}

type Exporter interface {
	Format() Format
	Export(dir string, table *domain.ReportTable) (string, error)
}

func New(format string) (Exporter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatCSV, "":
		return &CSVExporter{}, nil
	case FormatXLSX:
		return &XLSXExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FileName segue o padrão snap_<início>_<fim>.<ext>.
func FileName(window domain.DateWindow, format Format) string {
	return fmt.Sprintf("snap_%s_%s.%s", window.StartDate(), window.EndDate(), format)
}

func record(row domain.DailyStat) []string {
	return []string{
		row.CampaignID,
		row.PeriodStart.Format(time.RFC3339),
		row.PeriodEnd.Format(time.RFC3339),
		strconv.FormatInt(row.Impressions, 10),
		strconv.FormatFloat(row.Spend, 'f', -1, 64),
	}
}

// writeAtomic grava num temporário do mesmo diretório e só renomeia no fim,
// então uma falha nunca deixa um relatório pela metade no destino.
func writeAtomic(dir, name string, encode func(w io.Writer) error) (string, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("exporter: creating output dir %s: %w", dir, err)
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("exporter: generating temp name: %w", err)
	}

	target := filepath.Join(dir, name)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", name, suffix))

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("exporter: creating temp file: %w", err)
	}

	cleanup := func() {
		_ = file.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logrus.WithError(rmErr).WithField("path", tmpPath).Warn("exporter: could not remove temp file")
		}
	}

	buffered := bufio.NewWriter(file)
	if err := encode(buffered); err != nil {
		cleanup()
		return "", fmt.Errorf("exporter: encoding %s: %w", name, err)
	}

	if err := buffered.Flush(); err != nil {
		cleanup()
		return "", fmt.Errorf("exporter: writing %s: %w", name, err)
	}

	if err := file.Sync(); err != nil {
		cleanup()
		return "", fmt.Errorf("exporter: syncing %s: %w", name, err)
	}

	if err := file.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("exporter: closing %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		cleanup()
		return "", fmt.Errorf("exporter: moving report into place: %w", err)
	}

	return target, nil
}
