package exporter

import (
	"encoding/csv"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
)

type CSVExporter struct{}

func (e *CSVExporter) Format() Format {
	return FormatCSV
}

func (e *CSVExporter) Export(dir string, table *domain.ReportTable) (string, error) {
	rows := table.Freeze()

	path, err := writeAtomic(dir, FileName(table.Window, FormatCSV), func(w io.Writer) error {
		return EncodeCSV(w, rows)
	})
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(rows),
	}).Info("exporter: csv report written")

	return path, nil
}

func EncodeCSV(w io.Writer, rows []domain.DailyStat) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writer.Write(record(row)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
