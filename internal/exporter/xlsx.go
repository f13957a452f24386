package exporter

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "snap"

type XLSXExporter struct{}

func (e *XLSXExporter) Format() Format {
	return FormatXLSX
}

func (e *XLSXExporter) Export(dir string, table *domain.ReportTable) (string, error) {
	rows := table.Freeze()

	path, err := writeAtomic(dir, FileName(table.Window, FormatXLSX), func(w io.Writer) error {
		return EncodeXLSX(w, rows)
	})
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(rows),
	}).Info("exporter: xlsx report written")

	return path, nil
}

// EncodeXLSX grava uma única planilha; impressões e gasto ficam como células numéricas.
func EncodeXLSX(w io.Writer, rows []domain.DailyStat) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(Columns))
	for _, column := range Columns {
		header = append(header, column)
	}
	if err := xl.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := []interface{}{
			row.CampaignID,
			row.PeriodStart.Format(time.RFC3339),
			row.PeriodEnd.Format(time.RFC3339),
			row.Impressions,
			row.Spend,
		}
		if err := xl.SetSheetRow(sheetName, cellRef, &values); err != nil {
			return err
		}
	}

	return xl.Write(w)
}
