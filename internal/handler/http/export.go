package http

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/xuri/excelize/v2"
)

const (
	exportBaseName  = "tax_jurisdictions"
	exportSheetName = "Jurisdictions"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	table, err := h.services.ResearchService.ExportTable(r.Context(), jurisdictionFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, exportBaseName))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	if err = cw.Write(table.Header); err == nil {
		err = cw.WriteAll(table.Rows)
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("writing csv export failed")
	}
}

func (h *Handler) exportXLSX(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table, err := h.services.ResearchService.ExportTable(r.Context(), jurisdictionFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err = f.SetSheetName("Sheet1", exportSheetName); err != nil {
		writeError(w, r, err)
		return
	}

	if err = writeSheetRow(f, 1, table.Header); err != nil {
		writeError(w, r, err)
		return
	}
	for i, row := range table.Rows {
		if err = writeSheetRow(f, i+2, row); err != nil {
			writeError(w, r, err)
			return
		}
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, exportBaseName))
	w.WriteHeader(http.StatusOK)

	if err = f.Write(w); err != nil {
		log.Err(err).Msg("writing xlsx export failed")
	}
}

func writeSheetRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(exportSheetName, cell, &cells)
}
