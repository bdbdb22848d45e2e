package reports

import (
	"log/slog"
	"net/http"
	"time"

	"trackadmin/infrastructure/sqlite"
)

// ProjectsPDFHandler renders one register page per project, with a
// code 128 barcode of the project id.
func ProjectsPDFHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := loadProjectRegister(r.Context(), db)
		if err != nil {
			slog.Error("load project register failed", slog.Any("err", err))
			http.Error(w, "failed to load projects", http.StatusInternalServerError)
			return
		}
		if len(rows) == 0 {
			http.Error(w, "no projects to report", http.StatusNotFound)
			return
		}
		pdfBytes, err := renderProjectRegisterPDF(rows, time.Now())
		if err != nil {
			slog.Error("render project register failed", slog.Any("err", err))
			http.Error(w, "failed to render pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=projects.pdf")
		_, _ = w.Write(pdfBytes)
	}
}

func ProjectsCSVHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := loadProjectRegister(r.Context(), db)
		if err != nil {
			slog.Error("load project register failed", slog.Any("err", err))
			http.Error(w, "failed to load projects", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=projects.csv")
		if err := writeProjectRegisterCSV(w, rows); err != nil {
			slog.Error("write project register csv failed", slog.Any("err", err))
		}
	}
}
