package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleRegisterRows() []projectRegisterRow {
	return []projectRegisterRow{
		{
			ProjectID:       1,
			ProjectName:     "Billing",
			BugSystemName:   "Main Tracker",
			BugSystemURL:    "https://bugs.example.com",
			BugSystemType:   "Bugzilla",
			RuleManagerName: "Rules",
			RuleManagerURL:  "https://rules.example.com",
			RuleManagerType: "Drools",
		},
		{
			ProjectID:       2,
			ProjectName:     "Checkout",
			BugSystemName:   "Main Tracker",
			BugSystemURL:    "https://bugs.example.com",
			BugSystemType:   "Bugzilla",
			RuleManagerName: "Rules",
			RuleManagerURL:  "https://rules.example.com",
			RuleManagerType: "Drools",
		},
	}
}

func TestRenderProjectRegisterPDF(t *testing.T) {
	pdfBytes, err := renderProjectRegisterPDF(sampleRegisterRows(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("expected pdf bytes")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("expected pdf header, got %q", pdfBytes[:8])
	}
}

func TestRenderProjectRegisterPDFEmpty(t *testing.T) {
	if _, err := renderProjectRegisterPDF(nil, time.Now()); err == nil {
		t.Fatal("expected error for empty register")
	}
}

func TestRenderCode128PNG(t *testing.T) {
	pngBytes, err := renderCode128PNG("PJ00000001", 1200, 260)
	if err != nil {
		t.Fatalf("render barcode: %v", err)
	}
	if len(pngBytes) == 0 {
		t.Fatal("expected png bytes")
	}
}

func TestWriteProjectRegisterCSV(t *testing.T) {
	var out bytes.Buffer
	if err := writeProjectRegisterCSV(&out, sampleRegisterRows()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "project_id,") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,Billing,") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}
