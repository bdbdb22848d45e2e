package reports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
)

func renderProjectRegisterPDF(rows []projectRegisterRow, printedAt time.Time) ([]byte, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no projects to render")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Project Register", false)

	for _, row := range rows {
		barcodeValue := fmt.Sprintf("PJ%08d", row.ProjectID)
		barcodePNG, err := renderCode128PNG(barcodeValue, 1200, 260)
		if err != nil {
			return nil, err
		}

		pdf.AddPage()
		projectName := strings.TrimSpace(row.ProjectName)
		if projectName == "" {
			projectName = "Unnamed Project"
		}

		pdf.SetFont("Helvetica", "B", 44)
		pdf.CellFormat(0, 20, projectName, "", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "B", 52)
		pdf.CellFormat(0, 22, fmt.Sprintf("PROJECT ID: %d", row.ProjectID), "", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 16)
		pdf.CellFormat(0, 9, "Bug System: "+row.BugSystemName+" ("+row.BugSystemType+")", "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 9, "Bug System URL: "+row.BugSystemURL, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 9, "Rule Manager: "+row.RuleManagerName+" ("+row.RuleManagerType+")", "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 9, "Rule Manager URL: "+row.RuleManagerURL, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 9, "Printed: "+printedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")

		opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		imageName := fmt.Sprintf("project-barcode-%d", row.ProjectID)
		pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
		pageW, _ := pdf.GetPageSize()
		imgW := 240.0
		imgH := 56.0
		x := (pageW - imgW) / 2
		y := 112.0
		pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")

		pdf.SetY(y + imgH + 6)
		pdf.SetFont("Helvetica", "B", 24)
		pdf.CellFormat(0, 12, barcodeValue, "", 1, "C", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var barcodePNG bytes.Buffer
	if err := png.Encode(&barcodePNG, normalized); err != nil {
		return nil, err
	}
	return barcodePNG.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
