package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"shopdesk/internal/models"
)

// Generator produces PDF exports. Kept as an interface so handlers can
// be tested without gofpdf output.
type Generator interface {
	ClientList(clients []*models.Client) ([]byte, error)
}

type ListGenerator struct {
	Title string
}

func NewListGenerator(title string) *ListGenerator {
	return &ListGenerator{Title: title}
}

func (g *ListGenerator) ClientList(clients []*models.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(g.Title, false)
	pdf.SetAuthor("ShopDesk", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, g.Title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	widths := []float64{50, 45, 35, 25, 25}
	headers := []string{"Name", "Shop", "Mobile", "Delivery", "Payment"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range clients {
		var shop, payment string
		if len(c.Shops) > 0 {
			shop = c.Shops[0].ShopName
		}
		if len(c.Payments) > 0 {
			payment = c.Payments[0].Value
		}
		cells := []string{c.FullName(), shop, c.MobileNumber, c.DeliveryDay, payment}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render client list pdf: %w", err)
	}
	return buf.Bytes(), nil
}
