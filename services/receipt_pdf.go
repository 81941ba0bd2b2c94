package services

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	receiptDark  = color.Color{Red: 38, Green: 38, Blue: 34}
	receiptMuted = color.Color{Red: 121, Green: 119, Blue: 109}
)

// GenerateReceiptPDF renders a paid order as a printable receipt.
func GenerateReceiptPDF(order models.Order, email string) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("RECEIPT", props.Text{Size: 24, Style: consts.Bold, Color: receiptDark})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("MODEVA STORE", props.Text{Size: 16, Style: consts.Bold, Color: receiptDark})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("PAID BY", props.Text{Size: 8, Style: consts.Bold, Color: receiptDark})
		})
		m.Col(6, func() {
			m.Text("ORDER DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: receiptDark, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(email, props.Text{Size: 10, Color: receiptDark})
		})
		m.Col(6, func() {
			m.Text(order.Reference, props.Text{Size: 9, Color: receiptDark, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Status: %s", order.Status), props.Text{Size: 9, Color: receiptMuted})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", receiptDate(order.Date)), props.Text{Size: 9, Color: receiptMuted, Align: consts.Right})
		})
	})

	m.Row(8, func() {})

	header := props.Text{Size: 8, Style: consts.Bold, Color: receiptDark, Align: consts.Right}
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Item", props.Text{Size: 8, Style: consts.Bold, Color: receiptDark})
		})
		m.Col(2, func() { m.Text("Qty", header) })
		m.Col(2, func() { m.Text("Price", header) })
		m.Col(2, func() { m.Text("Total", header) })
	})

	cell := props.Text{Size: 9, Color: receiptDark, Align: consts.Right}
	for _, item := range order.Items {
		lineTotal := pricing.LineTotal(item.CurrentPrice, item.Quantity).InexactFloat64()
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{Size: 9, Color: receiptDark})
			})
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", item.Quantity), cell) })
			m.Col(2, func() { m.Text(pricing.Format(item.CurrentPrice), cell) })
			m.Col(2, func() { m.Text(pricing.Format(lineTotal), cell) })
		})
	}

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: receiptDark, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(pricing.Format(order.Total), props.Text{Size: 12, Style: consts.Bold, Color: receiptDark, Align: consts.Right})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for shopping with us!", props.Text{Size: 8, Style: consts.Bold, Color: receiptDark})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[order.receipt] failed to generate PDF: %v", err)
		return nil, fmt.Errorf("failed to generate receipt: %w", err)
	}
	return &buf, nil
}

func receiptDate(iso string) string {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 02, 2006")
}
