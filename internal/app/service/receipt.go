package service

import (
	"fmt"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const receiptSheet = "Receipt"

// BuildReceipt renders a confirmation as a single-sheet XLSX workbook.
func BuildReceipt(c *model.Confirmation) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close receipt workbook", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	if err := f.SetSheetName("Sheet1", receiptSheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Shekar Wine Co.", c.Summary.Title},
		{"Reference", c.Reference},
		{"Confirmed", c.ConfirmedAt.Format("2006-01-02 15:04")},
		{"Name", c.Customer.FullName},
		{"Email", c.Customer.Email},
		{"Contact", c.Customer.ContactNumber},
		{"Address", c.Customer.Address},
		{},
		{"Item", "Detail", "Qty", "Unit Price", "Subtotal"},
	}
	for _, line := range c.Summary.Lines {
		rows = append(rows, []interface{}{line.Name, line.Detail, line.Quantity, line.UnitPrice, line.Subtotal})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Subtotal", "", "", "", c.Summary.Subtotal},
	)
	if !c.Summary.IsDonation() {
		rows = append(rows, []interface{}{
			"Delivery", fmt.Sprintf("%s (%s)", c.Summary.Delivery, c.EstimatedDelivery), "", "", c.Summary.DeliveryFee,
		})
	}
	rows = append(rows,
		[]interface{}{"Total", "", "", "", c.Summary.Total},
		[]interface{}{"Street children fed", "", "", "", c.Summary.ChildrenFed},
		[]interface{}{},
		[]interface{}{"Pay via GCash", c.Payment.AccountNumber, c.Payment.AccountName},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(receiptSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(receiptSheet, "A", "B", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to render receipt", err, map[string]interface{}{
			"reference": c.Reference,
		})
		return nil, err
	}
	return buf.Bytes(), nil
}
