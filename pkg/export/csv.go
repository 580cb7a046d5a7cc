// Package export renders location inventory summaries for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"stockroom/pkg/models"
)

var inventoryHeader = []string{
	"Store", "Item", "Item Code", "Total", "Available", "In Transit", "In Use", "Temp Issued",
}

// WriteInventoryCSV streams the summary as plain comma-separated text, one
// row per store and item pair, in the order given.
func WriteInventoryCSV(w io.Writer, summary []models.LocationInventory) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(inventoryHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range summary {
		record := []string{
			row.LocationName,
			row.ItemName,
			row.ItemCode,
			strconv.Itoa(row.TotalQuantity),
			strconv.Itoa(row.AvailableQuantity),
			strconv.Itoa(row.InTransitQuantity),
			strconv.Itoa(row.InUseQuantity),
			strconv.Itoa(row.TemporaryIssuedQuantity),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
