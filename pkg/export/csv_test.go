package export

import (
	"bytes"
	"testing"

	"stockroom/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestWriteInventoryCSV(t *testing.T) {
	summary := []models.LocationInventory{
		{
			LocationName:            "Central Store",
			ItemName:                "Office Chair",
			ItemCode:                "CHAIR",
			TotalQuantity:           10,
			AvailableQuantity:       6,
			InTransitQuantity:       1,
			InUseQuantity:           2,
			TemporaryIssuedQuantity: 1,
		},
		{
			LocationName:      "Annex Store",
			ItemName:          "Standing Desk",
			ItemCode:          "DESK",
			TotalQuantity:     4,
			AvailableQuantity: 4,
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteInventoryCSV(&buf, summary))

	expected := "Store,Item,Item Code,Total,Available,In Transit,In Use,Temp Issued\n" +
		"Central Store,Office Chair,CHAIR,10,6,1,2,1\n" +
		"Annex Store,Standing Desk,DESK,4,4,0,0,0\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteInventoryCSVEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteInventoryCSV(&buf, nil))

	assert.Equal(t, "Store,Item,Item Code,Total,Available,In Transit,In Use,Temp Issued\n", buf.String())
}
