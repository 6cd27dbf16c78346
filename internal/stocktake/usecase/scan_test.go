package usecase

import (
	"testing"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture() []model.InventoryItem {
	return []model.InventoryItem{
		{
			ID: "serialized", ProductName: "Phone X",
			ActualQuantity: 1, SerialNumbers: []string{"SN-001"}, Barcode: "PX-BAR",
		},
		{
			ID: "bulk", ProductName: "USB-C Cable",
			ActualQuantity: 2, IsAccessory: true, Barcode: "CABLE-01",
		},
	}
}

func TestMatchScanSerialApplied(t *testing.T) {
	items := scanFixture()

	outcome := matchScan(items, "sn-001")

	require.Equal(t, matchApplied, outcome.status)
	assert.Equal(t, viaSerial, outcome.via)
	assert.Equal(t, 1, items[0].PickedQuantity)
}

func TestMatchScanSerialBlockedAtCeiling(t *testing.T) {
	items := scanFixture()
	items[0].PickedQuantity = 1

	outcome := matchScan(items, "SN-001")

	require.Equal(t, matchBlocked, outcome.status)
	assert.Equal(t, 1, items[0].PickedQuantity, "blocked scan must not mutate")
}

func TestMatchScanBarcodeMayExceedActual(t *testing.T) {
	items := scanFixture()

	for i := 0; i < 3; i++ {
		outcome := matchScan(items, "CABLE-01")
		require.Equal(t, matchApplied, outcome.status)
		assert.Equal(t, viaBarcode, outcome.via)
	}

	assert.Equal(t, 3, items[1].PickedQuantity)
	assert.Greater(t, items[1].PickedQuantity, items[1].ActualQuantity)
}

func TestMatchScanSerialTakesPriorityOverBarcode(t *testing.T) {
	// "01" is a substring of both the serial SN-001 and the barcode
	// CABLE-01; the serial pass must win.
	items := scanFixture()

	outcome := matchScan(items, "01")

	require.Equal(t, matchApplied, outcome.status)
	assert.Equal(t, viaSerial, outcome.via)
	assert.Equal(t, "serialized", outcome.item.ID)
}

func TestMatchScanTrimsAndCaseFolds(t *testing.T) {
	items := scanFixture()

	outcome := matchScan(items, "  cable-01  ")

	require.Equal(t, matchApplied, outcome.status)
	assert.Equal(t, "bulk", outcome.item.ID)
}

func TestMatchScanNotFound(t *testing.T) {
	items := scanFixture()

	outcome := matchScan(items, "nope")
	require.Equal(t, matchNotFound, outcome.status)

	outcome = matchScan(items, "   ")
	require.Equal(t, matchNotFound, outcome.status)

	assert.Equal(t, 0, items[0].PickedQuantity)
	assert.Equal(t, 0, items[1].PickedQuantity)
}

func TestMatchScanEachEventIsOneIncrement(t *testing.T) {
	items := scanFixture()

	matchScan(items, "CABLE-01")
	matchScan(items, "CABLE-01")

	assert.Equal(t, 2, items[1].PickedQuantity, "two scans are two increments")
}
