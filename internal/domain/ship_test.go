package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipRecord(t *testing.T) {
	t.Run("fully populated record", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{
			ShipName:    "EVER GIVEN",
			Country:     "Panama",
			TypeSummary: "Cargo",
			Speed:       "13.5",
			Lat:         "36.7783",
			Lon:         "-119.4179",
		})

		assert.Equal(t, "EVER GIVEN", ship.Name)
		assert.Equal(t, "Panama", ship.Country)
		assert.Equal(t, "Cargo", ship.Type)
		require.NotNil(t, ship.Speed)
		assert.Equal(t, 13.5, *ship.Speed)
		require.NotNil(t, ship.Position)
		assert.Equal(t, 36.7783, ship.Position.Lat)
		assert.Equal(t, -119.4179, ship.Position.Lon)
	})

	t.Run("unparseable speed is dropped", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{ShipName: "X", Speed: "bad"})
		assert.Nil(t, ship.Speed)
	})

	t.Run("negative speed is dropped", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{ShipName: "X", Speed: "-3"})
		assert.Nil(t, ship.Speed)
	})

	t.Run("zero speed is kept", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{ShipName: "X", Speed: "0"})
		require.NotNil(t, ship.Speed)
		assert.Equal(t, 0.0, *ship.Speed)
	})

	t.Run("position requires both coordinates", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{Lat: "51.5"})
		assert.Nil(t, ship.Position)

		ship = ParseShipRecord(RawShipRecord{Lat: "51.5", Lon: "not-a-number"})
		assert.Nil(t, ship.Position)

		ship = ParseShipRecord(RawShipRecord{Lat: "51.5", Lon: "0.12"})
		require.NotNil(t, ship.Position)
		assert.Equal(t, Geo{Lat: 51.5, Lon: 0.12}, *ship.Position)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{
			ShipName: "  QUEEN MARY 2 ",
			Country:  " UK ",
			Speed:    " 21.0 ",
		})
		assert.Equal(t, "QUEEN MARY 2", ship.Name)
		assert.Equal(t, "UK", ship.Country)
		require.NotNil(t, ship.Speed)
		assert.Equal(t, 21.0, *ship.Speed)
	})

	t.Run("empty record", func(t *testing.T) {
		ship := ParseShipRecord(RawShipRecord{})
		assert.Empty(t, ship.Name)
		assert.Empty(t, ship.Country)
		assert.Empty(t, ship.Type)
		assert.Nil(t, ship.Speed)
		assert.Nil(t, ship.Position)
	})
}

func TestParseFleet_PreservesOrder(t *testing.T) {
	fleet := ParseFleet([]RawShipRecord{
		{ShipName: "ALPHA"},
		{ShipName: "BRAVO"},
		{ShipName: "CHARLIE"},
	})

	require.Len(t, fleet, 3)
	assert.Equal(t, "ALPHA", fleet[0].Name)
	assert.Equal(t, "BRAVO", fleet[1].Name)
	assert.Equal(t, "CHARLIE", fleet[2].Name)
}
