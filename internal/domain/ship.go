package domain

import (
	"strconv"
	"strings"
)

// RawShipRecord is the flat JSON shape of one record in the dataset export.
// All fields are strings, matching the upstream CSV-to-JSON conversion.
// Absent fields decode to the empty string.
type RawShipRecord struct {
	ShipName    string `json:"SHIPNAME"`
	Country     string `json:"COUNTRY"`
	TypeSummary string `json:"TYPE_SUMMARY"`
	Speed       string `json:"SPEED"`
	Lat         string `json:"LAT"`
	Lon         string `json:"LON"`
}

// Geo is a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Ship is the parsed, domain-rich form of a raw record. Numeric fields are
// nil when the source value was missing or did not parse; see the package
// documentation for the field conventions.
type Ship struct {
	Name    string
	Country string
	Type    string

	// Speed in knots. Nil when SPEED was missing, unparseable, or negative.
	Speed *float64

	// Position is set only when both LAT and LON parsed successfully.
	Position *Geo
}

// Fleet is the ordered, immutable record store for a session.
type Fleet []Ship

// ParseShipRecord converts a raw export record into a Ship. It never fails:
// unparseable numeric fields are dropped rather than reported, per the
// skip-or-default policy of the dataset.
func ParseShipRecord(raw RawShipRecord) Ship {
	ship := Ship{
		Name:    strings.TrimSpace(raw.ShipName),
		Country: strings.TrimSpace(raw.Country),
		Type:    strings.TrimSpace(raw.TypeSummary),
	}

	if speed, ok := parseFloat(raw.Speed); ok && speed >= 0 {
		ship.Speed = &speed
	}

	lat, latOK := parseFloat(raw.Lat)
	lon, lonOK := parseFloat(raw.Lon)
	if latOK && lonOK {
		ship.Position = &Geo{Lat: lat, Lon: lon}
	}

	return ship
}

// ParseFleet converts a raw export in order. The resulting Fleet preserves
// the record order of the source.
func ParseFleet(raws []RawShipRecord) Fleet {
	fleet := make(Fleet, 0, len(raws))
	for _, raw := range raws {
		fleet = append(fleet, ParseShipRecord(raw))
	}
	return fleet
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
