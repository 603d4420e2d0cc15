// Package domain models the ship records served by the explorer and the
// read-only aggregations computed over them.
//
// # Data Source
//
// Ship records originate from AIS (Automatic Identification System) position
// snapshots exported as a single JSON document of the shape
//
//	{"data": [ {"SHIPNAME": "...", "COUNTRY": "...", ...}, ... ]}
//
// Every field in the export is a string, including the numeric ones, because
// the upstream exporter writes CSV cells verbatim. No field is guaranteed to
// be present.
//
// # Field Conventions
//
// Recognized fields and their parsed forms:
//
//	SHIPNAME      vessel name, free text, usually upper case
//	COUNTRY       flag state, free text, case-sensitive exact values
//	TYPE_SUMMARY  coarse vessel class ("Cargo", "Tanker", ...)
//	SPEED         speed over ground in knots; decimal string
//	LAT, LON      WGS-84 position; decimal strings
//
// Parsing is best effort: a SPEED, LAT, or LON value that does not parse as
// a float simply leaves the corresponding parsed field unset. Negative
// speeds appear in the feed when the upstream sensor glitches and are
// treated the same as unparseable values. The invariant throughout the
// package is that numeric aggregates contain only successfully parsed
// values, so their length may be smaller than the record count.
//
// # Aggregations
//
// All aggregations are pure functions over an immutable [Fleet]. Count
// rankings sort descending by count with ties broken by name ascending so
// output is deterministic for a given dataset. Records missing the field
// being counted are skipped, except ships_by_types which groups them under
// the explicit "Unknown" bucket.
package domain
