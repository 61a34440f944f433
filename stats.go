package genstore

import (
	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Stats summarizes a world's storage occupancy, mainly for debug logging
// and test assertions.
type Stats struct {
	LiveKeys   int            `json:"live_keys"`
	Components int            `json:"components"`
	Columns    map[string]int `json:"columns"`
}

// Stats captures a point-in-time snapshot of the world's occupancy.
func (w *World[K]) Stats() Stats {
	return Stats{
		LiveKeys:   w.manager.Len(),
		Components: w.table.Len(),
		Columns:    w.table.Counts(),
	}
}

// JSON encodes the snapshot for structured sinks.
func (s Stats) JSON() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, eris.Wrap(err, "encode storage stats")
	}
	return data, nil
}
