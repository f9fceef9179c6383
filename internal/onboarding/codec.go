package onboarding

import (
	"encoding/json"
	"errors"
	"fmt"
)

// persistVersion is written alongside the record so the layout can evolve.
const persistVersion = 0

// ErrCorruptSlot is returned by Decode when a stored value cannot be read back
// as a record.
var ErrCorruptSlot = errors.New("onboarding: corrupt stored record")

type persistedData struct {
	Data json.RawMessage `json:"data"`
}

// envelope is the stored layout: {"state":{"data":{...}},"version":0}. The
// bare {"data":{...}} wrapper is accepted on read.
type envelope struct {
	State   *persistedData  `json:"state,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Version int             `json:"version"`
}

// Encode serializes a record into the stored layout.
func Encode(r Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return json.Marshal(envelope{
		State:   &persistedData{Data: data},
		Version: persistVersion,
	})
}

// Decode reads a record previously written by Encode. Fields missing from the
// stored value keep their defaults.
func Decode(raw []byte) (Record, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptSlot, err)
	}

	data := env.Data
	if env.State != nil && len(env.State.Data) > 0 {
		data = env.State.Data
	}
	if len(data) == 0 || string(data) == "null" {
		return Record{}, fmt.Errorf("%w: missing data", ErrCorruptSlot)
	}

	rec := DefaultRecord()
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptSlot, err)
	}
	normalize(&rec)
	return rec, nil
}

// normalize repairs values written by older clients that do not hold the
// record's invariants.
func normalize(r *Record) {
	if !ValidStep(r.CurrentStep) {
		r.CurrentStep = FirstStep
	}
	if r.CompletedSteps == nil {
		r.CompletedSteps = []int{}
	}
	if r.AssetCountries != nil {
		r.AssetCountries = dedupe(r.AssetCountries)
	}
}
