package coinfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is an Asset as stored: with a stable identifier so that it can be
// referred to later.
type Record struct {
	ID    uuid.UUID
	Asset Asset
}

// MarshalJSON implements the json.Marshaler interface for Record.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.EmbedFrom(r.Asset)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	var asset Asset
	if err := asset.UnmarshalJSON(data); err != nil {
		return err
	}
	r.ID, r.Asset = temp.ID, asset
	return nil
}

// EncodeRecord writes r as a single JSON line.
func EncodeRecord(w io.Writer, r Record) error {
	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("could not encode asset %s: %w", r.ID, err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// DecodeRecords decodes a stream of JSONL records. Empty lines are skipped.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode asset %q: %w", line, string(lineBytes), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
