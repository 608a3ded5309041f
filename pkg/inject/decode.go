package inject

import (
	"encoding/json"
	"fmt"
)

// ConsoleEntry is one buffered console call.
type ConsoleEntry struct {
	Level     string  `json:"level"`
	Text      string  `json:"text"`
	Timestamp float64 `json:"timestamp"`
}

// NetworkEntry is one resource-timing record.
type NetworkEntry struct {
	URL           string  `json:"url"`
	InitiatorType string  `json:"initiatorType"`
	StartTime     float64 `json:"startTime"`
	Duration      float64 `json:"duration"`
	TransferSize  float64 `json:"transferSize"`
}

// DecodeConsole converts a ConsoleCollect script result into entries.
func DecodeConsole(v any) ([]ConsoleEntry, error) {
	var entries []ConsoleEntry
	if err := decode(v, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DecodeNetwork converts a NetworkCollect script result into entries.
func DecodeNetwork(v any) ([]NetworkEntry, error) {
	var entries []NetworkEntry
	if err := decode(v, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// decode re-encodes a generic script result into a typed shape. Script
// results arrive as maps and slices, so this round trip is the whole
// conversion.
func decode(v, out any) error {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("inject: encode script result: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("inject: script returned an unexpected shape: %w", err)
	}
	return nil
}
