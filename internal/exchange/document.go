package exchange

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/entertainment/moviememo/pkg/types"
)

// Format names accepted by the engine entry points.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Structured-document constants.
const (
	formatVersion    = "1.0"
	exportDateLayout = "2006-01-02 15:04:05"
)

// Artifact naming: application prefix plus a capture timestamp to the
// second, so distinct export runs get distinct names.
const (
	fileNamePrefix      = "moviememo_export_"
	fileTimestampLayout = "20060102_150405"
)

// exportDocument is the top-level structured-document shape. Optional
// record fields marshal as explicit nulls (pointer fields without
// omitempty), which is what makes the JSON format round-trip the
// unset-vs-empty distinction.
type exportDocument struct {
	ExportDate     string                `json:"exportDate"`
	Version        string                `json:"version"`
	WatchedEntries []types.WatchedEntry  `json:"watchedEntries"`
	WatchlistItems []types.WatchlistItem `json:"watchlistItems"`
}

// encodeDocument renders the document as indented JSON.
func encodeDocument(doc *exportDocument) ([]byte, error) {
	// Empty datasets still produce arrays, not nulls.
	if doc.WatchedEntries == nil {
		doc.WatchedEntries = []types.WatchedEntry{}
	}
	if doc.WatchlistItems == nil {
		doc.WatchlistItems = []types.WatchlistItem{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// decodeDocument parses a structured document. A missing array key decodes
// to zero records of that kind. Syntax failures classify as
// ErrMalformedDocument; a field of the wrong type (a string where a number
// belongs) classifies as ErrFieldType.
func decodeDocument(data []byte) (*exportDocument, error) {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q: %v", ErrFieldType, typeErr.Field, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}
