package exchange

import "errors"

// Failure classes for export and import. Every error returned at the engine
// boundary wraps exactly one of these, so callers discriminate with
// errors.Is instead of matching message text.
var (
	// ErrSourceUnavailable: the artifact file is missing or unreadable.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedDocument: the structured document does not parse.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMalformedRow: a delimited-text row does not tokenize to the
	// expected shape (e.g. unknown record discriminator).
	ErrMalformedRow = errors.New("malformed row")

	// ErrFieldType: a field declared numeric or timestamp does not parse.
	ErrFieldType = errors.New("field type error")

	// ErrPersistence: the store's bulk-write call itself failed.
	ErrPersistence = errors.New("persistence error")

	// ErrUnknownFormat: the format selector is not json or csv.
	ErrUnknownFormat = errors.New("unknown format")
)
