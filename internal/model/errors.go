package model

import "errors"

var (
	// ErrMalformedRecord is returned when a raw OHLC row has the wrong shape
	// or a field that is not numeric.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrEmptyPayload is returned when the exchange returned no rows.
	ErrEmptyPayload = errors.New("empty payload")
	// ErrInsufficientData is returned when a statistic is undefined for the input.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrNotFound is returned when an asset has not been fetched in this session.
	ErrNotFound = errors.New("not found")
	// ErrFetchFailed wraps any transport or decoding failure of the exchange call.
	ErrFetchFailed = errors.New("fetch failed")
)
