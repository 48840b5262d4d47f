// Package fserrors defines the error taxonomy of the discovery scan.
// Metadata lookups degrade to placeholder values, aggregation failures
// contribute zero, unreadable entries are dropped, and only a report write
// failure is terminal.
package fserrors

import (
	"github.com/boostgo/errorx"
)

var (
	ErrMetadata    = errorx.New("filediscovery.metadata")
	ErrAggregate   = errorx.New("filediscovery.aggregate")
	ErrEntryStat   = errorx.New("filediscovery.entry.stat")
	ErrWriteReport = errorx.New("filediscovery.report.write")
)

type pathContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

// NewMetadataError marks an owner/permission/stat lookup failure for a
// single field. The record is kept with a placeholder value.
func NewMetadataError(path string, err error) error {
	return ErrMetadata.
		SetError(err).
		SetData(pathContext{
			Path:  path,
			Error: err,
		})
}

// NewAggregateError marks a per-entry failure during recursive size
// summation. The entry contributes zero and aggregation continues.
func NewAggregateError(path string, err error) error {
	return ErrAggregate.
		SetError(err).
		SetData(pathContext{
			Path:  path,
			Error: err,
		})
}

// NewEntryStatError marks an entry that could not be stat'ed at all.
// The entry's record is dropped; the scan continues.
func NewEntryStatError(path string, err error) error {
	return ErrEntryStat.
		SetError(err).
		SetData(pathContext{
			Path:  path,
			Error: err,
		})
}

// NewWriteReportError marks a report serialization failure. This is the one
// terminal error: no partial report file is left behind.
func NewWriteReportError(path string, err error) error {
	return ErrWriteReport.
		SetError(err).
		SetData(pathContext{
			Path:  path,
			Error: err,
		})
}
