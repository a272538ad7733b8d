// Package fopbridge provides the standard response envelopes used by bridges.
package fopbridge

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RecordResponse wraps a single record
type RecordResponse[T any] struct {
	Record T `json:"record"`
	status int
}

func NewRecordResponse[T any](record T) RecordResponse[T] {
	return RecordResponse[T]{Record: record}
}

// NewCreatedResponse wraps a freshly created record and answers 201.
func NewCreatedResponse[T any](record T) RecordResponse[T] {
	return RecordResponse[T]{Record: record, status: 201}
}

func (r RecordResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}

func (r RecordResponse[T]) HTTPStatus() int {
	if r.status == 0 {
		return 200
	}
	return r.status
}

// NonPaginatedRecords wraps a complete listing.
type NonPaginatedRecords[T any] struct {
	Records []T `json:"records"`
	Total   int `json:"total"`
}

func NewNonPaginatedRecords[T any](records []T) NonPaginatedRecords[T] {
	if records == nil {
		records = []T{}
	}
	return NonPaginatedRecords[T]{Records: records, Total: len(records)}
}

func (n NonPaginatedRecords[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(n)
	return data, "application/json", err
}

// FileResponse is a downloadable document.
type FileResponse struct {
	Data        []byte
	ContentType string
	Filename    string
}

func NewFileResponse(data []byte, contentType, filename string) FileResponse {
	return FileResponse{Data: data, ContentType: contentType, Filename: filename}
}

func (f FileResponse) Encode() ([]byte, string, error) {
	return f.Data, f.ContentType, nil
}

func (f FileResponse) SetHeaders(h http.Header) {
	if f.Filename != "" {
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	}
}
