package dashboard

import (
	"encoding/json"
	"fmt"
	"io"

	"paydash/internal/domain/table"
)

// Envelope is the paginated list response returned by the payments API.
// Pagination fields are passed through untouched.
type Envelope struct {
	TotalRecord int            `json:"total_record"`
	TotalPage   int            `json:"total_page"`
	Offset      int            `json:"offset"`
	Limit       int            `json:"limit"`
	Page        int            `json:"page"`
	PrevPage    *int           `json:"prev_page"`
	NextPage    *int           `json:"next_page"`
	Data        []table.Record `json:"data"`
}

// DecodeEnvelope reads an Envelope from JSON. Numbers in data are kept as
// json.Number so large identifiers survive.
func DecodeEnvelope(r io.Reader) (Envelope, error) {
	var env Envelope
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// Meta returns the pagination part of the envelope.
func (e Envelope) Meta() Meta {
	return Meta{
		TotalRecord: e.TotalRecord,
		TotalPage:   e.TotalPage,
		Offset:      e.Offset,
		Limit:       e.Limit,
		Page:        e.Page,
		PrevPage:    e.PrevPage,
		NextPage:    e.NextPage,
	}
}

// Meta is the pagination metadata of a loaded page.
type Meta struct {
	TotalRecord int  `json:"total_record"`
	TotalPage   int  `json:"total_page"`
	Offset      int  `json:"offset"`
	Limit       int  `json:"limit"`
	Page        int  `json:"page"`
	PrevPage    *int `json:"prev_page"`
	NextPage    *int `json:"next_page"`
}

// PageRequest selects a page. Zero fields fall back to page 1 and the
// configured page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Page is a projected table page.
type Page struct {
	View    string      `json:"view"`
	Headers []string    `json:"headers"`
	Meta    Meta        `json:"meta"`
	Rows    []table.Row `json:"rows"`
}
