package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// PreviewLength is the number of characters kept in PageRecord.Preview.
const PreviewLength = 500

// PageRecord is the result of successfully scraping one page.
// Records are created once and never modified.
type PageRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	Markdown    string    `json:"markdown,omitempty"`
	Preview     string    `json:"preview"`
	Length      int       `json:"length"`
	ContentHash string    `json:"content_hash"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// NewPageRecord builds a record for the page identified by id.
func NewPageRecord(id, url string, page ScrapedPage, scrapedAt time.Time) PageRecord {
	return PageRecord{
		ID:          id,
		URL:         url,
		Content:     page.Text,
		Markdown:    page.Markdown,
		Preview:     Preview(page.Text, PreviewLength),
		Length:      utf8.RuneCountInString(page.Text),
		ContentHash: strconv.FormatUint(xxhash.Sum64String(page.Text), 16),
		ScrapedAt:   scrapedAt,
	}
}

// Preview returns the first n characters of s, suffixed with "..." when truncated.
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// PipelineResult maps page identifiers to records, iterating in insertion
// (discovery rank) order.
type PipelineResult struct {
	order   []string
	records map[string]PageRecord
}

// NewPipelineResult creates an empty result.
func NewPipelineResult() *PipelineResult {
	return &PipelineResult{records: make(map[string]PageRecord)}
}

// Add appends a record. A record whose ID is already present is ignored.
func (r *PipelineResult) Add(rec PageRecord) bool {
	if _, ok := r.records[rec.ID]; ok {
		return false
	}
	r.order = append(r.order, rec.ID)
	r.records[rec.ID] = rec
	return true
}

// Get returns the record stored under id.
func (r *PipelineResult) Get(id string) (PageRecord, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// Len returns the number of records.
func (r *PipelineResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// IDs returns page identifiers in rank order.
func (r *PipelineResult) IDs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Records returns all records in rank order.
func (r *PipelineResult) Records() []PageRecord {
	if r == nil {
		return nil
	}
	out := make([]PageRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out
}

// MarshalJSON encodes the result as a JSON object whose keys keep rank order.
func (r *PipelineResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rec := range r.Records() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("encoding page id: %w", err)
		}
		val, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encoding page %s: %w", rec.ID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
