// Package kural holds the embedded Thirukural seed dataset and its
// normalization rules. Records are normalized once at startup; the store is
// read-only afterwards.
package kural

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	_ "embed"

	"github.com/kuralverse/thirukural-api/apimodels"
)

//go:embed data/thirukural.json
var seedData []byte

var ErrEmptyDataset = errors.New("no valid entries found in dataset")

// Store is an immutable in-memory set of Thirukural records.
type Store struct {
	records []apimodels.Kural
}

// Load builds the store from the embedded seed dataset.
func Load() (*Store, error) {
	return NewStore(seedData)
}

// NewStore parses and normalizes a JSON array of records. Entries that fail
// normalization are skipped; a dataset with zero valid entries is an error so
// startup fails loudly instead of serving nothing.
func NewStore(data []byte) (*Store, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dataset must be a JSON array of objects: %w", err)
	}

	records := make([]apimodels.Kural, 0, len(raw))
	for _, item := range raw {
		if rec, ok := normalize(item); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return &Store{records: records}, nil
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Random returns a uniformly random record.
func (s *Store) Random() (apimodels.Kural, error) {
	if len(s.records) == 0 {
		return apimodels.Kural{}, ErrEmptyDataset
	}
	return s.records[rand.Intn(len(s.records))], nil
}

// normalize maps one raw dataset entry onto the canonical record shape. Two
// schemas exist in the wild:
//
//   - old: {number, kural, translation, section?, chapter?}, passed through
//   - new: {Number, Line1, Line2, Translation|couplet|explanation}, where the
//     couplet is the two lines joined by "\n" and Number may be a string
func normalize(item map[string]any) (apimodels.Kural, bool) {
	if n, ok := asNumber(item["number"]); ok {
		k, _ := item["kural"].(string)
		tr, _ := item["translation"].(string)
		if strings.TrimSpace(k) == "" || strings.TrimSpace(tr) == "" {
			return apimodels.Kural{}, false
		}
		return apimodels.Kural{
			Number:      n,
			Kural:       k,
			Translation: tr,
			Section:     optString(item["section"]),
			Chapter:     optString(item["chapter"]),
		}, true
	}

	n, ok := asNumber(item["Number"])
	if !ok {
		return apimodels.Kural{}, false
	}
	line1, _ := item["Line1"].(string)
	line2, _ := item["Line2"].(string)
	if strings.TrimSpace(line1) == "" || strings.TrimSpace(line2) == "" {
		return apimodels.Kural{}, false
	}
	tr := firstString(item, "Translation", "couplet", "explanation")
	if tr == "" {
		return apimodels.Kural{}, false
	}
	return apimodels.Kural{
		Number:      n,
		Kural:       line1 + "\n" + line2,
		Translation: tr,
	}, true
}

// asNumber accepts the JSON encodings a couplet number shows up as: a number
// or a digit string.
func asNumber(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		i := int(n)
		if float64(i) != n || i <= 0 {
			return 0, false
		}
		return i, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i <= 0 {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func optString(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}
