// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// A Document is the on-disk form of a set of records:
//
//	{"queries": [{"benchmark": "avrora", ...}, ...]}
type Document struct {
	Queries []Record `json:"queries"`
}

// WriteJSON writes records to w as an indented Document.
func WriteJSON(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Queries: records})
}

// ReadJSON reads a Document from r.
func ReadJSON(r io.Reader) ([]Record, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Queries, nil
}

// ReadFile reads a Document from the named file. If path is "-", it
// reads standard input.
func ReadFile(path string) ([]Record, error) {
	if path == "-" {
		recs, err := ReadJSON(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("<stdin>: %w", err)
		}
		return recs, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
