//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package retrieval

import "strings"

// IDParser normalizes a raw argument value into a canonical document
// identifier. Two raw values that parse to the same identifier refer to the
// same document for scoring purposes. Implementations must be pure so that
// metric operations stay safe for concurrent use.
type IDParser interface {
	// Parse returns the canonical document identifier for raw.
	Parse(raw string) string
}

// ParserFunc adapts a plain function to the IDParser interface.
type ParserFunc func(string) string

// Parse implements IDParser.
func (f ParserFunc) Parse(raw string) string {
	return f(raw)
}

// defaultParser keeps the substring before the first ":" separator, so
// "doc7:para2" and "doc7:para9" both normalize to "doc7".
var defaultParser IDParser = ParserFunc(func(raw string) string {
	if i := strings.Index(raw, ":"); i >= 0 {
		return raw[:i]
	}
	return raw
})
