//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package clone provides functions to clone.
package clone

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

func init() {
	// State bags hold decoded JSON, so nested objects and arrays arrive as
	// map[string]any and []any inside interface values.
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register([]string{})
}

// Clone performs a deep copy of src.
func Clone[T any](src *T) (*T, error) {
	if src == nil {
		return nil, fmt.Errorf("nil input")
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(src); err != nil {
		return nil, err
	}
	var dst T
	if err := gob.NewDecoder(&buf).Decode(&dst); err != nil {
		return nil, err
	}
	return &dst, nil
}
