//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package retrieval

import (
	"trpc.group/trpc-go/docretrieval/evalset"
)

// State scopes probed for the target document list.
const (
	// scopeInput is the sub-bag where dataset input columns live.
	scopeInput = "input"
	// scopeTopLevel addresses the state bag itself.
	scopeTopLevel = ""
	// scopeInfo is the sub-bag carrying auxiliary episode info.
	scopeInfo = "info"
)

// targetScopes is the precedence order for locating the target document list
// in the state bag: dataset input columns win over top-level state, which
// wins over the info sub-bag. The first scope holding a non-empty value for
// the target key is used.
var targetScopes = []string{scopeInput, scopeTopLevel, scopeInfo}

// lookupTargets probes the recognized scopes in precedence order and returns
// the first non-empty value stored under key.
func lookupTargets(state evalset.State, key string) (any, bool) {
	for _, scope := range targetScopes {
		bag := subBag(state, scope)
		if bag == nil {
			continue
		}
		value, ok := bag[key]
		if !ok || isEmptyValue(value) {
			continue
		}
		return value, true
	}
	return nil, false
}

// subBag resolves the key-value bag addressed by scope, or nil when the
// scope is absent or not a bag.
func subBag(state evalset.State, scope string) map[string]any {
	if scope == scopeTopLevel {
		return state
	}
	switch nested := state[scope].(type) {
	case map[string]any:
		return nested
	case evalset.State:
		return nested
	default:
		return nil
	}
}

// isEmptyValue reports whether value counts as empty for scope fall-through:
// nil, empty strings, empty collections, false and numeric zero all do.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
