//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package epochtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochTimeRoundTrip(t *testing.T) {
	in := EpochTime{Time: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
	payload, err := json.Marshal(in)
	require.NoError(t, err)

	var out EpochTime
	require.NoError(t, json.Unmarshal(payload, &out))
	assert.True(t, in.Time.Equal(out.Time), "got %v, want %v", out.Time, in.Time)
}

func TestEpochTimeZero(t *testing.T) {
	payload, err := json.Marshal(EpochTime{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(payload))
}

func TestEpochTimeRejectsNonNumeric(t *testing.T) {
	var out EpochTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &out))
}
