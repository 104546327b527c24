//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"fmt"

	"github.com/google/uuid"
)

// NewResultID generates a unique eval set result ID scoped to the app and
// eval set it belongs to.
func NewResultID(appName, evalSetID string) string {
	return fmt.Sprintf("%s_%s_%s", appName, evalSetID, uuid.New().String())
}
