// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
)

type UploaderInterface interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
