// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	DefaultPageSize uint64 = 20
	MaxPageSize     uint64 = 200
)

// PageSize clamps a requested page size, non positive values mean the default.
func PageSize(size int64) uint64 {
	switch {
	case size <= 0:
		return DefaultPageSize
	case uint64(size) > MaxPageSize:
		return MaxPageSize
	}
	return uint64(size)
}

// Offset is the row offset of a 1-based page.
func Offset(page int64, pageSize uint64) uint64 {
	if page <= 1 {
		return 0
	}
	return uint64(page-1) * pageSize
}
