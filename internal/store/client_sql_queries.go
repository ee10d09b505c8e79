// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

// preferencesBuilder uses "?" placeholders, which is what go-sqlite3 expects.
var preferencesBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return preferencesBuilder.
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertPreferenceQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return preferencesBuilder.
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeletePreferenceQuery(key string) (string, []any, error) {
	return preferencesBuilder.
		Delete(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
