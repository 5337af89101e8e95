// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvNameColumn  = "name"
	kvValueColumn = "value"

	upsertSuffix = "ON CONFLICT(" + kvNameColumn + ") DO UPDATE SET " + kvValueColumn + " = excluded." + kvValueColumn
)

// sqlite uses "?" placeholders, the squirrel default.
var sqb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetQuery(keys []string) (string, []any, error) {
	return sqb.
		Select(kvNameColumn, kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvNameColumn: keys}).
		ToSql()
}

// buildListQuery selects every key starting with prefix. LIKE wildcards in
// prefix are escaped.
func buildListQuery(prefix string) (string, []any, error) {
	return sqb.
		Select(kvNameColumn, kvValueColumn).
		From(kvTable).
		Where(sq.Expr(kvNameColumn+` LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")).
		OrderBy(kvNameColumn).
		ToSql()
}

func buildUpsertQuery(key string, value []byte) (string, []any, error) {
	return sqb.
		Insert(kvTable).
		Columns(kvNameColumn, kvValueColumn).
		Values(key, value).
		Suffix(upsertSuffix).
		ToSql()
}

func buildDeleteQuery(key string) (string, []any, error) {
	return sqb.
		Delete(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
}

func buildClearQuery() (string, []any, error) {
	return sqb.Delete(kvTable).ToSql()
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\\' || r == '%' || r == '_' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
