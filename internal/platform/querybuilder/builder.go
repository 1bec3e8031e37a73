// Package querybuilder renders the small set of PostgreSQL statements the
// replica fetcher needs: filtered selects and seed inserts with $n binds.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxBindParams is the PostgreSQL limit on bind parameters per statement.
const maxBindParams = 65535

var ErrTooManyParams = errors.New("statement exceeds bind parameter limit")

type sqlWriter struct {
	strings.Builder
	args []any
}

// bind appends value to the argument list and returns its placeholder.
func (w *sqlWriter) bind(value any) string {
	w.args = append(w.args, value)
	return "$" + strconv.Itoa(len(w.args))
}

type Condition interface {
	writeSQL(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) writeSQL(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" = ")
	w.WriteString(w.bind(c.value))
}

type isNullCondition string

func IsNull(column string) Condition {
	return isNullCondition(column)
}

// NotDeleted keeps rows the console has not soft-deleted.
func NotDeleted() Condition {
	return isNullCondition("deleted_at")
}

func (c isNullCondition) writeSQL(w *sqlWriter) {
	w.WriteString(string(c))
	w.WriteString(" IS NULL")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var w sqlWriter
	w.WriteString("SELECT ")
	w.WriteString(strings.Join(b.columns, ", "))
	w.WriteString(" FROM ")
	w.WriteString(b.table)

	for i, c := range b.where {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c.writeSQL(&w)
	}
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.WriteString(" LIMIT ")
		w.WriteString(strconv.Itoa(b.limit))
	}

	return w.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values adds one row. Call it once per row for multi-row inserts.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflict sets the trailing conflict clause, e.g. "ON CONFLICT DO NOTHING".
func (b *InsertBuilder) OnConflict(clause string) *InsertBuilder {
	b.suffix = strings.TrimSpace(clause)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	case len(b.rows)*len(b.columns) > maxBindParams:
		return "", nil, fmt.Errorf("%w: %d rows x %d columns into %s", ErrTooManyParams, len(b.rows), len(b.columns), b.table)
	}

	var w sqlWriter
	w.args = make([]any, 0, len(b.rows)*len(b.columns))
	w.WriteString("INSERT INTO ")
	w.WriteString(b.table)
	w.WriteString(" (")
	w.WriteString(strings.Join(b.columns, ", "))
	w.WriteString(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.WriteString(", ")
		}
		w.WriteByte('(')
		for colIdx, value := range row {
			if colIdx > 0 {
				w.WriteString(", ")
			}
			w.WriteString(w.bind(value))
		}
		w.WriteByte(')')
	}

	if b.suffix != "" {
		w.WriteByte(' ')
		w.WriteString(b.suffix)
	}
	return w.String(), w.args, nil
}
