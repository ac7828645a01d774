package igdb

import (
	"fmt"
	"strconv"
	"strings"
)

// Query builds an Apicalypse request body: a field list, an optional search
// term, where clauses joined with & and an optional limit.
type Query struct {
	fields []string
	search string
	where  []string
	limit  int
}

// NewQuery creates a query requesting the given fields. The catalog always
// includes the id field on responses.
func NewQuery(fields ...string) *Query {
	return &Query{fields: fields}
}

// Search sets the full text search term.
func (q *Query) Search(term string) *Query {
	q.search = term
	return q
}

// Where appends one condition to the where clause.
func (q *Query) Where(condition string) *Query {
	q.where = append(q.where, condition)
	return q
}

// Wheref appends one formatted condition to the where clause.
func (q *Query) Wheref(format string, args ...any) *Query {
	return q.Where(fmt.Sprintf(format, args...))
}

// Limit caps the number of returned records.
func (q *Query) Limit(limit int) *Query {
	q.limit = limit
	return q
}

// String renders the query body. Statement order follows the catalog
// convention: fields, search, where, limit.
func (q *Query) String() string {
	var builder strings.Builder

	builder.WriteString("fields " + strings.Join(q.fields, ", ") + ";")

	if q.search != "" {
		builder.WriteString(` search "` + escapeString(q.search) + `";`)
	}

	if len(q.where) > 0 {
		builder.WriteString(" where " + strings.Join(q.where, " & ") + ";")
	}

	if q.limit > 0 {
		builder.WriteString(" limit " + strconv.Itoa(q.limit) + ";")
	}

	return builder.String()
}

// IntList renders ids as the comma separated list used inside the set
// membership operators [..] and (..).
func IntList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// escapeString escapes a string for use inside a quoted query term.
func escapeString(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
