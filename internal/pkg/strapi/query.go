package strapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// isoMillis matches the timestamp format the record store expects in
// date filters.
const isoMillis = "2006-01-02T15:04:05.000Z"

type pair struct {
	key   string
	value string
}

// Query builds the bracket-style query string the record store
// understands: filters[date][$gte]=..., fields[0]=..., populate[...].
// Only values are escaped, bracket keys stay raw.
type Query struct {
	pairs []pair
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) add(key, value string) {
	q.pairs = append(q.pairs, pair{key: key, value: value})
}

// WhereBetween adds an inclusive date-range filter on field.
func (q *Query) WhereBetween(field string, from, to time.Time) *Query {
	q.add("filters["+field+"][$gte]", from.UTC().Format(isoMillis))
	q.add("filters["+field+"][$lte]", to.UTC().Format(isoMillis))
	return q
}

// WhereEq adds an exact-match filter on field.
func (q *Query) WhereEq(field, value string) *Query {
	q.add("filters["+field+"][$eq]", value)
	return q
}

// WhereRelEq adds an exact-match filter on a field of a related entry.
func (q *Query) WhereRelEq(relation, field, value string) *Query {
	q.add("filters["+relation+"]["+field+"][$eq]", value)
	return q
}

func (q *Query) Fields(fields ...string) *Query {
	for i, f := range fields {
		q.add("fields["+strconv.Itoa(i)+"]", f)
	}
	return q
}

func (q *Query) Sort(keys ...string) *Query {
	for i, k := range keys {
		q.add("sort["+strconv.Itoa(i)+"]", k)
	}
	return q
}

func (q *Query) Paginate(page, pageSize int) *Query {
	q.add("pagination[page]", strconv.Itoa(page))
	q.add("pagination[pageSize]", strconv.Itoa(pageSize))
	return q
}

// Populate opens a relation block; fields and nested relations hang off
// the returned Relation.
func (q *Query) Populate(relation string) *Relation {
	return &Relation{q: q, prefix: "populate[" + relation + "]"}
}

// Encode renders the query string with values escaped.
func (q *Query) Encode() string {
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// Relation scopes query parts to a populated relation.
type Relation struct {
	q      *Query
	prefix string
}

func (r *Relation) Fields(fields ...string) *Relation {
	for i, f := range fields {
		r.q.add(r.prefix+"[fields]["+strconv.Itoa(i)+"]", f)
	}
	return r
}

func (r *Relation) Sort(keys ...string) *Relation {
	for i, k := range keys {
		r.q.add(r.prefix+"[sort]["+strconv.Itoa(i)+"]", k)
	}
	return r
}

// WhereBetween filters the populated entries by a date range.
func (r *Relation) WhereBetween(field string, from, to time.Time) *Relation {
	r.q.add(r.prefix+"[filters]["+field+"][$gte]", from.UTC().Format(isoMillis))
	r.q.add(r.prefix+"[filters]["+field+"][$lte]", to.UTC().Format(isoMillis))
	return r
}

// Populate nests a further relation.
func (r *Relation) Populate(relation string) *Relation {
	return &Relation{q: r.q, prefix: r.prefix + "[populate][" + relation + "]"}
}
