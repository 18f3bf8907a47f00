package makeapi

import (
	"net/url"
	"strconv"
)

// Pagination carries optional paging controls accepted by list endpoints.
// The API groups them under a bracketed "pg" sub-key, e.g. pg[offset]=20.
//
// Nil fields are omitted from the query string entirely; an explicit zero
// offset or limit is encoded. Pointers are the single absence sentinel used
// across the client.
type Pagination struct {
	Offset  *int
	Limit   *int
	SortBy  *string
	SortDir *string
}

func (p *Pagination) apply(q url.Values) {
	if p == nil {
		return
	}
	addInt(q, "pg[offset]", p.Offset)
	addInt(q, "pg[limit]", p.Limit)
	addString(q, "pg[sortBy]", p.SortBy)
	addString(q, "pg[sortDir]", p.SortDir)
}

// addInt encodes v under key when present.
func addInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// addInt64 encodes v under key when present.
func addInt64(q url.Values, key string, v *int64) {
	if v != nil {
		q.Set(key, strconv.FormatInt(*v, 10))
	}
}

// addString encodes v under key when present. An explicit empty string is
// still encoded; only nil means absent.
func addString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

// Int returns a pointer to v for optional query parameters.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v for optional query parameters.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v for optional query parameters.
func String(v string) *string { return &v }
