package rest

import (
	"net/http"

	"github.com/kbukum/gdax/route"
)

// Direction selects which side of a record id a page starts from.
type Direction int

const (
	// DirBefore pages toward newer records.
	DirBefore Direction = iota + 1
	// DirAfter pages toward older records.
	DirAfter
)

// String returns the query parameter name of the direction.
func (d Direction) String() string {
	switch d {
	case DirBefore:
		return "before"
	case DirAfter:
		return "after"
	default:
		return "unknown"
	}
}

// Cursor positions a page relative to a record id.
type Cursor struct {
	Dir Direction
	ID  uint64
}

// Before returns a cursor selecting records newer than id.
func Before(id uint64) Cursor { return Cursor{Dir: DirBefore, ID: id} }

// After returns a cursor selecting records older than id.
func After(id uint64) Cursor { return Cursor{Dir: DirAfter, ID: id} }

// Pagination is a cursor plus an optional page size. Limit 0 means unset.
type Pagination struct {
	Cursor Cursor
	Limit  int
}

// Page returns a Pagination at c with no limit.
func Page(c Cursor) Pagination {
	return Pagination{Cursor: c}
}

// WithLimit returns a copy of p with the page size set to n.
func (p Pagination) WithLimit(n int) Pagination {
	p.Limit = n
	return p
}

// Apply returns r with the pagination query parameters appended.
func (p Pagination) Apply(r route.Route) route.Route {
	r = r.AddAttributeValue(p.Cursor.Dir.String(), p.Cursor.ID)
	if p.Limit > 0 {
		r = r.AddAttributeValue("limit", p.Limit)
	}
	return r
}

// String renders the pagination as a query string, e.g. "?before=50&limit=20".
func (p Pagination) String() string {
	return p.Apply(route.New()).Query()
}

// Request describes one HTTP call to the exchange.
type Request struct {
	Method     string
	Route      route.Route
	Body       string
	Pagination *Pagination
}

// Target returns the path and query of the request: the route's own attributes
// first, then any pagination parameters.
func (r Request) Target() string {
	rt := r.Route
	if r.Pagination != nil {
		rt = r.Pagination.Apply(rt)
	}
	return rt.String()
}

// paginationCopy returns an independent copy of p, or nil.
func paginationCopy(p *Pagination) *Pagination {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Get returns a GET request for r with an empty body. p is copied.
func Get(r route.Route, p *Pagination) Request {
	return Request{Method: http.MethodGet, Route: r, Pagination: paginationCopy(p)}
}

// describe renders "METHOD /path" for logs and spans.
func (r Request) describe() string {
	return r.Method + " " + r.Route.Path()
}
