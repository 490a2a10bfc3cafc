package route

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Attribute is one key/value pair of a route's query string.
type Attribute struct {
	Key   string
	Value string
}

// Route is an ordered list of path segments plus ordered query attributes.
type Route struct {
	segments   []string
	attributes []Attribute
}

// New returns an empty route.
func New() Route {
	return Route{}
}

// AddSegment returns a copy of r with s appended to the path.
// The segment is percent-encoded on its own, so a "/" inside s never splits it.
func (r Route) AddSegment(s string) Route {
	return Route{
		segments:   append(slices.Clip(r.segments), s),
		attributes: r.attributes,
	}
}

// AddAttributeValue returns a copy of r with (key, value) appended to the query.
// The value is rendered by its natural string form.
func (r Route) AddAttributeValue(key string, value any) Route {
	return Route{
		segments:   r.segments,
		attributes: append(slices.Clip(r.attributes), Attribute{Key: key, Value: format(value)}),
	}
}

// Segments returns a copy of the unescaped path segments.
func (r Route) Segments() []string {
	return slices.Clone(r.segments)
}

// Attributes returns a copy of the query attributes in insertion order.
func (r Route) Attributes() []Attribute {
	return slices.Clone(r.attributes)
}

// Path renders the escaped path. The empty route renders "/".
func (r Route) Path() string {
	if len(r.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range r.segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Query renders the attributes as "?k=v&k=v", or "" when there are none.
func (r Route) Query() string {
	if len(r.attributes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, a := range r.attributes {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(a.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(a.Value))
	}
	return b.String()
}

// String renders the path followed by the query.
func (r Route) String() string {
	return r.Path() + r.Query()
}

// Equal reports whether r and other hold the same segments and attributes in the same order.
func (r Route) Equal(other Route) bool {
	return slices.Equal(r.segments, other.segments) && slices.Equal(r.attributes, other.attributes)
}

func format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
