package rest

import (
	"encoding/json"

	"github.com/kbukum/gdax/errors"
)

// Endpoint describes one API call and the type of its response.
// CreateRequest is pure: two calls on the same value return equal requests.
type Endpoint[T any] interface {
	CreateRequest() Request
	Decode(body []byte) (T, error)
}

// JSON supplies a JSON Decode for endpoints whose response decodes into T.
// Endpoint types embed it to fix their response type.
type JSON[T any] struct{}

// Decode unmarshals body into a T.
func (JSON[T]) Decode(body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		var zero T
		return zero, errors.Decode(err)
	}
	return v, nil
}
