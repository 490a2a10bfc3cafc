package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/kbukum/gdax/errors"
)

// OrderInfoKind tells which variant an OrderInfo holds.
type OrderInfoKind int

const (
	// KindCount is an aggregated number of orders at a price level (levels 1 and 2).
	KindCount OrderInfoKind = iota + 1
	// KindID is the id of a single order (level 3).
	KindID
)

// String returns the kind name.
func (k OrderInfoKind) String() string {
	switch k {
	case KindCount:
		return "num_orders"
	case KindID:
		return "order_id"
	default:
		return "unknown"
	}
}

// OrderInfo is the third element of an order-book price level: either an order count
// or an order id. The zero value holds neither.
type OrderInfo struct {
	kind  OrderInfoKind
	count int64
	id    uuid.UUID
}

// Count returns an OrderInfo holding an order count.
func Count(n int64) OrderInfo {
	return OrderInfo{kind: KindCount, count: n}
}

// ID returns an OrderInfo holding an order id.
func ID(id uuid.UUID) OrderInfo {
	return OrderInfo{kind: KindID, id: id}
}

// Kind returns the variant held, 0 for the zero value.
func (o OrderInfo) Kind() OrderInfoKind {
	return o.kind
}

// Count returns the order count and whether o holds one.
func (o OrderInfo) Count() (int64, bool) {
	return o.count, o.kind == KindCount
}

// ID returns the order id and whether o holds one.
func (o OrderInfo) ID() (uuid.UUID, bool) {
	return o.id, o.kind == KindID
}

// String renders the held value.
func (o OrderInfo) String() string {
	switch o.kind {
	case KindCount:
		return strconv.FormatInt(o.count, 10)
	case KindID:
		return o.id.String()
	default:
		return ""
	}
}

// UnmarshalJSON tries a JSON integer first, then a UUID string, and fails otherwise.
func (o *OrderInfo) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.Decodef("unexpected order info null: want an integer count or a UUID string")
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*o = Count(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if id, err := uuid.Parse(s); err == nil {
			*o = ID(id)
			return nil
		}
	}

	return errors.Decodef("unexpected order info %s: want an integer count or a UUID string", data)
}

// MarshalJSON writes a count as a JSON integer and an id as a JSON string.
func (o OrderInfo) MarshalJSON() ([]byte, error) {
	switch o.kind {
	case KindCount:
		return json.Marshal(o.count)
	case KindID:
		return json.Marshal(o.id.String())
	default:
		return nil, fmt.Errorf("wire: cannot marshal an empty OrderInfo")
	}
}
