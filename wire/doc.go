// Package wire holds the field-level JSON decoding rules of the exchange's payloads.
//
// The exchange sends most numbers as JSON strings ("0.01000000"); Float decodes them to
// float64. The third element of an order-book price level is either an order count (JSON
// integer) or an order id (UUID string); OrderInfo decodes it into a two-variant value.
package wire
