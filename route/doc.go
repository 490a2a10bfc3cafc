// Package route builds the path-and-query part of a request URI from ordered path
// segments and ordered key/value attributes.
//
//	r := route.New().
//	    AddSegment("products").
//	    AddSegment("BTC-USD").
//	    AddSegment("book").
//	    AddAttributeValue("level", 2)
//	r.String() // "/products/BTC-USD/book?level=2"
//
// A Route is a value. Builder methods return a new Route and never write into the
// receiver, so a base route can be shared and extended by many requests.
package route
