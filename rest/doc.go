// Package rest is the typed client of the GDAX public market-data REST API.
//
// An endpoint is any value implementing Endpoint[T]: it describes its HTTP call
// with CreateRequest and decodes the response body into T. Send performs the
// call and returns the decoded value:
//
//	c, err := rest.NewProduction()
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	t, err := rest.Send(ctx, c, market.GetTime{})
//
// The client never retries, caches or paces requests. Every failure comes back as
// a *errors.Error whose code tells URI, transport and decode failures apart.
package rest
