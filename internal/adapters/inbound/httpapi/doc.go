// Package httpapi is the HTTP transport adapter.
//
// It owns the router, the middleware pipeline that runs ahead of every route,
// the route handlers, and the listener lifecycle. Handlers speak the envelope
// contract from pkg/envelope; failures are classified with internal/domain and
// always answer with a ResponseData{success:false} body.
//
// Pipeline order (outermost first):
//
//	request id -> real ip -> metrics -> request log -> recover -> cors ->
//	rate limit -> json body -> HEAD as GET -> route
//
// Each stage is an ordinary func(http.Handler) http.Handler and can be tested
// on its own.
package httpapi
