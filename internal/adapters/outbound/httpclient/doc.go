// Package httpclient provides an HTTP client adapter for the Remote Access
// service.
//
// # Usage
//
//	client, err := httpclient.New("http://localhost:3000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	msg, err := client.Welcome(ctx)
//
// Send posts a RequestData envelope to the echo route and returns the
// service's ResponseData:
//
//	resp, err := client.Send(ctx, envelope.RequestData{
//	    Payload: json.RawMessage(`{"ping":true}`),
//	})
//
// An empty ID is replaced with a random UUID before sending.
//
// # Errors
//
// Any non-2xx answer is returned as *StatusError, which carries the status
// code and, when the body was an envelope, the decoded ResponseData.
//
// # Thread Safety
//
// The client is safe for concurrent use.
package httpclient
