// Package api is the HTTP/JSON client of the ICT Emergency 15 backend.
//
// # Overview
//
// Every endpoint is a POST under the configured base URL. Requests carry
// "Authorization: Bearer <token>" with the token taken from a TokenSource
// (the session), an X-Request-ID and JSON content headers. Responses use the
// envelope
//
//	{"code": 200, "error": false, "message": "...", "error_messages": ..., "data": ...}
//
// # Error Handling
//
//   - HTTP 401/403: ErrUnauthorized
//   - HTTP 404: ErrNotFound
//   - transport failures, timeouts and HTTP 5xx: ErrUnavailable
//   - "error": true in the envelope: *Error, whose message is error_messages
//     when that is a string and message otherwise
//
// All errors can be matched with errors.Is / errors.As.
package api
