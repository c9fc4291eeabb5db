// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the activity service, translating HTTP concerns to business
// operations and business errors to status codes with a "detail" body.
package api
