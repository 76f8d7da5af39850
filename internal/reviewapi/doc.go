// Package reviewapi is the client side of the code review service protocol.
//
// The service exposes two endpoints: a multipart upload that returns an
// opaque report identifier, and a report lookup by that identifier. The
// client validates uploads locally before any request is made and maps
// every failure onto one of three kinds: validation (ErrNoFile,
// ErrFileTooLarge), API (*APIError, a non-2xx status) and transport
// (*TransportError, a failed round trip or an unreadable body).
package reviewapi
