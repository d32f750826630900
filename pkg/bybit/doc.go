// Package bybit implements a typed client for the authenticated Bybit V5
// REST API. It encodes request parameters by HTTP verb (query string for
// GET, JSON body for POST), signs them with the V5 HMAC-SHA256 scheme, and
// decodes the shared response envelope, surfacing the exchange's in-band
// errors as typed values.
//
// Request execution is delegated to a caller-supplied Transport; the package
// itself performs no I/O. A ready-made transport lives in pkg/transport.
//
// Bybit API documentation: https://bybit-exchange.github.io/docs/v5/intro
package bybit
