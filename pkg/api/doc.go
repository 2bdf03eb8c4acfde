// Package api serves number conversions over HTTP.
//
// Routes:
//
//	GET  /v1/words?n=1201&lang=hi-latn&style=international&comma=true
//	POST /v1/words     {"number": 1201, "lang": "en", "options": {...}, "words": {...}}
//	GET  /v1/languages
//	GET  /healthz
//	GET  /metrics      (only with WithMetrics and a gatherer)
//
// GET takes the options as query parameters: integer, places, comma, and,
// only, currency, major, minor, majorAtEnd, minorAtEnd, suppressMajor,
// suppressMinor and case. POST takes the same option and word documents as
// word pack files. Without lang the pack is negotiated from Accept-Language.
//
// Options are layered: library defaults, then the pack defaults, then
// WithBaseOptions, then the request.
//
// Every response is a JSON envelope. Success carries "data"; failures carry
// "error" with a code and message:
//
//	{"data": {"words": "one thousand two hundred one", "number": 1201, ...}}
//	{"error": {"code": "invalid_input", "message": "Invalid number: abc"}}
//
// Invalid input is 400, an unknown language 404 and an oversized body 413.
//
// Requests carry an X-Request-ID, reused when the client sends a well-formed
// one. Metrics counts conversions by style, mode and result, and observes
// request latency by route pattern and status.
package api
