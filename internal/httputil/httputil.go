// Package httputil provides HTTP status code checks used when example
// transcripts are turned into responses.
package httputil

// HTTP Status Code Constants
const (
	MinStatusCode = 100 // Minimum valid HTTP status code
	MaxStatusCode = 599 // Maximum valid HTTP status code
)

// StandardHTTPStatusCodes contains RFC 9110 officially defined HTTP status codes.
// Codes outside this set are still accepted but reported as non-standard.
var StandardHTTPStatusCodes = map[int]bool{
	// 1xx Informational
	100: true, 101: true, 102: true, 103: true,
	// 2xx Success
	200: true, 201: true, 202: true, 203: true, 204: true, 205: true,
	206: true, 207: true, 208: true, 226: true,
	// 3xx Redirection
	300: true, 301: true, 302: true, 303: true, 304: true, 305: true,
	307: true, 308: true,
	// 4xx Client Error
	400: true, 401: true, 402: true, 403: true, 404: true, 405: true,
	406: true, 407: true, 408: true, 409: true, 410: true, 411: true,
	412: true, 413: true, 414: true, 415: true, 416: true, 417: true,
	418: true, 421: true, 422: true, 423: true, 424: true, 425: true,
	426: true, 428: true, 429: true, 431: true, 451: true,
	// 5xx Server Error
	500: true, 501: true, 502: true, 503: true, 504: true, 505: true,
	506: true, 507: true, 508: true, 510: true, 511: true,
}

// ValidateStatusCode reports whether code is within 100-599.
func ValidateStatusCode(code int) bool {
	return code >= MinStatusCode && code <= MaxStatusCode
}

// IsStandardStatusCode checks if a status code is a well-defined standard HTTP code.
// Returns true only for codes in StandardHTTPStatusCodes map.
func IsStandardStatusCode(code int) bool {
	return StandardHTTPStatusCodes[code]
}

// IsSuccess reports whether code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
