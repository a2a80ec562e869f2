package status

import (
	"log/slog"
	"strconv"
)

// Code is an HTTP status code.
//
// The zero value is an unknown code (0). Codes compare with == and order with <.
type Code uint16

// Registered status codes.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 7231, 6.2.1
	SwitchingProtocols Code = 101 // RFC 7231, 6.2.2
	EarlyHints         Code = 103 // RFC 8297

	OK                          Code = 200 // RFC 7231, 6.3.1
	Created                     Code = 201 // RFC 7231, 6.3.2
	Accepted                    Code = 202 // RFC 7231, 6.3.3
	NonAuthoritativeInformation Code = 203 // RFC 7231, 6.3.4
	NoContent                   Code = 204 // RFC 7231, 6.3.5
	ResetContent                Code = 205 // RFC 7231, 6.3.6
	PartialContent              Code = 206 // RFC 7233, 4.1
	MultiStatus                 Code = 207 // RFC 4918, 11.1
	IMUsed                      Code = 226 // RFC 3229, 10.4.1

	MultipleChoice    Code = 300 // RFC 7231, 6.4.1
	MovedPermanently  Code = 301 // RFC 7231, 6.4.2
	Found             Code = 302 // RFC 7231, 6.4.3
	SeeOther          Code = 303 // RFC 7231, 6.4.4
	NotModified       Code = 304 // RFC 7232, 4.1
	TemporaryRedirect Code = 307 // RFC 7231, 6.4.7
	PermanentRedirect Code = 308 // RFC 7538, 3

	BadRequest                   Code = 400 // RFC 7231, 6.5.1
	Unauthorized                 Code = 401 // RFC 7235, 3.1
	PaymentRequired              Code = 402 // RFC 7231, 6.5.2
	Forbidden                    Code = 403 // RFC 7231, 6.5.3
	NotFound                     Code = 404 // RFC 7231, 6.5.4
	MethodNotAllowed             Code = 405 // RFC 7231, 6.5.5
	NotAcceptable                Code = 406 // RFC 7231, 6.5.6
	ProxyAuthenticationRequired  Code = 407 // RFC 7235, 3.2
	RequestTimeout               Code = 408 // RFC 7231, 6.5.7
	Conflict                     Code = 409 // RFC 7231, 6.5.8
	Gone                         Code = 410 // RFC 7231, 6.5.9
	LengthRequired               Code = 411 // RFC 7231, 6.5.10
	PreconditionFailed           Code = 412 // RFC 7232, 4.2
	PayloadTooLarge              Code = 413 // RFC 7231, 6.5.11
	URITooLong                   Code = 414 // RFC 7231, 6.5.12
	UnsupportedMediaType         Code = 415 // RFC 7231, 6.5.13
	RequestedRangeNotSatisfiable Code = 416 // RFC 7233, 4.4
	ExpectationFailed            Code = 417 // RFC 7231, 6.5.14
	ImATeapot                    Code = 418 // RFC 7168, 2.3.3
	MisdirectedRequest           Code = 421 // RFC 7540, 9.1.2
	UnprocessableEntity          Code = 422 // RFC 4918, 11.2
	Locked                       Code = 423 // RFC 4918, 11.3
	FailedDependency             Code = 424 // RFC 4918, 11.4
	TooEarly                     Code = 425 // RFC 8470, 5.2
	UpgradeRequired              Code = 426 // RFC 7231, 6.5.15
	PreconditionRequired         Code = 428 // RFC 6585, 3
	TooManyRequests              Code = 429 // RFC 6585, 4
	RequestHeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons   Code = 451 // RFC 7725, 3

	InternalServerError           Code = 500 // RFC 7231, 6.6.1
	NotImplemented                Code = 501 // RFC 7231, 6.6.2
	BadGateway                    Code = 502 // RFC 7231, 6.6.3
	ServiceUnavailable            Code = 503 // RFC 7231, 6.6.4
	GatewayTimeout                Code = 504 // RFC 7231, 6.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 7231, 6.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

// From converts a raw number into a Code. It never fails: unregistered
// numbers are kept as they are.
func From(n uint16) Code { return Code(n) }

// Uint16 returns the raw number. From(n).Uint16() == n for every n.
func (c Code) Uint16() uint16 { return uint16(c) }

// Int returns the code as an int, the type net/http uses.
func (c Code) Int() int { return int(c) }

// Equals reports whether c carries the raw number n.
func (c Code) Equals(n uint16) bool { return uint16(c) == n }

// Equal reports whether the raw number n equals c. It is the mirror of
// Code.Equals for call sites that hold the number first.
func Equal(n uint16, c Code) bool { return c.Equals(n) }

// ------ classes

// IsInformational reports whether c is in [100, 200).
func (c Code) IsInformational() bool { return c >= 100 && c < 200 }

// IsSuccess reports whether c is in [200, 300).
func (c Code) IsSuccess() bool { return c >= 200 && c < 300 }

// IsRedirection reports whether c is in [300, 400).
func (c Code) IsRedirection() bool { return c >= 300 && c < 400 }

// IsClientError reports whether c is in [400, 500).
func (c Code) IsClientError() bool { return c >= 400 && c < 500 }

// IsServerError reports whether c is in [500, 600).
func (c Code) IsServerError() bool { return c >= 500 && c < 600 }

// IsUnknown reports whether c is not one of the registered codes.
func (c Code) IsUnknown() bool {
	_, ok := reason(c)
	return !ok
}

// ------ rendering

// String returns the decimal number, e.g. "404".
func (c Code) String() string { return strconv.FormatUint(uint64(c), 10) }

// LogValue renders the code as its number so slog output stays numeric.
func (c Code) LogValue() slog.Value { return slog.IntValue(int(c)) }
