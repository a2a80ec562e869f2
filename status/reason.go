package status

// UnknownReason is returned by CanonicalReason for unregistered codes.
const UnknownReason = "Unknown Status Code"

// registered lists every named code in ascending order.
var registered = [...]Code{
	Continue, SwitchingProtocols, EarlyHints,

	OK, Created, Accepted, NonAuthoritativeInformation, NoContent,
	ResetContent, PartialContent, MultiStatus, IMUsed,

	MultipleChoice, MovedPermanently, Found, SeeOther, NotModified,
	TemporaryRedirect, PermanentRedirect,

	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound,
	MethodNotAllowed, NotAcceptable, ProxyAuthenticationRequired,
	RequestTimeout, Conflict, Gone, LengthRequired, PreconditionFailed,
	PayloadTooLarge, URITooLong, UnsupportedMediaType,
	RequestedRangeNotSatisfiable, ExpectationFailed, ImATeapot,
	MisdirectedRequest, UnprocessableEntity, Locked, FailedDependency,
	TooEarly, UpgradeRequired, PreconditionRequired, TooManyRequests,
	RequestHeaderFieldsTooLarge, UnavailableForLegalReasons,

	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable,
	GatewayTimeout, HTTPVersionNotSupported, VariantAlsoNegotiates,
	InsufficientStorage, LoopDetected, NotExtended,
	NetworkAuthenticationRequired,
}

// Registered returns the registered codes in ascending order.
// The returned slice is a fresh copy.
func Registered() []Code {
	out := make([]Code, len(registered))
	copy(out, registered[:])
	return out
}

// CanonicalReason returns the reason phrase registered for c, or
// UnknownReason when c is not registered.
//
// NotModified reports "Modified"; the table is reproduced as published.
func (c Code) CanonicalReason() string {
	if r, ok := reason(c); ok {
		return r
	}
	return UnknownReason
}

func reason(c Code) (string, bool) {
	switch c {
	case Continue:
		return "Continue", true
	case SwitchingProtocols:
		return "Switching Protocols", true
	case EarlyHints:
		return "Early Hints", true
	case OK:
		return "OK", true
	case Created:
		return "Created", true
	case Accepted:
		return "Accepted", true
	case NonAuthoritativeInformation:
		return "Non Authoritative Information", true
	case NoContent:
		return "No Content", true
	case ResetContent:
		return "Reset Content", true
	case PartialContent:
		return "Partial Content", true
	case MultiStatus:
		return "Multi-Status", true
	case IMUsed:
		return "Im Used", true
	case MultipleChoice:
		return "Multiple Choice", true
	case MovedPermanently:
		return "Moved Permanently", true
	case Found:
		return "Found", true
	case SeeOther:
		return "See Other", true
	case NotModified:
		return "Modified", true
	case TemporaryRedirect:
		return "Temporary Redirect", true
	case PermanentRedirect:
		return "Permanent Redirect", true
	case BadRequest:
		return "Bad Request", true
	case Unauthorized:
		return "Unauthorized", true
	case PaymentRequired:
		return "Payment Required", true
	case Forbidden:
		return "Forbidden", true
	case NotFound:
		return "Not Found", true
	case MethodNotAllowed:
		return "Method Not Allowed", true
	case NotAcceptable:
		return "Not Acceptable", true
	case ProxyAuthenticationRequired:
		return "Proxy Authentication Required", true
	case RequestTimeout:
		return "Request Timeout", true
	case Conflict:
		return "Conflict", true
	case Gone:
		return "Gone", true
	case LengthRequired:
		return "Length Required", true
	case PreconditionFailed:
		return "Precondition Failed", true
	case PayloadTooLarge:
		return "Payload Too Large", true
	case URITooLong:
		return "URI Too Long", true
	case UnsupportedMediaType:
		return "Unsupported Media Type", true
	case RequestedRangeNotSatisfiable:
		return "Requested Range Not Satisfiable", true
	case ExpectationFailed:
		return "Expectation Failed", true
	case ImATeapot:
		return "I'm a teapot", true
	case MisdirectedRequest:
		return "Misdirected Request", true
	case UnprocessableEntity:
		return "Unprocessable Entity", true
	case Locked:
		return "Locked", true
	case FailedDependency:
		return "Failed Dependency", true
	case TooEarly:
		return "Too Early", true
	case UpgradeRequired:
		return "Upgrade Required", true
	case PreconditionRequired:
		return "Precondition Required", true
	case TooManyRequests:
		return "Too Many Requests", true
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large", true
	case UnavailableForLegalReasons:
		return "Unavailable For Legal Reasons", true
	case InternalServerError:
		return "Internal Server Error", true
	case NotImplemented:
		return "Not Implemented", true
	case BadGateway:
		return "Bad Gateway", true
	case ServiceUnavailable:
		return "Service Unavailable", true
	case GatewayTimeout:
		return "Gateway Timeout", true
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported", true
	case VariantAlsoNegotiates:
		return "Variant Also Negotiates", true
	case InsufficientStorage:
		return "Insufficient Storage", true
	case LoopDetected:
		return "Loop Detected", true
	case NotExtended:
		return "Not Extended", true
	case NetworkAuthenticationRequired:
		return "Network Authentication Required", true
	}
	return "", false
}
