package resolver

import "errors"

var (
	// ErrNotRegistered means every endpoint answered 403 or 404.
	ErrNotRegistered = errors.New("we don't currently have this address registered in our cache")
	// ErrNetwork means the transport kept failing until the retry budget ran out.
	ErrNetwork = errors.New("network error while resolving, please check your network connection and try again")
	// ErrServer is any other non-2xx answer. It is never retried.
	ErrServer = errors.New("lookup server error")
	// ErrSignatureInvalid means a signature was published but did not verify.
	ErrSignatureInvalid = errors.New("invalid signature")
	// ErrMalformedRecord means the record has no usable address field.
	ErrMalformedRecord = errors.New("malformed lookup record")
	ErrEmptyName       = errors.New("empty name")
	ErrNoEndpoints     = errors.New("at least one lookup endpoint is required")
)

func errorLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrServer):
		return "server"
	case errors.Is(err, ErrSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, ErrMalformedRecord):
		return "malformed"
	default:
		return "error"
	}
}
