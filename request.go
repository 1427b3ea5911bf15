package dispatch

// Request is a single request handed to Server.Dispatch by a transport.
type Request struct {
	Method Method
	Path   Path
	Body   []byte

	// ID is an optional correlation ID. The RequestID middleware fills it
	// in when empty.
	ID string
}

// NewRequest builds a request for the given method and path.
func NewRequest[P ~string](m Method, path P, body []byte) *Request {
	return &Request{Method: m, Path: Path(path), Body: body}
}

// NewGet builds a GET request.
func NewGet[P ~string](path P, body []byte) *Request {
	return NewRequest(MethodGet, path, body)
}

// NewPost builds a POST request.
func NewPost[P ~string](path P, body []byte) *Request {
	return NewRequest(MethodPost, path, body)
}
