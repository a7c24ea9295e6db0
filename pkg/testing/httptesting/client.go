package httptesting

import (
	"encoding/json"
	"net/http"
)

// EchoTransport replies to every request with a fixed body, optionally
// recording the outgoing request for the caller to inspect.
type EchoTransport struct {
	// saveTo receives the address of a caller-local variable. RoundTrip has
	// no way to hand back the request it saw, so the transport writes it
	// there instead.
	saveTo  **http.Request
	content string
	err     error
}

func (e *EchoTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if e.saveTo != nil {
		*e.saveTo = req
	}

	resp := BuildResponseString(http.StatusOK, e.content)
	SetHeader(resp, "Content-Type", "application/json")
	return resp, e.err
}

func HttpClientWithContent(content string) *http.Client {
	transport := EchoTransport{content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithError(err error) *http.Client {
	transport := EchoTransport{err: err}
	return &http.Client{Transport: &transport}
}

func HttpClientWithJson(jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	transport := EchoTransport{err: err, content: string(jsonBytes)}
	return &http.Client{Transport: &transport}
}

// HttpClientSaverWithJson stores the outgoing request in *saved so the test
// can verify headers and body after the call.
func HttpClientSaverWithJson(saved **http.Request, jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	transport := EchoTransport{saveTo: saved, err: err, content: string(jsonBytes)}
	return &http.Client{Transport: &transport}
}
