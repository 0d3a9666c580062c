package clients

import (
	"errors"
	"io"
	"net/http"
	"time"
)

// Timeout covers the whole exchange including body read; the LINE profile
// endpoint normally answers well under a second.
const timeout = 10 * time.Second

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// Get performs a GET with the given headers and returns the drained response.
func (h *HTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header = headers

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if cerr := resp.Body.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, body, resp.Header, nil
}
