package http

import (
	"time"

	resty "gopkg.in/resty.v1"
)

// ClientProvider ...
type ClientProvider struct {
	restyClient *resty.Client
}

// NewClientProvider initiate a new client object
func NewClientProvider(timeout time.Duration) *ClientProvider {
	return &ClientProvider{
		restyClient: resty.New().SetTimeout(timeout),
	}
}

// Response returned from http request
type Response struct {
	StatusCode int
	Body       []byte
}

// Request http
func (h *ClientProvider) Request(url string, method string, header map[string]string, body []byte, params map[string]string) (statusCode int, resBody []byte, err error) {
	req := h.restyClient.R()

	if cType, ok := header["Content-Type"]; !ok || cType == "application/json" {
		req.SetHeader("Content-Type", "application/json")
		delete(header, "Content-Type")
	}

	if header != nil {
		req.SetHeaders(header)
	}

	if params != nil {
		req.SetQueryParams(params)
	}

	if body != nil {
		req.SetBody(body)
	}

	res, err := req.Execute(method, url)
	if err != nil {
		return 0, nil, err
	}

	return res.StatusCode(), res.Body(), nil
}

// Get requests http API with no headers, body or extra params
func (h *ClientProvider) Get(url string) (int, []byte, error) {
	return h.Request(url, "GET", nil, nil, nil)
}
