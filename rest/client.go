package rest

import (
	"fmt"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/taskboard-io/taskboard-libraries/auth"
	"github.com/taskboard-io/taskboard-libraries/endpoint"
)

// HTTPClientProvider used in connecting to the remote http server
type HTTPClientProvider interface {
	Request(url string, method string, header map[string]string, body []byte, params map[string]string) (statusCode int, resBody []byte, err error)
}

// Error is returned when the API answers with a non-2xx status
type Error struct {
	StatusCode int
	Body       []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("rest: request failed with status %d", e.StatusCode)
}

// ClientProvider executes resolved endpoints against the API
type ClientProvider struct {
	BaseURL     string
	MaxAttempts uint
	RetryDelay  time.Duration
	httpClient  HTTPClientProvider
	log         *logrus.Entry
}

// NewClientProvider ...
func NewClientProvider(baseURL string, httpClient HTTPClientProvider) *ClientProvider {
	return &ClientProvider{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		MaxAttempts: 3,
		RetryDelay:  200 * time.Millisecond,
		httpClient:  httpClient,
		log:         logrus.WithField("component", "rest"),
	}
}

// Execute performs one API call: credentials from the auth context are bound
// as query parameters, transport failures and 5xx responses are retried with
// backoff, other non-2xx statuses become a *rest.Error, and a successful
// response body is unmarshalled into out (skipped when out is nil).
func (c *ClientProvider) Execute(a *auth.Context, ep endpoint.Endpoint, params map[string]string, body []byte, out interface{}) error {
	if err := a.Validate(); err != nil {
		return err
	}

	query := a.QueryParams()
	for k, v := range params {
		query[k] = v
	}

	requestID := uuid.New().String()
	headers := map[string]string{"X-Request-Id": requestID}
	url := c.BaseURL + "/" + ep.Path

	var status int
	var res []byte
	err := retry.Do(func() error {
		var err error
		status, res, err = c.httpClient.Request(url, ep.Method, headers, body, query)
		if err != nil {
			return err
		}
		if status >= 500 {
			return &Error{StatusCode: status, Body: res}
		}
		return nil
	},
		retry.Attempts(c.MaxAttempts),
		retry.Delay(c.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true))
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method":     ep.Method,
			"path":       ep.Path,
			"request_id": requestID,
		}).Error(err)
		return err
	}

	if status >= 400 {
		c.log.WithFields(logrus.Fields{
			"method":     ep.Method,
			"path":       ep.Path,
			"status":     status,
			"request_id": requestID,
		}).Error("request rejected")
		return &Error{StatusCode: status, Body: res}
	}

	if out == nil {
		return nil
	}

	if err := jsoniter.Unmarshal(res, out); err != nil {
		c.log.WithField("request_id", requestID).Error("failed to unmarshal response: ", err)
		return errors.Wrapf(err, "rest: could not unmarshal %s %s response", ep.Method, ep.Path)
	}

	return nil
}
