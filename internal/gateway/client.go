package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"grandhotel/shared/constant"
	"grandhotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	fieldSuccess = "success"
	fieldError   = "error"
)

var (
	errMalformedBody = errors.New("malformed response body")
	errMissingField  = errors.New("response field missing")
)

// Envelope is a decoded api response: success, error and the named payload fields.
type Envelope map[string]json.RawMessage

// Decode unmarshals the payload field key into dest.
func (e Envelope) Decode(key string, dest any) error {
	raw, ok := e[key]
	if !ok {
		return fmt.Errorf("%w: %s", errMissingField, key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %s: %w", errMalformedBody, key, err)
	}

	return nil
}

func (e Envelope) success() bool {
	var ok bool

	_ = json.Unmarshal(e[fieldSuccess], &ok)

	return ok
}

func (e Envelope) message() string {
	var msg string

	_ = json.Unmarshal(e[fieldError], &msg)

	return msg
}

// Call sends one request to the remote api. Failures to reach the api, 5xx answers and
// undecodable bodies are returned as *NetworkError; any other unsuccessful answer is
// returned as a *failure.Failure carrying the status and the api's error message.
func (g *gatewayImpl) Call(ctx context.Context, resource, method string, query url.Values, body any) (env Envelope, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".Call")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"resource": resource, "method": method})

	networkError := func(status int, cause error) *NetworkError {
		return &NetworkError{Resource: resource, Method: method, StatusCode: status, Err: cause}
	}

	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		reqBody = bytes.NewBuffer(payload)
	}

	endpoint := strings.TrimRight(g.baseURL, "/") + "/" + resource
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if token := g.accessToken(ctx); token != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("resource", resource).Str("method", method).Msg("remote api unreachable")

		return nil, networkError(0, err)
	}
	defer resp.Body.Close()

	scope.SetAttribute("status_code", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(resp.StatusCode, err)
	}

	if err = json.Unmarshal(raw, &env); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Str("resource", resource).Msg("remote api returned malformed body")

		return nil, networkError(resp.StatusCode, fmt.Errorf("%w: %w", errMalformedBody, err))
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, networkError(resp.StatusCode, errors.New(env.message()))
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.success() {
		code := resp.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusInternalServerError
		}

		return nil, &failure.Failure{Code: code, Message: env.message()}
	}

	return env, nil
}
