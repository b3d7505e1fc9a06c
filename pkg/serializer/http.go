// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/NVIDIA/envprobe/pkg/defaults"
)

// UserAgent is sent on outbound requests.
const UserAgent = "envprobe-serializer/1.0"

// maxFetchBytes caps documents fetched from URLs.
const maxFetchBytes = 16 << 20

// RespondJSON writes a JSON response with the given status code and data.
// It encodes before writing headers so errors never produce partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// ClientOption configures the retrying HTTP client.
type ClientOption func(*retryablehttp.Client)

// WithRetryMax sets the number of retries after the first attempt.
func WithRetryMax(n int) ClientOption {
	return func(c *retryablehttp.Client) {
		c.RetryMax = n
	}
}

// WithRetryWait sets the backoff bounds.
func WithRetryWait(minWait, maxWait time.Duration) ClientOption {
	return func(c *retryablehttp.Client) {
		c.RetryWaitMin = minWait
		c.RetryWaitMax = maxWait
	}
}

// WithTimeout sets the total per-attempt timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *retryablehttp.Client) {
		c.HTTPClient.Timeout = d
	}
}

// NewHTTPClient returns a retrying client with envprobe's default timeouts
// and backoff, logging through slog.
func NewHTTPClient(opts ...ClientOption) *retryablehttp.Client {
	o := defaults.OutboundHTTP()
	c := retryablehttp.NewClient()
	c.RetryMax = o.RetryMax
	c.RetryWaitMin = o.RetryWaitMin
	c.RetryWaitMax = o.RetryWaitMax
	c.Logger = slog.Default()
	c.HTTPClient = &http.Client{
		Timeout:   o.Total,
		Transport: newTransport(o),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newTransport(o defaults.Outbound) *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   o.Connect,
			KeepAlive: o.KeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   o.TLSHandshake,
		ResponseHeaderTimeout: o.ResponseHeader,
		ExpectContinueTimeout: o.ExpectContinue,
		IdleConnTimeout:       o.IdleConn,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Fetch downloads the document at url, retrying transient failures.
func Fetch(ctx context.Context, client *retryablehttp.Client, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty url")
	}
	if client == nil {
		client = NewHTTPClient()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// HTTPWriter uploads serialized documents with a POST request.
type HTTPWriter struct {
	format Format
	url    string
	client *retryablehttp.Client
}

// NewHTTPWriter creates a writer that POSTs documents to url.
func NewHTTPWriter(format Format, url string, opts ...ClientOption) *HTTPWriter {
	return &HTTPWriter{
		format: normalize(format),
		url:    url,
		client: NewHTTPClient(opts...),
	}
}

// Serialize encodes v and uploads it, retrying on connection errors and 5xx.
func (w *HTTPWriter) Serialize(ctx context.Context, v any) error {
	body, err := Marshal(w.format, v)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, w.url, body)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.format.ContentType())
	req.Header.Set("User-Agent", UserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload to %s: %w", w.url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxFetchBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload to %s rejected: status %d", w.url, resp.StatusCode)
	}

	slog.Debug("uploaded document", "url", w.url, "format", w.format, "bytes", len(body))
	return nil
}
