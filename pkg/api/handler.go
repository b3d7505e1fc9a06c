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

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/envprobe/pkg/defaults"
	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform/headers"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
	"github.com/NVIDIA/envprobe/pkg/serializer"
	"github.com/NVIDIA/envprobe/pkg/server"
)

// Routes served by Handler.
const (
	PathProbe     = "/v1/probe"
	PathProbeBulk = "/v1/probe/bulk"
)

const (
	// sourceRequest marks reports derived from request headers.
	sourceRequest = "request"

	defaultMaxBodyBytes    = 1 << 20
	defaultMaxBulkRequests = 100
	defaultBulkConcurrency = 8
)

// Handler serves probe reports over HTTP.
type Handler struct {
	Version         string
	MaxBulkRequests int
	MaxBodyBytes    int64
	BulkConcurrency int
	Logger          *slog.Logger
}

// NewHandler returns a Handler with defaults for unset limits.
func NewHandler(version string, maxBulk int) *Handler {
	if maxBulk <= 0 {
		maxBulk = defaultMaxBulkRequests
	}
	return &Handler{
		Version:         version,
		MaxBulkRequests: maxBulk,
		MaxBodyBytes:    defaultMaxBodyBytes,
		BulkConcurrency: defaultBulkConcurrency,
		Logger:          slog.Default(),
	}
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// Routes returns the handler map for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathProbe:     h.HandleProbe,
		PathProbeBulk: h.HandleProbeBulk,
	}
}

// HandleProbe reports on the requesting client. GET derives the
// environment from request headers; POST takes a profile body (JSON or
// YAML) and fills a missing user agent and languages from the headers.
func (h *Handler) HandleProbe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ProbeHandlerTimeout)
	defer cancel()

	w.Header().Set(headers.HeaderAcceptClientHints, headers.AcceptCH)
	w.Header().Set("Vary", headers.AcceptCH)
	w.Header().Set("Cache-Control", "no-store")

	var (
		report *Report
		origin string
	)
	switch r.Method {
	case http.MethodGet:
		report = NewReport(headers.FromRequest(r), sourceRequest, h.Version, h.Logger)
		origin = originHeaders
	case http.MethodPost:
		p, err := h.decodeProfile(w, r)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Invalid profile", nil)
			return
		}
		fillFromRequest(p, r)
		report = NewReport(profile.NewProvider(*p), p.Name, h.Version, h.Logger)
		origin = originProfile
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err := ctx.Err(); err != nil {
		server.WriteErrorFromErr(w, r,
			errors.Wrap(errors.ErrCodeTimeout, "probe timed out", err), "", nil)
		return
	}

	recordReport(origin, report)
	h.logger().Debug("probe report",
		"browser", report.System.Browser.Name,
		"version", report.System.Browser.Version,
		"issues", len(report.Issues),
		"meetsMinimumRequirements", report.MeetsMinimumRequirements,
	)

	serializer.RespondJSON(w, http.StatusOK, report)
}

func (h *Handler) decodeProfile(w http.ResponseWriter, r *http.Request) (*profile.Profile, error) {
	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	defer body.Close()
	return profile.Decode(formatFromContentType(r.Header.Get("Content-Type")), body)
}

// fillFromRequest completes a posted profile with what the request carries.
func fillFromRequest(p *profile.Profile, r *http.Request) {
	if p.UserAgent == "" {
		p.UserAgent = r.UserAgent()
	}
	if len(p.Navigator.Languages) == 0 {
		p.Navigator.Languages = headers.ParseLanguages(r.Header.Get(headers.HeaderAcceptLanguage))
	}
}

// BulkRequest carries the profiles of a bulk probe.
type BulkRequest struct {
	Profiles []profile.Profile `json:"profiles" yaml:"profiles"`
}

// BulkItem is the result for one profile, at the profile's input index.
type BulkItem struct {
	Index  int     `json:"index" yaml:"index"`
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Report *Report `json:"report,omitempty" yaml:"report,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// BulkResponse lists results in request order.
type BulkResponse struct {
	Results []BulkItem `json:"results" yaml:"results"`
	Failed  int        `json:"failed" yaml:"failed"`
}

// HandleProbeBulk evaluates up to MaxBulkRequests profiles concurrently.
// Invalid profiles produce per-item errors rather than failing the batch.
func (h *Handler) HandleProbeBulk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.BulkProbeHandlerTimeout)
	defer cancel()

	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes*int64(max(h.MaxBulkRequests, 1)))
	defer body.Close()

	req, err := decodeBulk(formatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid bulk request", nil)
		return
	}

	if len(req.Profiles) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Bulk request has no profiles", false, nil)
		return
	}
	if len(req.Profiles) > h.MaxBulkRequests {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Too many profiles in bulk request", false, map[string]any{
				"count": len(req.Profiles),
				"max":   h.MaxBulkRequests,
			})
		return
	}

	bulkBatchSize.Observe(float64(len(req.Profiles)))
	resp, err := h.evaluateBulk(ctx, r, req.Profiles)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Bulk probe failed", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, resp)
}

func decodeBulk(format serializer.Format, r io.Reader) (*BulkRequest, error) {
	req, err := serializer.FromReader[BulkRequest](format, r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode bulk request", err)
	}
	return req, nil
}

func (h *Handler) evaluateBulk(ctx context.Context, r *http.Request, profiles []profile.Profile) (*BulkResponse, error) {
	results := make([]BulkItem, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(h.BulkConcurrency, 1))

	for i := range profiles {
		p := profiles[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(errors.ErrCodeTimeout, "bulk probe timed out", err)
			}
			item := BulkItem{Index: i, Name: p.Name}
			if err := p.Validate(); err != nil {
				item.Error = err.Error()
			} else {
				fillFromRequest(&p, r)
				item.Report = NewReport(profile.NewProvider(p), p.Name, h.Version, h.Logger)
				recordReport(originBulk, item.Report)
			}
			results[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &BulkResponse{Results: results}
	for _, item := range results {
		if item.Error != "" {
			resp.Failed++
		}
	}
	return resp, nil
}

// formatFromContentType maps a request media type to a decode format.
// Anything not YAML is decoded as JSON.
func formatFromContentType(contentType string) serializer.Format {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i != -1 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return serializer.FormatYAML
	default:
		return serializer.FormatJSON
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}

