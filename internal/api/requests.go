// Rigforge - PC Hardware Recommendation Expert System
// Copyright 2026 Luis Romero (lromero-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lromero-dev/rigforge

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/lromero-dev/rigforge/internal/validation"
)

// maxRequestBody caps the recommend request body. The payload is two small
// fields; anything larger is abuse.
const maxRequestBody = 4 << 10

// RecommendRequest is the request body of POST /api/v1/recommend.
type RecommendRequest struct {
	// Profile is optional and case-insensitive. Empty or "ninguno" selects
	// budget-based auto-detection.
	Profile string `json:"profile" validate:"omitempty,max=32"`

	// Budget is the total budget in catalog currency.
	Budget float64 `json:"budget" validate:"required,gt=0"`
}

// decodeRecommendRequest reads and validates the request body.
func decodeRecommendRequest(r *http.Request) (*RecommendRequest, error) {
	body := http.MaxBytesReader(nil, r.Body, maxRequestBody)
	defer body.Close() //nolint:errcheck // read-side close

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	var req RecommendRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}

	return &req, nil
}
