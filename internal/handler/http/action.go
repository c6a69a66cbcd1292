// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
)

// action serves the whole protocol on POST /.
//
// An empty body is a probe, answered with the version banner so callers can
// detect a live server without knowing any action. Everything else is an
// envelope: action failures travel inside it with status 200, and only the
// API key check is a transport-level rejection.
func (h *Handler) action(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		_, _ = utils.WriteJSON(w, models.ErrorResponse("error reading request body"), http.StatusBadRequest)
		return
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		_, _ = utils.WriteJSON(w, map[string]any{"apiVersion": h.bridge.APIVersion()}, http.StatusOK)
		return
	}

	var req models.ActionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug().Err(err).Msg("malformed request envelope")
		_, _ = utils.WriteJSON(w, models.ErrorResponse("bad request: invalid JSON"), http.StatusOK)
		return
	}

	if h.app.APIKey != "" && req.Key != h.app.APIKey {
		log.Warn().Str("action", req.Action).Msg("request rejected: wrong api key")
		_, _ = utils.WriteJSON(w, models.ErrorResponse("valid api key must be provided"), http.StatusForbidden)
		return
	}

	resp := h.bridge.Handle(r.Context(), req)
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

type healthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	CollectionPath string `json:"collection_path"`
	APIKeySet      bool   `json:"api_key_set"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := h.store.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("collection database unreachable")
		status = "degraded"
	}

	_, _ = utils.WriteJSON(w, healthResponse{
		Status:         status,
		Version:        h.app.Version,
		CollectionPath: h.store.Path(),
		APIKeySet:      h.app.APIKey != "",
	}, http.StatusOK)
}
