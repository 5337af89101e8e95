// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jaychenthinkfast/OneTabCloud/internal/app"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/utils"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

func (h *Handler) listContainers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	containers, err := h.services.ContainerService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContainers").Msg(app.MsgErrorListingContainers)
		http.Error(w, app.MsgErrorListingContainers, statusFromError(err))
		return
	}

	utils.WriteJSON(w, containers, http.StatusOK)
}

func (h *Handler) createContainer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateContainerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.createContainer").Msg("invalid container request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	container, err := h.services.ContainerService.Create(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createContainer").Msg(app.MsgErrorCreatingContainer)
		http.Error(w, app.MsgErrorCreatingContainer, statusFromError(err))
		return
	}

	utils.WriteJSON(w, container, http.StatusCreated)
}

func (h *Handler) getContainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	container, err := h.services.ContainerService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContainer").Str("container_id", id).Msg(app.MsgErrorGettingContainer)
		http.Error(w, app.MsgErrorGettingContainer, statusFromError(err))
		return
	}

	utils.WriteJSON(w, container, http.StatusOK)
}

func (h *Handler) updateContainer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var req models.UpdateContainerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.updateContainer").Msg("invalid container request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	container, err := h.services.ContainerService.Update(ctx, id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateContainer").Str("container_id", id).Msg(app.MsgErrorUpdatingContainer)
		http.Error(w, app.MsgErrorUpdatingContainer, statusFromError(err))
		return
	}

	utils.WriteJSON(w, container, http.StatusOK)
}

// decodeBody reads a JSON body of at most maxRequestBody bytes into dst. It
// writes a 400 response and returns false on failure.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.decodeBody").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}
