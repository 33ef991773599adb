package handler

import (
	"net/http"

	"kinconnect/internal/delivery/api/response"
	"kinconnect/internal/domain/entity"
	"kinconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PhotoRequest carries the group photo as a data URL or http(s) URL.
type PhotoRequest struct {
	Image entity.ImageRef `json:"image" validate:"required"`
}

// AnalyzePhoto seeds the roster from the people detected in the group photo.
func (h *WizardHandler) AnalyzePhoto(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PhotoRequest
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.AnalyzePhoto(c.Request().Context(), sessionID, req.Image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) AddMember(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.MemberInput
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.AddMember(c.Request().Context(), sessionID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

func (h *WizardHandler) UpdateMember(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	memberID, err := memberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.MemberPatch
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.UpdateMember(c.Request().Context(), sessionID, memberID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) RemoveMember(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	memberID, err := memberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.RemoveMember(c.Request().Context(), sessionID, memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}
