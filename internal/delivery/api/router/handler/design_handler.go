package handler

import (
	"net/http"

	"kinconnect/internal/delivery/api/response"
	"kinconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

func (h *WizardHandler) UpdateDesign(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DesignPatch
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.UpdateDesign(c.Request().Context(), sessionID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GenerateFront stylizes the family front artwork. Vendor authorization
// failures come back as VENDOR_UNAUTHORIZED so the client can re-authenticate.
func (h *WizardHandler) GenerateFront(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.GenerateFront(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) GenerateMember(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	memberID, err := memberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.GenerateMember(c.Request().Context(), sessionID, memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GenerateAll reports per-artwork failures in the body; the call itself
// succeeds unless the session cannot generate at all.
func (h *WizardHandler) GenerateAll(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.wizardUC.GenerateAll(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
