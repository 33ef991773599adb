package handler

import (
	"log/slog"
	"net/http"

	"kinconnect/internal/delivery/api/middleware"
	"kinconnect/internal/delivery/api/response"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/workflow"
	"kinconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WizardHandlerParams holds dependencies for WizardHandler, injected by Fx.
type WizardHandlerParams struct {
	fx.In

	WizardUC usecase.WizardUsecase
	Logger   *slog.Logger
}

// WizardHandler exposes the wizard session to clients. Every route except
// CreateSession runs behind the session middleware.
type WizardHandler struct {
	wizardUC usecase.WizardUsecase
	logger   *slog.Logger
}

// NewWizardHandler is the constructor for WizardHandler
func NewWizardHandler(params WizardHandlerParams) *WizardHandler {
	return &WizardHandler{
		wizardUC: params.WizardUC,
		logger:   params.Logger,
	}
}

// JumpRequest is the body of a step-indicator jump.
type JumpRequest struct {
	Step string `json:"step" validate:"required"`
}

// bindValid binds the body into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func currentSession(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return id, nil
}

func memberParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid member id")
	}

	return id, nil
}

// CreateSession starts a new wizard and returns its bearer token.
func (h *WizardHandler) CreateSession(c echo.Context) error {
	handle, err := h.wizardUC.CreateSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, handle)
}

func (h *WizardHandler) GetSession(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// ResetSession is the only way out of SUCCESS.
func (h *WizardHandler) ResetSession(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.ResetSession(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) Next(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.Next(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) Back(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.Back(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// JumpTo handles a click on the step indicator. Only earlier steps are reachable.
func (h *WizardHandler) JumpTo(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req JumpRequest
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	step, ok := workflow.ParseStep(req.Step)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown step "+req.Step))
	}

	session, err := h.wizardUC.JumpTo(c.Request().Context(), sessionID, step)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}
