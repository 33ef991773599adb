package handler

import (
	"net/http"

	"kinconnect/internal/delivery/api/response"
	"kinconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ShippingRequest is the shipping form. Fields may be saved incomplete;
// completeness is checked when the order is placed.
type ShippingRequest struct {
	FullName     string `json:"fullName" validate:"max=120"`
	AddressLine1 string `json:"addressLine1" validate:"max=200"`
	City         string `json:"city" validate:"max=100"`
	State        string `json:"state" validate:"max=100"`
	Zip          string `json:"zip" validate:"max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=40"`
	Country      string `json:"country" validate:"omitempty,len=2"`
}

// CheckoutRequest carries the card. It is forwarded to the payment gateway
// and never stored.
type CheckoutRequest struct {
	CardNumber string `json:"cardNumber" validate:"required,max=19"`
	Expiry     string `json:"expiry" validate:"required,max=7"`
	CVC        string `json:"cvc" validate:"required,max=4"`
}

func (h *WizardHandler) Quote(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.wizardUC.Quote(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

func (h *WizardHandler) UpdateShipping(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ShippingRequest
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.UpdateShipping(c.Request().Context(), sessionID, entity.ShippingDetails(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) PreviewCheckout(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.PreviewCheckout(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Checkout pays and places the order. On success the session is at SUCCESS
// and carries the confirmation.
func (h *WizardHandler) Checkout(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CheckoutRequest
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.wizardUC.Checkout(c.Request().Context(), sessionID, entity.PaymentDetails(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *WizardHandler) Share(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.wizardUC.Share(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

func (h *WizardHandler) ShareQRCode(c echo.Context) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.wizardUC.ShareQRCode(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
