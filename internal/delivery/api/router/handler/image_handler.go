package handler

import (
	"net/http"

	"kinconnect/internal/delivery/api/response"
	"kinconnect/internal/domain/entity"
	"kinconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ImageHandler proxies image processing vendors.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
}

func NewImageHandler(imageUC usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{imageUC: imageUC}
}

// RemoveBackgroundRequest is a data URL or http(s) URL.
type RemoveBackgroundRequest struct {
	Image entity.ImageRef `json:"image"`
}

// RemoveBackgroundResponse points at the cut-out image.
type RemoveBackgroundResponse struct {
	URL entity.ImageRef `json:"url"`
}

// RemoveBackground handles POST /api/remove-background.
func (h *ImageHandler) RemoveBackground(c echo.Context) error {
	var req RemoveBackgroundRequest
	if err := c.Bind(&req); err != nil {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: "Invalid JSON body"})
	}
	if req.Image.Empty() {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: "Missing image"})
	}

	url, err := h.imageUC.RemoveBackground(c.Request().Context(), req.Image)
	if err != nil {
		return response.HandlePlainError(c, err)
	}

	return response.Plain(c, http.StatusOK, RemoveBackgroundResponse{URL: url})
}
