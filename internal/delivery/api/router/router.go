// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kinconnect/internal/delivery/api/middleware"
	"kinconnect/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WizardHandler     *handler.WizardHandler
	CatalogHandler    *handler.CatalogHandler
	ImageHandler      *handler.ImageHandler
	OrderHandler      *handler.OrderHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	wizardHandler     *handler.WizardHandler
	catalogHandler    *handler.CatalogHandler
	imageHandler      *handler.ImageHandler
	orderHandler      *handler.OrderHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		wizardHandler:     params.WizardHandler,
		catalogHandler:    params.CatalogHandler,
		imageHandler:      params.ImageHandler,
		orderHandler:      params.OrderHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	r.registerProxyRoutes(e)

	apiV1 := e.Group("/api/v1")

	// Public routes
	apiV1.POST("/sessions", r.wizardHandler.CreateSession)
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/styles", r.catalogHandler.ListStyles)
		catalogGroup.GET("/colors", r.catalogHandler.ListColors)
	}

	// Everything under /session acts on the session named by the bearer token.
	sessionGroup := apiV1.Group("/session")
	sessionGroup.Use(r.sessionMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.wizardHandler.GetSession)
		sessionGroup.POST("/reset", r.wizardHandler.ResetSession)

		sessionGroup.POST("/steps/next", r.wizardHandler.Next)
		sessionGroup.POST("/steps/back", r.wizardHandler.Back)
		sessionGroup.POST("/steps/jump", r.wizardHandler.JumpTo)

		sessionGroup.POST("/photo", r.wizardHandler.AnalyzePhoto)

		sessionGroup.POST("/members", r.wizardHandler.AddMember)
		sessionGroup.PATCH("/members/:id", r.wizardHandler.UpdateMember)
		sessionGroup.DELETE("/members/:id", r.wizardHandler.RemoveMember)
		sessionGroup.POST("/members/:id/generate", r.wizardHandler.GenerateMember)

		sessionGroup.PUT("/design", r.wizardHandler.UpdateDesign)
		sessionGroup.POST("/design/front", r.wizardHandler.GenerateFront)
		sessionGroup.POST("/design/generate-all", r.wizardHandler.GenerateAll)

		sessionGroup.GET("/quote", r.wizardHandler.Quote)
		sessionGroup.PUT("/shipping", r.wizardHandler.UpdateShipping)
		sessionGroup.POST("/checkout/preview", r.wizardHandler.PreviewCheckout)
		sessionGroup.POST("/checkout", r.wizardHandler.Checkout)

		sessionGroup.GET("/share", r.wizardHandler.Share)
		sessionGroup.GET("/share/qr", r.wizardHandler.ShareQRCode)
	}
}

// registerProxyRoutes keeps the vendor proxy paths and plain bodies that
// existing clients call directly.
func (r *router) registerProxyRoutes(e *echo.Echo) {
	e.POST("/api/remove-background", r.imageHandler.RemoveBackground)

	printifyGroup := e.Group("/api/printify")
	{
		printifyGroup.POST("/order-plan", r.orderHandler.Plan)
		printifyGroup.POST("/order-test", r.orderHandler.SubmitTestOrder)
	}

	e.POST("/api/stripe/create-payment-intent", r.orderHandler.CreatePaymentIntent)
	e.POST("/webhooks/stripe", r.orderHandler.StripeWebhook)
}
