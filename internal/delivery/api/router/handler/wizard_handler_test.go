package handler

import (
	"net/http"
	"testing"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/workflow"
	mockUsecase "kinconnect/internal/mocks/usecase"
	"kinconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWizardHandler(t *testing.T) (*WizardHandler, *mockUsecase.MockWizardUsecase) {
	wizardUC := mockUsecase.NewMockWizardUsecase(t)

	return NewWizardHandler(WizardHandlerParams{WizardUC: wizardUC, Logger: discardLogger()}), wizardUC
}

func TestWizardHandler_CreateSession(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/sessions", "")

	session := entity.NewSession(fixedTime)
	wizardUC.EXPECT().CreateSession(mock.Anything).Return(&usecase.SessionHandle{Token: "tok", Session: session}, nil)

	require.NoError(t, handler.CreateSession(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	data, ok := decodeBody(t, rec)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok", data["token"])
	assert.Equal(t, string(workflow.StepLanding), data["session"].(map[string]any)["step"])
}

func TestWizardHandler_RequiresSession(t *testing.T) {
	handler, _ := createTestWizardHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/session/steps/next", "")

	require.NoError(t, handler.Next(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
}

func TestWizardHandler_Next_InvalidTransition(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/steps/next", "")

	wizardUC.EXPECT().Next(mock.Anything, sessionID).
		Return(nil, domainerrors.ErrInvalidTransition.WithDetails("add at least one family member first"))

	require.NoError(t, handler.Next(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	errInfo := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "INVALID_TRANSITION", errInfo["code"])
	assert.Equal(t, "add at least one family member first", errInfo["details"])
}

func TestWizardHandler_Back(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/steps/back", "")

	session := entity.NewSession(fixedTime)
	session.Step = workflow.StepUpload
	wizardUC.EXPECT().Back(mock.Anything, sessionID).Return(session, nil)

	require.NoError(t, handler.Back(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UPLOAD", decodeBody(t, rec)["data"].(map[string]any)["step"])
}

func TestWizardHandler_JumpTo(t *testing.T) {
	t.Run("parses step case-insensitively", func(t *testing.T) {
		handler, wizardUC := createTestWizardHandler(t)
		c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/steps/jump", `{"step":"roster"}`)

		session := entity.NewSession(fixedTime)
		session.Step = workflow.StepRoster
		wizardUC.EXPECT().JumpTo(mock.Anything, sessionID, workflow.StepRoster).Return(session, nil)

		require.NoError(t, handler.JumpTo(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown step", func(t *testing.T) {
		handler, _ := createTestWizardHandler(t)
		c, rec, _ := newSessionContext(http.MethodPost, "/api/v1/session/steps/jump", `{"step":"PAYMENT"}`)

		require.NoError(t, handler.JumpTo(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("missing step", func(t *testing.T) {
		handler, _ := createTestWizardHandler(t)
		c, rec, _ := newSessionContext(http.MethodPost, "/api/v1/session/steps/jump", `{}`)

		require.NoError(t, handler.JumpTo(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "step: required", errInfo["details"])
	})
}

func TestWizardHandler_AddMember(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, wizardUC := createTestWizardHandler(t)
		c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/members",
			`{"name":"Ada","shirtType":"WOMEN","size":"L","quantity":2}`)

		wizardUC.EXPECT().
			AddMember(mock.Anything, sessionID, mock.MatchedBy(func(in usecase.MemberInput) bool {
				return in.Name == "Ada" && in.ShirtType == "WOMEN" && in.Size == "L" && in.Quantity != nil && *in.Quantity == 2
			})).
			Return(entity.NewSession(fixedTime), nil)

		require.NoError(t, handler.AddMember(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects unknown size", func(t *testing.T) {
		handler, _ := createTestWizardHandler(t)
		c, rec, _ := newSessionContext(http.MethodPost, "/api/v1/session/members", `{"name":"Ada","size":"XXL"}`)

		require.NoError(t, handler.AddMember(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "size: oneof", errInfo["details"])
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		handler, _ := createTestWizardHandler(t)
		c, rec, _ := newSessionContext(http.MethodPost, "/api/v1/session/members", `{"quantity":-1}`)

		require.NoError(t, handler.AddMember(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWizardHandler_UpdateMember_InvalidID(t *testing.T) {
	handler, _ := createTestWizardHandler(t)
	c, rec, _ := newSessionContext(http.MethodPatch, "/api/v1/session/members/nope", `{"name":"Ada"}`)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, handler.UpdateMember(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestWizardHandler_RemoveMember_NotFound(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	memberID := uuid.New()
	c, rec, sessionID := newSessionContext(http.MethodDelete, "/api/v1/session/members/"+memberID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(memberID.String())

	wizardUC.EXPECT().RemoveMember(mock.Anything, sessionID, memberID).Return(nil, domainerrors.ErrMemberNotFound)

	require.NoError(t, handler.RemoveMember(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MEMBER_NOT_FOUND", errorCode(t, rec))
}

func TestWizardHandler_GenerateAll(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/design/generate-all", "")

	failedID := uuid.New()
	wizardUC.EXPECT().GenerateAll(mock.Anything, sessionID).Return(&usecase.GenerationReport{
		Session:   entity.NewSession(fixedTime),
		Generated: []uuid.UUID{},
		Failed: []usecase.GenerationFailure{
			{Target: usecase.TargetMember, MemberID: failedID, Code: "VENDOR_UNAVAILABLE", Message: "vendor down"},
		},
	}, nil)

	require.NoError(t, handler.GenerateAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	failed := data["failed"].([]any)
	require.Len(t, failed, 1)
	assert.Equal(t, failedID.String(), failed[0].(map[string]any)["memberId"])
}

func TestWizardHandler_Quote(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	c, rec, sessionID := newSessionContext(http.MethodGet, "/api/v1/session/quote", "")

	wizardUC.EXPECT().Quote(mock.Anything, sessionID).
		Return(&usecase.Quote{Lines: []usecase.QuoteLine{}, TotalCents: 5000, TotalDisplay: "$50.00", Currency: "usd"}, nil)

	require.NoError(t, handler.Quote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.InDelta(t, 5000, data["totalCents"], 0)
	assert.Equal(t, "$50.00", data["totalDisplay"])
}

func TestWizardHandler_UpdateShipping_InvalidEmail(t *testing.T) {
	handler, _ := createTestWizardHandler(t)
	c, rec, _ := newSessionContext(http.MethodPut, "/api/v1/session/shipping", `{"fullName":"Ada","email":"not-an-email"}`)

	require.NoError(t, handler.UpdateShipping(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "email: email", errInfo["details"])
}

func TestWizardHandler_Checkout(t *testing.T) {
	t.Run("forwards the card", func(t *testing.T) {
		handler, wizardUC := createTestWizardHandler(t)
		c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/checkout",
			`{"cardNumber":"4242424242424242","expiry":"12/30","cvc":"123"}`)

		session := entity.NewSession(fixedTime)
		session.Step = workflow.StepSuccess
		session.Confirmation = &entity.OrderConfirmation{OrderID: "PF-1"}
		wizardUC.EXPECT().
			Checkout(mock.Anything, sessionID, entity.PaymentDetails{CardNumber: "4242424242424242", Expiry: "12/30", CVC: "123"}).
			Return(session, nil)

		require.NoError(t, handler.Checkout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, "SUCCESS", data["step"])
		assert.Equal(t, "PF-1", data["confirmation"].(map[string]any)["orderId"])
	})

	t.Run("declined", func(t *testing.T) {
		handler, wizardUC := createTestWizardHandler(t)
		c, rec, sessionID := newSessionContext(http.MethodPost, "/api/v1/session/checkout",
			`{"cardNumber":"4242","expiry":"12/30","cvc":"123"}`)

		wizardUC.EXPECT().Checkout(mock.Anything, sessionID, mock.Anything).Return(nil, domainerrors.ErrPaymentDeclined)

		require.NoError(t, handler.Checkout(c))

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Equal(t, "PAYMENT_DECLINED", errorCode(t, rec))
	})

	t.Run("missing cvc", func(t *testing.T) {
		handler, _ := createTestWizardHandler(t)
		c, rec, _ := newSessionContext(http.MethodPost, "/api/v1/session/checkout", `{"cardNumber":"4242424242424242","expiry":"12/30"}`)

		require.NoError(t, handler.Checkout(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWizardHandler_ShareQRCode(t *testing.T) {
	handler, wizardUC := createTestWizardHandler(t)
	c, rec, sessionID := newSessionContext(http.MethodGet, "/api/v1/session/share/qr", "")

	png := []byte{0x89, 'P', 'N', 'G'}
	wizardUC.EXPECT().ShareQRCode(mock.Anything, sessionID).Return(png, nil)

	require.NoError(t, handler.ShareQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
