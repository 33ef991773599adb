package printify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Printify: &config.PrintifyConfig{
		APIToken: "pf-token",
		BaseURL:  server.URL,
		ShopID:   "shop-9",
	}}

	return NewClient(cfg, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil))).(*client)
}

func TestUploadImage(t *testing.T) {
	tests := []struct {
		name         string
		image        entity.ImageRef
		response     string
		wantURL      string
		wantContents string
		wantRemote   string
	}{
		{
			name:         "data url goes inline and prefers preview url",
			image:        "data:image/png;base64,UE5H",
			response:     `{"id":"u1","preview_url":"https://images.printify.com/u1","src":"https://src/u1"}`,
			wantURL:      "https://images.printify.com/u1",
			wantContents: "UE5H",
		},
		{
			name:       "remote url is fetched by printify and src is used",
			image:      "https://cdn.example.com/a.png",
			response:   `{"id":"u2","src":"https://src/u2"}`,
			wantURL:    "https://src/u2",
			wantRemote: "https://cdn.example.com/a.png",
		},
		{
			name:       "falls back to the input",
			image:      "https://cdn.example.com/b.png",
			response:   `{"id":"u3"}`,
			wantURL:    "https://cdn.example.com/b.png",
			wantRemote: "https://cdn.example.com/b.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/uploads/images.json", r.URL.Path)
				assert.Equal(t, "Bearer pf-token", r.Header.Get("Authorization"))

				var body uploadRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "front.png", body.FileName)
				assert.Equal(t, tt.wantContents, body.Contents)
				assert.Equal(t, tt.wantRemote, body.URL)

				_, _ = io.WriteString(w, tt.response)
			})

			got, err := c.UploadImage(context.Background(), tt.image, "front.png")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got)
		})
	}
}

func TestUploadImage_VendorFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"bad image"}`)
	})

	_, err := c.UploadImage(context.Background(), "data:image/png;base64,UE5H", "")
	require.ErrorIs(t, err, domainerrors.ErrVendorUnavailable)
}

func TestSubmitOrder_BuildsPayload(t *testing.T) {
	var got orderRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shops/shop-9/orders.json", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id":"po_123","status":"on-hold"}`)
	})

	res, err := c.SubmitOrder(context.Background(), entity.Submission{
		ExternalID: "kinconnect-test-1700000000000",
		Label:      "KinConnect Test Order",
		LineItems: []entity.LineItem{{
			PrintProviderID: 29, BlueprintID: 6, VariantID: 12100, Quantity: 2,
			PrintAreas: map[string][]entity.PrintPlacement{
				"front": {entity.CenteredPlacement("https://f")},
				"back":  {entity.CenteredPlacement("https://b")},
			},
		}},
		Shipping: entity.ShippingDetails{
			FullName: "Ada Mae Lovelace", AddressLine1: "1 Main St", City: "Austin",
			State: "TX", Zip: "78701", Email: "ada@example.com",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "po_123", res.OrderID)
	assert.NotEmpty(t, res.Raw)

	assert.Equal(t, "kinconnect-test-1700000000000", got.ExternalID)
	assert.Equal(t, 1, got.ShippingMethod)
	assert.False(t, got.SendToProduction)
	assert.False(t, got.SendShippingNotification)
	assert.Equal(t, "Ada", got.AddressTo.FirstName)
	assert.Equal(t, "Mae Lovelace", got.AddressTo.LastName)
	assert.Equal(t, "US", got.AddressTo.Country)
	assert.Equal(t, "TX", got.AddressTo.Region)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "https://b", got.LineItems[0].PrintAreas["back"][0].Src)
	assert.Equal(t, 0.5, got.LineItems[0].PrintAreas["front"][0].X)
}

func TestSubmitOrder_FallsBackToExternalID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"external_id":"kinconnect-paid-1"}`)
	})

	res, err := c.SubmitOrder(context.Background(), entity.Submission{ExternalID: "kinconnect-paid-1", SendToProduction: true})
	require.NoError(t, err)
	assert.Equal(t, "kinconnect-paid-1", res.OrderID)
}

func TestSubmitOrder_RejectionKeepsStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"errors":{"reason":"variant unavailable"}}`)
	})

	_, err := c.SubmitOrder(context.Background(), entity.Submission{})
	require.Error(t, err)

	var vendorErr *domainerrors.VendorError
	require.True(t, errors.As(err, &vendorErr))
	assert.Equal(t, http.StatusBadRequest, vendorErr.Status)
	assert.JSONEq(t, `{"errors":{"reason":"variant unavailable"}}`, string(vendorErr.Body))
}

func TestClient_NotConfigured(t *testing.T) {
	cfg := &config.Config{Printify: &config.PrintifyConfig{}}
	c := NewClient(cfg, http.DefaultClient, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.UploadImage(context.Background(), "https://x", "")
	require.ErrorIs(t, err, domainerrors.ErrFulfillmentNotConfigured)

	_, err = c.SubmitOrder(context.Background(), entity.Submission{})
	require.ErrorIs(t, err, domainerrors.ErrFulfillmentNotConfigured)
}
