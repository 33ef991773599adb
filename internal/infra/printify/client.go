// Package printify uploads artwork to and submits orders through the Printify REST API.
package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/errors"
	"kinconnect/internal/util"
)

const (
	vendorName = "printify"

	defaultBaseURL        = "https://api.printify.com/v1"
	defaultFileName       = "kinconnect-image.png"
	defaultShippingMethod = 1
)

type uploadRequest struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Contents string `json:"contents,omitempty"`
}

type uploadResponse struct {
	ID         string `json:"id"`
	PreviewURL string `json:"preview_url"`
	Src        string `json:"src"`
}

type orderRequest struct {
	ExternalID               string            `json:"external_id"`
	Label                    string            `json:"label"`
	LineItems                []entity.LineItem `json:"line_items"`
	ShippingMethod           int               `json:"shipping_method"`
	SendShippingNotification bool              `json:"send_shipping_notification"`
	SendToProduction         bool              `json:"send_to_production"`
	AddressTo                address           `json:"address_to"`
}

type address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// client implements the service.FulfillmentClient interface.
type client struct {
	token          string
	baseURL        string
	shopID         string
	shippingMethod int
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient is the constructor for client.
func NewClient(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.FulfillmentClient {
	pc := cfg.Printify

	c := &client{
		token:          strings.TrimSpace(pc.APIToken),
		baseURL:        strings.TrimRight(pc.BaseURL, "/"),
		shopID:         strings.TrimSpace(pc.ShopID),
		shippingMethod: pc.ShippingMethod,
		httpClient:     httpClient,
		logger:         logger.With(slog.String("vendor", vendorName)),
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.shippingMethod <= 0 {
		c.shippingMethod = defaultShippingMethod
	}

	return c
}

// UploadImage sends a data URL inline or asks Printify to fetch a remote URL.
// It returns the uploaded preview URL, falling back to src and then to the input.
func (c *client) UploadImage(ctx context.Context, img entity.ImageRef, fileName string) (string, error) {
	if c.token == "" {
		return "", domainerrors.ErrFulfillmentNotConfigured.WithDetails("printify api token is not set")
	}
	if img.Empty() {
		return "", domainerrors.ErrValidationFailed.WithDetails("no image to upload")
	}
	if fileName == "" {
		fileName = defaultFileName
	}

	payload := uploadRequest{FileName: fileName}
	if img.IsDataURL() {
		payload.Contents = img.Payload()
		c.logger.DebugContext(ctx, "uploading inline artwork",
			slog.String("file_name", fileName),
			slog.String("size", util.FormatBytes(int64(len(payload.Contents)*3/4))),
		)
	} else {
		payload.URL = string(img)
	}

	raw, err := c.post(ctx, c.baseURL+"/uploads/images.json", payload)
	if err != nil {
		return "", err
	}

	var resp uploadResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", domainerrors.NewVendorError(vendorName, 0, nil, errors.Wrap(err, "decode upload response"))
	}

	switch {
	case resp.PreviewURL != "":
		return resp.PreviewURL, nil
	case resp.Src != "":
		return resp.Src, nil
	default:
		return string(img), nil
	}
}

// SubmitOrder creates one order in the configured shop.
func (c *client) SubmitOrder(ctx context.Context, sub entity.Submission) (*entity.SubmissionResult, error) {
	if c.token == "" || c.shopID == "" {
		return nil, domainerrors.ErrFulfillmentNotConfigured
	}

	fallbackLast := "Test"
	if sub.SendToProduction {
		fallbackLast = "Order"
	}
	first, last := sub.Shipping.SplitName(fallbackLast)

	country := sub.Shipping.Country
	if country == "" {
		country = "US"
	}

	payload := orderRequest{
		ExternalID:               sub.ExternalID,
		Label:                    sub.Label,
		LineItems:                sub.LineItems,
		ShippingMethod:           c.shippingMethod,
		SendShippingNotification: sub.SendToProduction,
		SendToProduction:         sub.SendToProduction,
		AddressTo: address{
			FirstName: first,
			LastName:  last,
			Email:     sub.Shipping.Email,
			Phone:     sub.Shipping.Phone,
			Country:   country,
			Region:    sub.Shipping.State,
			Address1:  sub.Shipping.AddressLine1,
			City:      sub.Shipping.City,
			Zip:       sub.Shipping.Zip,
		},
	}

	raw, err := c.post(ctx, fmt.Sprintf("%s/shops/%s/orders.json", c.baseURL, c.shopID), payload)
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, domainerrors.NewVendorError(vendorName, 0, raw, errors.Wrap(err, "decode order response"))
	}

	orderID := stringField(body, "id")
	if orderID == "" {
		orderID = stringField(body, "external_id")
	}
	if orderID == "" {
		orderID = sub.ExternalID
	}

	c.logger.InfoContext(ctx, "printify order created",
		slog.String("order_id", orderID),
		slog.String("external_id", sub.ExternalID),
		slog.Int("line_items", len(sub.LineItems)),
		slog.Bool("send_to_production", sub.SendToProduction),
	)

	return &entity.SubmissionResult{OrderID: orderID, Raw: raw}, nil
}

func (c *client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal printify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create printify request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewVendorError(vendorName, 0, nil, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewVendorError(vendorName, resp.StatusCode, nil, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "printify request failed",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.NewVendorError(vendorName, resp.StatusCode, raw, nil)
	}

	return raw, nil
}

func stringField(body map[string]any, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
