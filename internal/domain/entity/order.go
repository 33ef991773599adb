package entity

import (
	"strings"
	"time"
)

// DeliveryEstimate is how long fulfillment is expected to take.
const DeliveryEstimate = 14 * 24 * time.Hour

// EstimateDelivery formats the expected delivery date for an order placed at t.
func EstimateDelivery(t time.Time) string {
	return t.Add(DeliveryEstimate).Format(time.DateOnly)
}

// ShippingDetails is the delivery address of an order.
type ShippingDetails struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Country      string `json:"country,omitempty"`
}

// MissingFields lists the required fields that are blank.
func (s ShippingDetails) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"fullName", s.FullName},
		{"addressLine1", s.AddressLine1},
		{"city", s.City},
		{"state", s.State},
		{"zip", s.Zip},
		{"email", s.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// SplitName splits FullName for the vendor address. A single word is used for both parts.
func (s ShippingDetails) SplitName(fallbackLast string) (first, last string) {
	fields := strings.Fields(s.FullName)
	if len(fields) == 0 {
		return "Customer", fallbackLast
	}
	if len(fields) == 1 {
		return fields[0], fields[0]
	}

	return fields[0], strings.Join(fields[1:], " ")
}

// PaymentDetails is the card entered at checkout. It is forwarded to the
// payment gateway and never stored.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// OrderRequest is everything fulfillment needs for one order.
type OrderRequest struct {
	Items          []Member        `json:"items"`
	Shipping       ShippingDetails `json:"shipping"`
	ShirtColorName string          `json:"shirtColorName"`
	FamilyImage    ImageRef        `json:"familyImage"`
}

// PlannedLineItem is a resolved line item before any artwork is attached.
type PlannedLineItem struct {
	MemberID        string `json:"-"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	BlueprintID     int    `json:"blueprint_id"`
	VariantID       int    `json:"variant_id"`
	PrintProviderID int    `json:"print_provider_id"`
	Color           string `json:"color"`
	Size            string `json:"size"`
	GroupSource     string `json:"group_source"`

	// BackArtwork is the member artwork this line item prints on the back.
	BackArtwork ImageRef `json:"-"`
}

// PrintPlacement positions one artwork in a print area.
type PrintPlacement struct {
	Src   string  `json:"src"`
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// CenteredPlacement fills the print area with src.
func CenteredPlacement(src string) PrintPlacement {
	return PrintPlacement{Src: src, Scale: 1, X: 0.5, Y: 0.5, Angle: 0}
}

// LineItem is one submitted garment with its artwork.
type LineItem struct {
	PrintProviderID int                         `json:"print_provider_id"`
	BlueprintID     int                         `json:"blueprint_id"`
	VariantID       int                         `json:"variant_id"`
	Quantity        int                         `json:"quantity"`
	PrintAreas      map[string][]PrintPlacement `json:"print_areas"`
}

// Submission is a fulfillment order ready to send.
type Submission struct {
	ExternalID       string
	Label            string
	LineItems        []LineItem
	Shipping         ShippingDetails
	SendToProduction bool
}

// SubmissionResult is the vendor's answer to a submission.
type SubmissionResult struct {
	OrderID string
	Raw     []byte
}

// OrderPlan is the dry-run answer for an order request.
type OrderPlan struct {
	OrderID           string            `json:"orderId"`
	EstimatedDelivery string            `json:"estimatedDelivery"`
	ShopID            string            `json:"shopId"`
	ProviderID        int               `json:"providerId"`
	LineItems         []PlannedLineItem `json:"lineItems"`
	ShippingSummary   ShippingSummary   `json:"shippingSummary"`
}

type ShippingSummary struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
	Email string `json:"email"`
}

// Summary is the short form of the address shown in plans.
func (s ShippingDetails) Summary() ShippingSummary {
	return ShippingSummary{Name: s.FullName, City: s.City, State: s.State, Zip: s.Zip, Email: s.Email}
}

// OrderConfirmation is returned once an order has been paid and submitted.
type OrderConfirmation struct {
	OrderID           string `json:"orderId"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	TotalCents        int64  `json:"totalCents"`
	TransactionID     string `json:"transactionId"`
	// Simulated is set when no fulfillment vendor is configured.
	Simulated bool `json:"simulated"`
}

// PaymentReceipt is a captured payment.
type PaymentReceipt struct {
	TransactionID string `json:"transactionId"`
	AmountCents   int64  `json:"amountCents"`
}
