package model

import (
	"encoding/json"
	"time"

	"github.com/ikkim/winecraft-backend/pkg/payment/gcash"
)

type PayloadKind string    // which shape a checkout handoff carries
type DonationType string   // fixed tier or shopper-entered amount
type DeliveryOption string // shipping speed

const (
	PayloadCart     PayloadKind = "cart"
	PayloadCustom   PayloadKind = "custom"
	PayloadDonation PayloadKind = "donation"

	DonationFixed  DonationType = "donation"
	DonationCustom DonationType = "custom-donation"

	DeliveryStandard DeliveryOption = "standard" // 3-5 days
	DeliveryExpress  DeliveryOption = "express"  // 1-2 days
)

func (d DonationType) IsValid() bool {
	return d == DonationFixed || d == DonationCustom
}

func (d DeliveryOption) IsValid() bool {
	return d == DeliveryStandard || d == DeliveryExpress
}

// EstimatedDays is the delivery window quoted on the confirmation screen.
func (d DeliveryOption) EstimatedDays() string {
	if d == DeliveryExpress {
		return "1-2 days"
	}
	return "3-5 days"
}

// OrderDescriptor is the standalone order for one custom configuration,
// built at commit time and never re-derived afterwards.
type OrderDescriptor struct {
	Name              string   `json:"name"`
	Flavor            string   `json:"flavor"`
	Fruits            []string `json:"fruits"`
	Vegetables        []string `json:"vegetables"`
	Others            []string `json:"others"`
	AddOns            []string `json:"add_ons"`
	AlcoholPercentage int      `json:"alcohol_percentage"`
	Quantity          int      `json:"quantity"`
	Bottle            string   `json:"bottle"`
	Accessory         string   `json:"accessory,omitempty"`
	TotalPrice        int      `json:"total_price"`
}

type Donation struct {
	Type   DonationType `json:"type"`
	Amount int          `json:"amount"`
}

// CheckoutPayload carries exactly one of the three handoff shapes.
type CheckoutPayload struct {
	Cart     *CartState       `json:"cart,omitempty"`
	Custom   *OrderDescriptor `json:"custom,omitempty"`
	Donation *Donation        `json:"donation,omitempty"`
}

// Kind returns the populated shape, or "" when zero or several are set.
func (p CheckoutPayload) Kind() PayloadKind {
	var kind PayloadKind
	count := 0
	if p.Cart != nil {
		kind = PayloadCart
		count++
	}
	if p.Custom != nil {
		kind = PayloadCustom
		count++
	}
	if p.Donation != nil {
		kind = PayloadDonation
		count++
	}
	if count != 1 {
		return ""
	}
	return kind
}

func (p CheckoutPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

type OrderSummaryLine struct {
	Name      string `json:"name"`
	Detail    string `json:"detail,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Subtotal  int    `json:"subtotal"`
}

// OrderSummary is what the checkout screen renders. A degraded summary is
// the zero state shown when the handoff could not be read.
type OrderSummary struct {
	Kind        PayloadKind        `json:"kind,omitempty"`
	Title       string             `json:"title"`
	Lines       []OrderSummaryLine `json:"lines"`
	Subtotal    int                `json:"subtotal"`
	Delivery    DeliveryOption     `json:"delivery,omitempty"`
	DeliveryFee int                `json:"delivery_fee"`
	Total       int                `json:"total"`
	ChildrenFed int                `json:"children_fed"`
	Degraded    bool               `json:"degraded"`
	Notice      string             `json:"notice,omitempty"`
}

func (s OrderSummary) IsDonation() bool {
	return s.Kind == PayloadDonation
}

// CustomerInfo is the checkout form. Only SpecialInstructions is optional.
type CustomerInfo struct {
	FullName            string         `json:"full_name" validate:"required"`
	Email               string         `json:"email" validate:"required,email"`
	ContactNumber       string         `json:"contact_number" validate:"required"`
	Address             string         `json:"address" validate:"required"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	DeliveryOption      DeliveryOption `json:"delivery_option" validate:"omitempty,oneof=standard express"`
	PrintReceipt        bool           `json:"print_receipt"`
	SharePayment        bool           `json:"share_payment"`
}

// Confirmation is a confirmed order awaiting manual GCash payment.
type Confirmation struct {
	Reference         string             `json:"reference"`
	Summary           OrderSummary       `json:"summary"`
	Customer          CustomerInfo       `json:"customer"`
	Payment           gcash.Instructions `json:"payment"`
	EstimatedDelivery string             `json:"estimated_delivery,omitempty"`
	ReceiptURL        string             `json:"receipt_url,omitempty"`
	ShareMessage      string             `json:"share_message,omitempty"`
	ConfirmedAt       time.Time          `json:"confirmed_at"`
}
