package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/messaging"
	"github.com/ikkim/winecraft-backend/pkg/logger"
	"github.com/ikkim/winecraft-backend/pkg/payment/gcash"
	"github.com/ikkim/winecraft-backend/pkg/util"
)

var (
	ErrInvalidCheckoutPayload = errors.New("checkout payload must carry exactly one of cart, custom or donation")
	ErrInvalidDonation        = errors.New("invalid donation")
	ErrHandoffNotFound        = errors.New("checkout handoff not found or expired")
	ErrDegradedCheckout       = errors.New("checkout details could not be read")
	ErrInvalidCustomer        = errors.New("invalid customer details")
	ErrConfirmationNotFound   = errors.New("confirmation not found")
)

// DonationTiers are the preset amounts offered on the donation page.
var DonationTiers = []int{250, 1000, 2500}

const (
	titleDonation = "Donation Summary"
	titleCart     = "Cart Summary"
	titleCustom   = "Custom Wine Summary"
	titleDefault  = "Order Summary"

	referenceAttempts     = 5
	defaultPublishTimeout = 5 * time.Second

	amountTooLargeNotice = "Your order amount is too large to process. Please reduce the quantities and try again."
)

// CustomerValidationError lists the offending checkout form fields.
type CustomerValidationError struct {
	Fields map[string]string
}

func (e *CustomerValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidCustomer, strings.Join(names, ", "))
}

func (e *CustomerValidationError) Unwrap() error {
	return ErrInvalidCustomer
}

type HandoffTicket struct {
	Token       string            `json:"token"`
	Kind        model.PayloadKind `json:"kind"`
	ExpiresAt   time.Time         `json:"expires_at"`
	CheckoutURL string            `json:"checkout_url"`
}

// OrderConfirmedEvent is published once per confirmed checkout.
type OrderConfirmedEvent struct {
	Reference   string               `json:"reference"`
	Kind        model.PayloadKind    `json:"kind"`
	Subtotal    int                  `json:"subtotal"`
	DeliveryFee int                  `json:"delivery_fee"`
	Total       int                  `json:"total"`
	ChildrenFed int                  `json:"children_fed"`
	Delivery    model.DeliveryOption `json:"delivery,omitempty"`
	Email       string               `json:"email"`
	ConfirmedAt time.Time            `json:"confirmed_at"`
}

type CheckoutConfig struct {
	HandoffTTL          time.Duration
	ConfirmationTTL     time.Duration
	StandardDeliveryFee int
	ExpressDeliveryFee  int
	MealCost            int
	OrderTopic          string
	PublishTimeout      time.Duration // bound on one order event publish
	PublicBaseURL       string
}

type CheckoutService interface {
	Handoff(ctx context.Context, payload model.CheckoutPayload) (*HandoffTicket, error)
	Donate(ctx context.Context, donation model.Donation) (*HandoffTicket, error)
	Summary(ctx context.Context, token string, delivery model.DeliveryOption) (model.OrderSummary, error)
	Summarize(raw []byte, delivery model.DeliveryOption) model.OrderSummary
	Confirm(ctx context.Context, token string, customer model.CustomerInfo) (*model.Confirmation, error)
	FindConfirmation(ctx context.Context, reference string) (*model.Confirmation, error)
	Receipt(ctx context.Context, reference string) ([]byte, error)
}

type checkoutService struct {
	handoffs      repository.SnapshotRepository
	confirmations repository.SnapshotRepository
	gcash         *gcash.Client
	publisher     messaging.Publisher
	validate      *validator.Validate
	cfg           CheckoutConfig
	now           func() time.Time
}

func NewCheckoutService(
	handoffs repository.SnapshotRepository,
	confirmations repository.SnapshotRepository,
	gcashClient *gcash.Client,
	publisher messaging.Publisher,
	cfg CheckoutConfig,
) CheckoutService {
	if cfg.MealCost <= 0 {
		cfg.MealCost = 50
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}
	return &checkoutService{
		handoffs:      handoffs,
		confirmations: confirmations,
		gcash:         gcashClient,
		publisher:     publisher,
		validate:      validator.New(),
		cfg:           cfg,
		now:           time.Now,
	}
}

func (s *checkoutService) Handoff(ctx context.Context, payload model.CheckoutPayload) (*HandoffTicket, error) {
	kind := payload.Kind()
	if kind == "" {
		return nil, ErrInvalidCheckoutPayload
	}

	raw, err := payload.Encode()
	if err != nil {
		logger.Error("Failed to encode checkout payload", err, map[string]interface{}{
			"kind": kind,
		})
		return nil, err
	}

	token := uuid.NewString()
	if err := s.handoffs.Save(ctx, token, raw, s.cfg.HandoffTTL); err != nil {
		logger.Error("Failed to store checkout handoff", err, map[string]interface{}{
			"kind": kind,
		})
		return nil, err
	}

	ticket := &HandoffTicket{
		Token:       token,
		Kind:        kind,
		CheckoutURL: s.url("/api/v1/checkout/" + token),
	}
	if s.cfg.HandoffTTL > 0 {
		ticket.ExpiresAt = s.now().Add(s.cfg.HandoffTTL)
	}

	logger.Info("Checkout handoff created", map[string]interface{}{
		"token": token,
		"kind":  kind,
		"bytes": len(raw),
	})
	return ticket, nil
}

// Donate hands off a donation. Fixed donations must match a preset tier;
// custom donations take any positive amount.
func (s *checkoutService) Donate(ctx context.Context, donation model.Donation) (*HandoffTicket, error) {
	if !donation.Type.IsValid() || donation.Amount <= 0 {
		return nil, ErrInvalidDonation
	}
	if donation.Type == model.DonationFixed && !isDonationTier(donation.Amount) {
		logger.Warn("Donation amount is not a preset tier", map[string]interface{}{
			"amount": donation.Amount,
		})
		return nil, ErrInvalidDonation
	}
	return s.Handoff(ctx, model.CheckoutPayload{Donation: &donation})
}

func (s *checkoutService) Summary(ctx context.Context, token string, delivery model.DeliveryOption) (model.OrderSummary, error) {
	raw, err := s.handoffs.Find(ctx, token)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return model.OrderSummary{}, ErrHandoffNotFound
	}
	if err != nil {
		return model.OrderSummary{}, err
	}
	return s.Summarize(raw, delivery), nil
}

// Summarize derives the checkout view from a serialized payload. Anything it
// cannot trust yields a degraded zero summary instead of a guessed total.
func (s *checkoutService) Summarize(raw []byte, delivery model.DeliveryOption) model.OrderSummary {
	var payload model.CheckoutPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Warn("Checkout payload is not valid JSON", map[string]interface{}{
			"error": err.Error(),
		})
		return degradedSummary("We couldn't read your order details. Please start checkout again.")
	}

	var (
		summary model.OrderSummary
		reason  string
	)
	switch payload.Kind() {
	case model.PayloadCart:
		summary, reason = summarizeCart(payload.Cart)
	case model.PayloadCustom:
		summary, reason = summarizeCustom(payload.Custom)
	case model.PayloadDonation:
		summary, reason = summarizeDonation(payload.Donation)
	default:
		if payload.Cart != nil || payload.Custom != nil || payload.Donation != nil {
			reason = "Your checkout mixes more than one order. Please check out one order at a time."
		} else {
			reason = "Your checkout details are missing. Please start checkout again."
		}
	}
	if reason != "" {
		logger.Warn("Checkout payload rejected", map[string]interface{}{
			"kind":   payload.Kind(),
			"reason": reason,
		})
		return degradedSummary(reason)
	}

	if !summary.IsDonation() {
		if !delivery.IsValid() {
			delivery = model.DeliveryStandard
		}
		summary.Delivery = delivery
		summary.DeliveryFee = s.deliveryFee(delivery)
	}
	total, ok := model.AddAmount(summary.Subtotal, summary.DeliveryFee)
	if !ok {
		logger.Warn("Checkout total out of range", map[string]interface{}{
			"kind":     summary.Kind,
			"subtotal": summary.Subtotal,
		})
		return degradedSummary(amountTooLargeNotice)
	}
	summary.Total = total
	summary.ChildrenFed = summary.Total / s.cfg.MealCost
	return summary
}

func (s *checkoutService) Confirm(ctx context.Context, token string, customer model.CustomerInfo) (*model.Confirmation, error) {
	customer = normalizeCustomer(customer)
	if err := s.validateCustomer(customer); err != nil {
		return nil, err
	}

	raw, err := s.handoffs.Take(ctx, token)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return nil, ErrHandoffNotFound
	}
	if err != nil {
		return nil, err
	}
	confirmed := false
	defer func() {
		if !confirmed {
			s.restoreHandoff(ctx, token, raw)
		}
	}()

	summary := s.Summarize(raw, customer.DeliveryOption)
	if summary.Degraded {
		return nil, ErrDegradedCheckout
	}

	prefix := gcash.PrefixOrder
	if summary.IsDonation() {
		prefix = gcash.PrefixDonation
	}
	reference, err := s.newReference(ctx, prefix)
	if err != nil {
		return nil, err
	}

	instructions, err := s.gcash.Instructions(reference, summary.Total)
	if err != nil {
		logger.Error("Failed to build payment instructions", err, map[string]interface{}{
			"reference": reference,
			"total":     summary.Total,
		})
		return nil, err
	}

	confirmation := &model.Confirmation{
		Reference:   reference,
		Summary:     summary,
		Customer:    customer,
		Payment:     *instructions,
		ConfirmedAt: s.now(),
	}
	if !summary.IsDonation() {
		confirmation.EstimatedDelivery = summary.Delivery.EstimatedDays()
	}
	if customer.PrintReceipt {
		confirmation.ReceiptURL = s.url("/api/v1/checkout/confirmations/" + reference + "/receipt")
	}
	if customer.SharePayment {
		confirmation.ShareMessage = shareMessage(summary)
	}

	data, err := json.Marshal(confirmation)
	if err != nil {
		return nil, err
	}
	if err := s.confirmations.Save(ctx, reference, data, s.cfg.ConfirmationTTL); err != nil {
		logger.Error("Failed to store confirmation", err, map[string]interface{}{
			"reference": reference,
		})
		return nil, err
	}
	confirmed = true

	s.publishConfirmed(ctx, confirmation)

	logger.Info("Checkout confirmed", map[string]interface{}{
		"reference":    reference,
		"kind":         summary.Kind,
		"total":        summary.Total,
		"children_fed": summary.ChildrenFed,
	})
	return confirmation, nil
}

// restoreHandoff puts back a handoff taken by a confirmation that did not
// complete. The TTL starts over.
func (s *checkoutService) restoreHandoff(ctx context.Context, token string, raw []byte) {
	if err := s.handoffs.Save(context.WithoutCancel(ctx), token, raw, s.cfg.HandoffTTL); err != nil {
		logger.Warn("Failed to restore checkout handoff", map[string]interface{}{
			"token": token,
			"error": err.Error(),
		})
	}
}

func (s *checkoutService) FindConfirmation(ctx context.Context, reference string) (*model.Confirmation, error) {
	data, err := s.confirmations.Find(ctx, reference)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return nil, ErrConfirmationNotFound
	}
	if err != nil {
		return nil, err
	}

	var confirmation model.Confirmation
	if err := json.Unmarshal(data, &confirmation); err != nil {
		logger.Error("Stored confirmation is corrupt", err, map[string]interface{}{
			"reference": reference,
		})
		return nil, err
	}
	return &confirmation, nil
}

func (s *checkoutService) Receipt(ctx context.Context, reference string) ([]byte, error) {
	confirmation, err := s.FindConfirmation(ctx, reference)
	if err != nil {
		return nil, err
	}
	return BuildReceipt(confirmation)
}

func (s *checkoutService) validateCustomer(customer model.CustomerInfo) error {
	err := s.validate.Struct(customer)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := customerFieldName(fe.StructField())
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required"
		case "email":
			fields[name] = "Enter a valid email address"
		case "oneof":
			fields[name] = "Choose standard or express delivery"
		default:
			fields[name] = "Invalid value"
		}
	}
	logger.Warn("Customer details rejected", map[string]interface{}{
		"fields": fields,
	})
	return &CustomerValidationError{Fields: fields}
}

// newReference derives a reference from the clock and falls back to random
// digits when that one is already taken.
func (s *checkoutService) newReference(ctx context.Context, prefix string) (string, error) {
	reference := gcash.NewReference(prefix, s.now())
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		_, err := s.confirmations.Find(ctx, reference)
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return reference, nil
		}
		if err != nil {
			return "", err
		}
		reference = prefix + "-" + util.RandomDigits(6)
	}
	return "", fmt.Errorf("could not allocate a unique %s reference", prefix)
}

// publishConfirmed outlives a cancelled request but never waits longer than
// PublishTimeout on the broker.
func (s *checkoutService) publishConfirmed(ctx context.Context, c *model.Confirmation) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PublishTimeout)
	defer cancel()

	event := OrderConfirmedEvent{
		Reference:   c.Reference,
		Kind:        c.Summary.Kind,
		Subtotal:    c.Summary.Subtotal,
		DeliveryFee: c.Summary.DeliveryFee,
		Total:       c.Summary.Total,
		ChildrenFed: c.Summary.ChildrenFed,
		Delivery:    c.Summary.Delivery,
		Email:       c.Customer.Email,
		ConfirmedAt: c.ConfirmedAt,
	}
	if err := s.publisher.PublishEvent(ctx, s.cfg.OrderTopic, c.Reference, event); err != nil {
		logger.Error("Failed to publish order confirmed event", err, map[string]interface{}{
			"reference": c.Reference,
		})
	}
}

func (s *checkoutService) deliveryFee(delivery model.DeliveryOption) int {
	if delivery == model.DeliveryExpress {
		return s.cfg.ExpressDeliveryFee
	}
	return s.cfg.StandardDeliveryFee
}

func (s *checkoutService) url(path string) string {
	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + path
}

func summarizeCart(cart *model.CartState) (model.OrderSummary, string) {
	if len(cart.Items) == 0 {
		return model.OrderSummary{}, "Cart is empty"
	}

	summary := model.OrderSummary{Kind: model.PayloadCart, Title: titleCart}
	for _, item := range cart.Items {
		if item.Quantity < 1 || item.Price < 0 || item.Name == "" {
			return model.OrderSummary{}, "Your cart contains an item we couldn't read. Please review your cart."
		}
		if item.Quantity > MaxOrderQuantity {
			return model.OrderSummary{}, amountTooLargeNotice
		}
		sub, ok := item.Subtotal()
		if !ok {
			return model.OrderSummary{}, amountTooLargeNotice
		}
		if summary.Subtotal, ok = model.AddAmount(summary.Subtotal, sub); !ok {
			return model.OrderSummary{}, amountTooLargeNotice
		}
		summary.Lines = append(summary.Lines, model.OrderSummaryLine{
			Name:      item.Name,
			Detail:    cartLineDetail(item),
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Subtotal:  sub,
		})
	}
	return summary, ""
}

func summarizeCustom(order *model.OrderDescriptor) (model.OrderSummary, string) {
	if order.Flavor == "" || order.Quantity < 1 || order.TotalPrice <= 0 {
		return model.OrderSummary{}, "Your custom wine details are incomplete. Please configure it again."
	}
	if order.Quantity > MaxOrderQuantity {
		return model.OrderSummary{}, amountTooLargeNotice
	}

	name := order.Name
	if name == "" {
		name = model.DefaultCustomWineName
	}
	line := model.OrderSummaryLine{
		Name:      name,
		Detail:    customDetail(order.Flavor, order.Bottle, order.AlcoholPercentage, order.Accessory),
		Quantity:  order.Quantity,
		UnitPrice: order.TotalPrice / order.Quantity,
		Subtotal:  order.TotalPrice,
	}
	return model.OrderSummary{
		Kind:     model.PayloadCustom,
		Title:    titleCustom,
		Lines:    []model.OrderSummaryLine{line},
		Subtotal: order.TotalPrice,
	}, ""
}

func summarizeDonation(donation *model.Donation) (model.OrderSummary, string) {
	if !donation.Type.IsValid() || donation.Amount <= 0 {
		return model.OrderSummary{}, "Your donation amount is invalid. Please choose an amount again."
	}

	name := "Donation"
	if donation.Type == model.DonationCustom {
		name = "Custom Donation"
	}
	return model.OrderSummary{
		Kind:  model.PayloadDonation,
		Title: titleDonation,
		Lines: []model.OrderSummaryLine{{
			Name:      name,
			Detail:    "Feeding street children",
			Quantity:  1,
			UnitPrice: donation.Amount,
			Subtotal:  donation.Amount,
		}},
		Subtotal: donation.Amount,
	}, ""
}

func degradedSummary(notice string) model.OrderSummary {
	return model.OrderSummary{
		Title:    titleDefault,
		Lines:    []model.OrderSummaryLine{},
		Degraded: true,
		Notice:   notice,
	}
}

func cartLineDetail(item model.CartLineItem) string {
	if item.CustomDetails != nil {
		d := item.CustomDetails
		return customDetail(d.MainFlavor, d.BottleSize, d.AlcoholPercentage, d.NecklaceAddOn)
	}
	if item.Alcohol != "" {
		return item.Alcohol + " ABV"
	}
	return ""
}

func customDetail(flavor, bottle string, alcohol int, accessory string) string {
	parts := []string{"Flavor: " + flavor}
	if bottle != "" {
		parts = append(parts, "Bottle: "+bottle)
	}
	parts = append(parts, fmt.Sprintf("Alcohol: %d%%", alcohol))
	if accessory != "" {
		parts = append(parts, "Necklace: "+accessory)
	}
	return strings.Join(parts, " · ")
}

func shareMessage(summary model.OrderSummary) string {
	if summary.IsDonation() {
		return fmt.Sprintf("I just donated ₱%d and helped feed %d street children for a day!", summary.Total, summary.ChildrenFed)
	}
	return fmt.Sprintf("My wine order helps feed %d street children for a day!", summary.ChildrenFed)
}

func normalizeCustomer(c model.CustomerInfo) model.CustomerInfo {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	c.ContactNumber = strings.TrimSpace(c.ContactNumber)
	c.Address = strings.TrimSpace(c.Address)
	c.SpecialInstructions = strings.TrimSpace(c.SpecialInstructions)
	if c.DeliveryOption == "" {
		c.DeliveryOption = model.DeliveryStandard
	}
	return c
}

func customerFieldName(structField string) string {
	switch structField {
	case "FullName":
		return "full_name"
	case "Email":
		return "email"
	case "ContactNumber":
		return "contact_number"
	case "Address":
		return "address"
	case "DeliveryOption":
		return "delivery_option"
	}
	return strings.ToLower(structField)
}

func isDonationTier(amount int) bool {
	for _, tier := range DonationTiers {
		if tier == amount {
			return true
		}
	}
	return false
}
