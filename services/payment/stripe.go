// File: services/payment/stripe.go
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	bookingRepo "inkstudio/database/repository/booking"
	"inkstudio/models"
	"inkstudio/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no Stripe key is set.
var ErrNotConfigured = errors.New("payment system not configured")

// StripeService creates deposit payment intents and applies webhook events
// back onto bookings.
type StripeService struct {
	webhookSecret string
	Bookings      bookingRepo.BookingRepository
}

// NewStripeService configures the global Stripe key and returns the service.
func NewStripeService(apiKey, webhookSecret string, bookings bookingRepo.BookingRepository) *StripeService {
	stripe.Key = apiKey
	return &StripeService{webhookSecret: webhookSecret, Bookings: bookings}
}

// CreateDepositIntent creates a payment intent for the booking's deposit and
// returns its client secret. Amounts are charged in USD cents.
func (s *StripeService) CreateDepositIntent(_ context.Context, booking *models.Booking) (string, error) {
	if stripe.Key == "" {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(booking.DepositAmount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("client_id", booking.ClientID)
	params.AddMetadata("artist_id", booking.ArtistID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	utils.GetLogger().Info("deposit intent created",
		zap.String("bookingId", booking.ID),
		zap.String("intentId", intent.ID))
	return intent.ClientSecret, nil
}

// HandleWebhook verifies a Stripe webhook payload and applies the event. A
// succeeded deposit intent marks its booking deposit-paid.
func (s *StripeService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("verify webhook signature: %w", err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment intent: %w", err)
		}
		bookingID := intent.Metadata["booking_id"]
		if bookingID == "" {
			return nil
		}
		if err := s.Bookings.SetDepositPaid(ctx, bookingID); err != nil {
			return fmt.Errorf("mark deposit paid: %w", err)
		}
		utils.GetLogger().Info("deposit paid", zap.String("bookingId", bookingID))

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment intent: %w", err)
		}
		utils.GetLogger().Warn("deposit payment failed",
			zap.String("bookingId", intent.Metadata["booking_id"]),
			zap.String("intentId", intent.ID))
	}
	return nil
}
