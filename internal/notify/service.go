package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/srijaidev/tours-backend/internal/leads"
	"github.com/srijaidev/tours-backend/pkg/logging"
)

// Service sends the booking-request notification email to the site operator.
// Every send is best-effort: callers log and swallow the returned error.
type Service struct {
	settings SettingsStore
	logger   *logging.Logger

	// fromOverride, when set, replaces the relay record's from_email as the
	// recipient (SMTP_FROM_EMAIL).
	fromOverride string

	// newSender builds a sender for the resolved relay settings. Tests swap it.
	newSender func(*RelaySettings) EmailSender
}

// NewService creates a notification service.
func NewService(settings SettingsStore, fromOverride string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Service{
		settings:     settings,
		fromOverride: fromOverride,
		logger:       logger,
	}
	s.newSender = func(cfg *RelaySettings) EmailSender {
		return NewSMTPSender(cfg, logger)
	}
	return s
}

// NotifyBookingRequest emails the stored lead to the operator. When no active
// relay is configured it silently does nothing.
func (s *Service) NotifyBookingRequest(ctx context.Context, lead *leads.Lead) error {
	if s.settings == nil {
		return nil
	}

	cfg, err := s.settings.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("notify: get relay settings: %w", err)
	}
	if cfg == nil {
		s.logger.Info("smtp relay not configured or inactive, skipping booking email", "lead_id", lead.ID)
		return nil
	}

	recipient := s.fromOverride
	if recipient == "" {
		recipient = cfg.FromEmail
	}

	msg := EmailMessage{
		To:      recipient,
		Subject: fmt.Sprintf("🚗 New Booking Request - %s", lead.FullName),
		Body:    bookingText(lead),
		HTML:    bookingHTML(lead),
	}

	if err := s.newSender(cfg).Send(ctx, msg); err != nil {
		return err
	}

	s.logger.Info("booking notification sent", "lead_id", lead.ID, "to", recipient)
	return nil
}

// bookingText renders the plain-text alternative.
func bookingText(lead *leads.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New booking request from %s\n\n", lead.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	if lead.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	}
	fmt.Fprintf(&b, "Service: %s\n", lead.ServiceType)
	fmt.Fprintf(&b, "Pickup: %s\n", lead.PickupLocation)
	fmt.Fprintf(&b, "Drop: %s\n", lead.DropLocation)
	fmt.Fprintf(&b, "Travel Date: %s\n", formatDate(lead.TravelDate))
	if lead.TravelTime != "" {
		fmt.Fprintf(&b, "Travel Time: %s\n", lead.TravelTime)
	}
	if lead.ReturnDate != "" {
		fmt.Fprintf(&b, "Return Date: %s\n", formatDate(lead.ReturnDate))
	}
	if lead.Passengers > 0 {
		fmt.Fprintf(&b, "Passengers: %d\n", lead.Passengers)
	}
	if lead.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s\n", lead.Message)
	}
	if lead.EstimatedCost != "" {
		fmt.Fprintf(&b, "Estimated Cost: %s\n", lead.EstimatedCost)
	}
	fmt.Fprintf(&b, "\nLead ID: %s\nSubmitted at: %s\n", lead.ID, lead.SubmittedAt.Format(time.RFC1123))
	return b.String()
}

// bookingHTML renders the operator email, including optional fields only when
// present.
func bookingHTML(lead *leads.Lead) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; background-color: #f8fafc;">
<div style="background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); padding: 30px; text-align: center;">
  <h1 style="color: white; margin: 0; font-size: 28px;">🚗 New Booking Request</h1>
  <p style="color: #fed7aa; margin: 10px 0 0 0; font-size: 16px;">Sri Jaidev Tours &amp; Travels</p>
</div>
<div style="padding: 30px; background-color: white; margin: 20px; border-radius: 10px;">
  <div style="border-left: 4px solid #f97316; padding-left: 20px; margin-bottom: 30px;">
    <h2 style="color: #2d3748; margin: 0 0 10px 0;">Booking Information</h2>
    <p style="margin: 5px 0;"><strong>Status:</strong> %s</p>
    <p style="margin: 5px 0;"><strong>Priority:</strong> %s</p>
    <p style="margin: 5px 0;"><strong>Source:</strong> %s</p>
  </div>
  <h3 style="color: #2d3748; border-bottom: 2px solid #fed7aa; padding-bottom: 10px;">Customer Details</h3>
  <p style="margin: 10px 0;"><strong>Name:</strong> %s</p>
  <p style="margin: 10px 0;"><strong>Phone:</strong> <a href="tel:%s" style="color: #f97316;">%s</a></p>
  %s%s
  <h3 style="color: #2d3748; border-bottom: 2px solid #fed7aa; padding-bottom: 10px;">Service Details</h3>
  <p style="margin: 10px 0;"><strong>Service:</strong> %s</p>
  <p style="margin: 10px 0;"><strong>Travel Date:</strong> %s</p>
  %s%s
  <h3 style="color: #2d3748; border-bottom: 2px solid #fed7aa; padding-bottom: 10px;">Trip Details</h3>
  <div style="background-color: #fff7ed; padding: 20px; border-radius: 8px;">
    <p style="margin: 10px 0;"><strong>📍 Pickup Location:</strong> %s</p>
    <p style="margin: 10px 0;"><strong>📍 Drop Location:</strong> %s</p>
  </div>
  %s%s
  <div style="text-align: center; margin-top: 40px; padding-top: 30px; border-top: 2px solid #fed7aa;">
    <p style="color: #718096; margin: 0; font-size: 14px;">
      This email was automatically generated from the Sri Jaidev Tours &amp; Travels website.<br>
      Lead ID: #%s<br>
      Submitted at: %s
    </p>
  </div>
</div>
</div>`,
		strings.ToUpper(lead.Status),
		strings.ToUpper(lead.Priority),
		strings.ToUpper(lead.Source),
		lead.FullName,
		lead.Phone, lead.Phone,
		formatEmailRow(lead.Email),
		formatPassengersRow(lead.Passengers),
		lead.ServiceType,
		formatDate(lead.TravelDate),
		formatOptionalRow("Travel Time", lead.TravelTime),
		formatOptionalRow("Return Date", formatDate(lead.ReturnDate)),
		lead.PickupLocation,
		lead.DropLocation,
		formatMessageSection(lead.Message),
		formatCostSection(lead.EstimatedCost),
		lead.ID,
		lead.SubmittedAt.Format("02/01/2006, 15:04:05"),
	)
}

func formatEmailRow(email string) string {
	if email == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="margin: 10px 0;"><strong>Email:</strong> <a href="mailto:%s" style="color: #f97316;">%s</a></p>`, email, email)
}

func formatPassengersRow(passengers int) string {
	if passengers <= 0 {
		return ""
	}
	return fmt.Sprintf(`<p style="margin: 10px 0;"><strong>Passengers:</strong> %d</p>`, passengers)
}

func formatOptionalRow(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="margin: 10px 0;"><strong>%s:</strong> %s</p>`, label, value)
}

func formatMessageSection(message string) string {
	if message == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="margin: 30px 0;">
  <h3 style="color: #2d3748; border-bottom: 2px solid #fed7aa; padding-bottom: 10px;">Additional Information</h3>
  <div style="background-color: #f0fdf4; padding: 20px; border-radius: 8px; border-left: 4px solid #10b981;">
    <p style="margin: 0; line-height: 1.6; color: #2d3748;">%s</p>
  </div>
</div>`, message)
}

func formatCostSection(cost string) string {
	if cost == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="margin: 30px 0;">
  <h3 style="color: #2d3748; border-bottom: 2px solid #fed7aa; padding-bottom: 10px;">Estimated Cost</h3>
  <div style="background-color: #fef3c7; padding: 20px; border-radius: 8px; border-left: 4px solid #f59e0b;">
    <p style="margin: 0; font-size: 18px; font-weight: bold; color: #2d3748;">%s</p>
  </div>
</div>`, cost)
}

// formatDate renders a YYYY-MM-DD form value as DD/MM/YYYY, falling back to
// the raw string for anything unparseable.
func formatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("02/01/2006")
}
