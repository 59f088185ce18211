// Package whatsapp builds the wa.me deep links the booking forms open as
// their primary confirmation channel. Kept separate so every form shares one
// implementation of the number normalization and message template.
package whatsapp

import (
	"net/url"
	"strings"
)

// BookingMessage holds the submitted form fields interpolated into the chat text.
type BookingMessage struct {
	Name       string
	Phone      string
	Service    string
	Pickup     string
	Drop       string
	TravelDate string
	TravelTime string
	ReturnDate string
}

// NormalizeNumber strips everything but digits from a phone number, producing
// the wa.me phone segment ("+91 90037 82966" -> "919003782966").
func NormalizeNumber(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// Text renders the booking request message. Optional fields are included only
// when present.
func (m BookingMessage) Text() string {
	var b strings.Builder
	b.WriteString("🚗 *Quick Booking Request*\n\n")
	b.WriteString("*Name:* " + m.Name + "\n")
	b.WriteString("*Phone:* " + m.Phone + "\n")
	b.WriteString("*Service:* " + m.Service + "\n")
	b.WriteString("*Pickup:* " + m.Pickup + "\n")
	b.WriteString("*Drop:* " + m.Drop + "\n")
	b.WriteString("*Pickup Date:* " + m.TravelDate)
	if m.TravelTime != "" {
		b.WriteString("\n*Pickup Time:* " + m.TravelTime)
	}
	if m.ReturnDate != "" {
		b.WriteString("\n*Return Date:* " + m.ReturnDate)
	}
	b.WriteString("\n\nPlease provide availability and pricing details.")
	return b.String()
}

// BuildURL returns the wa.me deep link for the given number pre-filled with
// the booking message.
func BuildURL(number string, m BookingMessage) string {
	q := url.Values{"text": {m.Text()}}
	return "https://wa.me/" + NormalizeNumber(number) + "?" + q.Encode()
}
