package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashmarin/vinbot/internal/domain"
	"github.com/ashmarin/vinbot/internal/randomvin"
	"github.com/ashmarin/vinbot/internal/shared"
)

// Fixed conversational messages, kept in one place so the state machine
// and the command handlers stay in the same register.
const (
	msgWelcome        = "Welcome! 🚗 Enter your VIN (17 characters):"
	msgInvalidVIN     = "❌ Invalid VIN. Must be 17 characters (no I, O, Q). Try again:"
	msgAskAgain       = "Do you want to check another VIN? (yes/no)"
	msgNextVIN        = "Please enter the next VIN:"
	msgFarewell       = "Goodbye 👋"
	msgCancelFarewell = "Session ended. Bye 👋"
	msgYesNoReprompt  = "❓ Reply 'yes' or 'no'."
	msgUseStart       = "Send /start to begin a new session."
	msgInternalError  = "⚠️ Something went wrong on our side. Please try again."

	msgHelp = "🚗 I decode Vehicle Identification Numbers.\n\n" +
		"/start - decode a VIN you send me\n" +
		"/randomvin - fetch and decode a random VIN\n" +
		"/help - this message\n" +
		"/cancel - end the current session"
)

// callback token prefixes carried by inline buttons.
const (
	tokenRandomAgain  = "randomvin:again"
	tokenReportPrefix = "report:"
)

func reportToken(vin domain.VIN) string {
	return tokenReportPrefix + vin.String()
}

// reportVIN extracts the VIN from a report callback token.
func reportVIN(token string) (domain.VIN, bool) {
	if !strings.HasPrefix(token, tokenReportPrefix) {
		return "", false
	}
	vin, err := domain.ParseVIN(strings.TrimPrefix(token, tokenReportPrefix))
	if err != nil {
		return "", false
	}
	return vin, true
}

// renderSummary shows the short decode result.
func renderSummary(attrs domain.DecodedAttributes) string {
	return fmt.Sprintf("🔎 VIN Details:\nVIN: %s\nMake: %s\nModel: %s\nYear: %s",
		attrs.VIN, attrs.Make, attrs.Model, attrs.ModelYear)
}

// renderReport shows every projected field plus the authenticity verdict.
func renderReport(attrs domain.DecodedAttributes) string {
	var b strings.Builder
	b.WriteString("📋 Full report for " + attrs.VIN.String() + "\n\n")

	rows := []struct{ label, value string }{
		{"Make", attrs.Make},
		{"Model", attrs.Model},
		{"Year", attrs.ModelYear},
		{"Trim", attrs.Trim},
		{"Body class", attrs.BodyClass},
		{"Vehicle type", attrs.VehicleType},
		{"Doors", attrs.Doors},
		{"Drive type", attrs.DriveType},
		{"Fuel type", attrs.FuelType},
		{"Fuel capacity", attrs.FuelCapacity},
		{"Displacement (L)", attrs.Displacement},
		{"Cylinders", attrs.Cylinders},
		{"Manufacturer", attrs.Manufacturer},
		{"Plant country", attrs.PlantCountry},
		{"Plant city", attrs.PlantCity},
	}
	for _, row := range rows {
		b.WriteString(row.label + ": " + row.value + "\n")
	}

	b.WriteString("\n" + renderVerdict(attrs))
	return b.String()
}

// renderVerdict shows the authenticity classification.
func renderVerdict(attrs domain.DecodedAttributes) string {
	if domain.IsLikelyReal(attrs) {
		return "✅ Looks like a real manufactured vehicle."
	}
	return "🤖 Looks synthetic - likely a test VIN."
}

// renderRandomResult shows a random-VIN decode with its verdict.
func renderRandomResult(attrs domain.DecodedAttributes) string {
	return fmt.Sprintf("🎲 Random VIN: %s\nMake: %s\nModel: %s\nYear: %s\n\n%s",
		attrs.VIN, attrs.Make, attrs.Model, attrs.ModelYear, renderVerdict(attrs))
}

// randomResultButtons are the follow-up controls on a random-VIN result.
func randomResultButtons(vin domain.VIN) []Button {
	return []Button{
		{Label: "🎲 Another random VIN", Token: tokenRandomAgain},
		{Label: "📋 Full report", Token: reportToken(vin)},
	}
}

// renderDecodeError maps a decode failure to a user-facing message.
// No failure ends the session.
func renderDecodeError(err error) string {
	var statusErr *shared.UpstreamStatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("❌ API Error (status %d). Please try later.", statusErr.StatusCode)
	case shared.IsTimeoutError(err):
		return "⌛ The decode service took too long to answer. Please try again."
	default:
		return "❌ API Error. Please try later."
	}
}

// renderRandomError maps a random-VIN failure to a user-facing message.
func renderRandomError(err error) string {
	if errors.Is(err, randomvin.ErrExhausted) {
		return "😕 Couldn't find a fresh random VIN right now. Please try again in a moment."
	}
	return renderDecodeError(err)
}
