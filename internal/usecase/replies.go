package usecase

import (
	"fmt"
	"strings"

	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/commands"
	"appointment-assistant/internal/usecase/queries"
)

const (
	greeting = "📝 Hi! I'm your appointment booking assistant. Please tell me your name, email, service, and preferred date. " +
		"🔐 If you want to log in as staff member, then enter the passcode."
	resetReply = "Appointment reset successfully. " + greeting

	staffWelcome = "✅ Staff authentication successful. You can now query appointments.\n" +
		"🔐 Staff mode activated. You can now query appointment information.\n" + staffHelp
	staffHelp = "Available commands:\n" +
		" - Query appointments by date: 'Show appointments for tomorrow'\n" +
		" - Query by customer: 'Show appointments for John'\n" +
		" - Query by service: 'Show all haircut appointments'\n" +
		" - Query by ticket: 'Show ticket APPT-12345'\n" +
		" - Cancel an appointment: 'Cancel ticket APPT-12345'\n" +
		" - Income report: 'Show income between 2030-01-01 and 2030-01-31'\n" +
		" - Exit staff mode: 'Exit staff mode'"

	staffExited     = "✅ Exited staff mode. Now in customer booking mode."
	alreadyCustomer = "You're already in customer mode."
)

func passcodeReply(err error) string {
	switch {
	case errs.Is(err, errs.ErrNoPasscode):
		return "No passcode detected. Please enter the staff passcode to access staff features."
	case errs.Is(err, errs.ErrTooManyAttempts):
		return "⏳ Too many passcode attempts. Please wait a minute and try again."
	case errs.Is(err, errs.ErrInvalidPasscode):
		return "❌ Invalid passcode. Please try again or continue as a customer."
	default:
		return "⚠️ Staff authentication is unavailable right now. Please try again later."
	}
}

func cancelReply(res *commands.CancelResult, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("✅ Appointment with ticket %s for %s has been successfully cancelled.", res.Ticket, res.Name)
	case errs.Is(err, errs.ErrTicketRequired):
		return "❓ Please provide a valid ticket number to cancel (e.g., 'Cancel ticket APPT-12345')."
	case errs.Is(err, errs.ErrAppointmentNotFound):
		return "❌ No appointment found with that ticket number."
	case errs.Is(err, errs.ErrStaffOnly):
		return "⛔ You need staff authentication to cancel appointments. Please enter the staff passcode first."
	default:
		return "⚠️ Error cancelling appointment. Please try again later."
	}
}

func searchReply(views []queries.AppointmentView, err error) string {
	if err != nil {
		if errs.Is(err, errs.ErrStaffOnly) {
			return "⛔ You need staff authentication to access this feature. Please enter the staff passcode first."
		}
		return "⚠️ Error querying appointments. Please try again later."
	}
	if len(views) == 0 {
		return "🔎 No appointments found matching your criteria."
	}

	lines := make([]string, 0, len(views)+1)
	lines = append(lines, "📋 Appointments found:")
	for _, v := range views {
		lines = append(lines, fmt.Sprintf("- Name: %s, Email: %s, Service: %s, Date: %s, Ticket: %s, Status: %s",
			v.Name, v.Email, v.Service, v.Date, v.TicketNumber, v.Status))
	}
	return strings.Join(lines, "\n")
}

func incomeReply(r *queries.IncomeReport, err error) string {
	if err != nil {
		if errs.Is(err, errs.ErrStaffOnly) {
			return "⛔ You need staff authentication to access income information. Please enter the staff passcode first."
		}
		return "⚠️ Error querying income data. Please try again later."
	}

	reply := fmt.Sprintf("💰 Total Income: $%.2f\n📊 Appointments: %d", r.Total, r.Count)
	if r.Average != nil {
		reply += fmt.Sprintf("\n📈 Average per appointment: $%.2f", *r.Average)
	}
	return reply
}
