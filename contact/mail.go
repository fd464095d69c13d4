package contact

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"locallens/models"
)

// SendEnquiryEmails notifies the site owner and confirms receipt to the
// enquirer. Returns false (with a log line) when mail is unconfigured or
// sending fails; the enquiry itself still succeeds.
func SendEnquiryEmails(e models.Enquiry) bool {
	host := envOr("EMAIL_HOST", "smtp.gmail.com")
	port := envOr("EMAIL_PORT", "587")
	user := os.Getenv("EMAIL_USER")
	password := os.Getenv("EMAIL_PASSWORD")
	recipient := envOr("RECIPIENT_EMAIL", user)

	if user == "" || password == "" {
		log.Println("Email credentials not configured – skipping email send.")
		return false
	}

	timestamp := time.Now().UTC().Format("2006-01-02 15:04 UTC")
	ownerBody := fmt.Sprintf(
		"Subject: New Enquiry from %s\n\n"+
			"New enquiry from your website:\n\n"+
			"Name:         %s\n"+
			"Email:        %s\n"+
			"Phone:        %s\n"+
			"Travel Date:  %s\n"+
			"Tour:         %s\n\n"+
			"Message:\n%s\n\n"+
			"Submitted: %s",
		e.Name, e.Name, e.Email,
		orNotProvided(e.Phone), orNotProvided(e.TravelDate), orNotProvided(e.Trip),
		e.Message, timestamp)

	confirmBody := fmt.Sprintf(
		"Subject: Thanks for reaching out – Jivan Parajuli\n\n"+
			"Hi %s,\n\n"+
			"Thanks for getting in touch! I've received your message and will "+
			"get back to you within a few hours.\n\n"+
			"If it's urgent, call or WhatsApp me directly at +977 9828768566.\n\n"+
			"– Jivan Parajuli\n"+
			"The Fixer Nepal\n"+
			"https://locallens.homes",
		e.Name)

	auth := smtp.PlainAuth("", user, password, host)
	addr := host + ":" + port

	if err := smtp.SendMail(addr, auth, user, []string{recipient}, []byte(ownerBody)); err != nil {
		log.Println("Email send error:", err)
		return false
	}
	if err := smtp.SendMail(addr, auth, user, []string{e.Email}, []byte(confirmBody)); err != nil {
		log.Println("Email send error:", err)
		return false
	}
	return true
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
