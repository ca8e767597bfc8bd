package utils

import (
	"fmt"
	"ilearn/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentEmail sends the enrollment confirmation mail through
// SendGrid. Callers fire it from a goroutine; a failure is logged and
// never blocks the enrollment itself.
func SendEnrollmentEmail(toEmail, toName, courseTitle string) {
	if config.AppConfig.SendGridKey == "" {
		return
	}

	from := mail.NewEmail("iLearn", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("You are enrolled in %s", courseTitle)

	plain := fmt.Sprintf("Hi %s,\n\nYou are now enrolled in the course %q. Happy learning!", toName, courseTitle)
	html := fmt.Sprintf(`
	<div style="font-family: Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>Welcome aboard, %s!</h2>
		<p>You are now enrolled in the course <strong>%s</strong>.</p>
		<p>Open your dashboard to start learning.</p>
	</div>`, toName, courseTitle)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Failed to send enrollment email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("[EMAIL] SendGrid returned status %d for %s", resp.StatusCode, toEmail)
	}
}
