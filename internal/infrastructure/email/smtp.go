package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"sips/internal/shared/config"
	"sips/internal/shared/services/markdown"
)

type SMTPEmailService struct {
	config   config.EmailConfig
	dialer   *gomail.Dialer
	markdown markdown.MarkdownService
}

func NewSMTPEmailService(cfg config.EmailConfig, markdownService markdown.MarkdownService) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config:   cfg,
		dialer:   dialer,
		markdown: markdownService,
	}
}

// SendTicketResponseEmail notifies a user that an admin replied to their
// support ticket. The response is authored as markdown.
func (s *SMTPEmailService) SendTicketResponseEmail(to, subject, response string) error {
	emailSubject := fmt.Sprintf("Re: %s", subject)

	htmlResponse, err := s.markdown.ToHTMLSanitized(response)
	if err != nil {
		htmlResponse = "<p>" + html.EscapeString(response) + "</p>"
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your support ticket has a new response</h2>
			<p><strong>Ticket:</strong> %s</p>
			%s
			<p>Reply to this email or open a new ticket if you need more help.</p>
		</body>
		</html>
	`, html.EscapeString(subject), htmlResponse)

	plainBody := fmt.Sprintf(`
Your support ticket has a new response

Ticket: %s

%s

Reply to this email or open a new ticket if you need more help.
	`, subject, response)

	return s.sendEmail(to, emailSubject, htmlBody, plainBody)
}

// SendWelcomeEmail greets a user after their first sign-in.
func (s *SMTPEmailService) SendWelcomeEmail(to, name string) error {
	subject := "Welcome to Sips"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account is ready and comes with bonus tokens for AI drink generation.</p>
			<p>Browse recipes, save your favorites, and share your own creations.</p>
		</body>
		</html>
	`, name)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your account is ready and comes with bonus tokens for AI drink generation.

Browse recipes, save your favorites, and share your own creations.
	`, name)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
