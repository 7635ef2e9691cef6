package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"wildsafari/internal/config"
	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/response_models"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error
	SendBookingReceived(b db_models.Booking) error
	SendBookingStatus(b db_models.Booking) error
	SendNewsletterWelcome(email string) error
	SendItinerary(to string, result response_models.ItineraryResult) error
}

// mailSender is satisfied by *gomail.Dialer.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailService struct {
	cfg     config.MailConfig
	sender  mailSender
	htmlTpl *template.Template
	textTpl *template.Template
	log     logrus.FieldLogger
}

// NewMailService returns a service that only logs when no SMTP host is set.
func NewMailService(cfg config.MailConfig, log logrus.FieldLogger) IMailService {
	var sender mailSender
	if cfg.Host != "" {
		sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return newMailService(cfg, sender, log)
}

func newMailService(cfg config.MailConfig, sender mailSender, log logrus.FieldLogger) *smtpMailService {
	if cfg.FromName == "" {
		cfg.FromName = "Wildlife Safari Rwanda"
	}
	return &smtpMailService{
		cfg:     cfg,
		sender:  sender,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("text").Parse(plainTextTemplate)),
		log:     log,
	}
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	return s.deliver(to, EmailData{
		Title:     subject,
		Intro:     body,
		ButtonURL: s.resolveLink(ctaURL),
		ButtonTxt: ctaText,
	})
}

func (s *smtpMailService) SendBookingReceived(b db_models.Booking) error {
	intro := fmt.Sprintf(
		"Thank you %s! We received your request for %s on %s for %d traveler(s). Our team will confirm availability shortly.",
		firstNonEmpty(b.UserName, "traveler"), b.TourTitle, b.Date, b.Travelers,
	)
	if b.TotalPrice != "" {
		intro += " Estimated total: " + b.TotalPrice + "."
	}
	return s.deliver(b.Email, EmailData{
		Title:     "We received your booking",
		Intro:     intro,
		ButtonURL: s.link("/bookings"),
		ButtonTxt: "View my bookings",
	})
}

func (s *smtpMailService) SendBookingStatus(b db_models.Booking) error {
	var intro string
	switch b.Status {
	case db_models.BookingConfirmed:
		intro = fmt.Sprintf("Good news! Your booking for %s on %s is confirmed. We look forward to welcoming you to Rwanda.", b.TourTitle, b.Date)
	case db_models.BookingRejected:
		intro = fmt.Sprintf("Unfortunately we cannot accommodate your booking for %s on %s. Reply to this email and we will help you find another date.", b.TourTitle, b.Date)
	default:
		intro = fmt.Sprintf("Your booking for %s on %s is now %s.", b.TourTitle, b.Date, b.Status)
	}
	return s.deliver(b.Email, EmailData{
		Title:     "Booking update",
		Intro:     intro,
		ButtonURL: s.link("/bookings"),
		ButtonTxt: "View my bookings",
	})
}

func (s *smtpMailService) SendNewsletterWelcome(email string) error {
	return s.deliver(email, EmailData{
		Title:     "Welcome to our newsletter",
		Intro:     "You will now receive safari news, seasonal offers and conservation stories from the Land of a Thousand Hills.",
		ButtonURL: s.link("/tours"),
		ButtonTxt: "Browse safaris",
	})
}

func (s *smtpMailService) SendItinerary(to string, result response_models.ItineraryResult) error {
	return s.deliver(to, EmailData{
		Title:     firstNonEmpty(result.Title, "Your Rwanda itinerary"),
		Intro:     "Here is the itinerary our planner prepared for you.",
		Body:      template.HTML(result.HTML),
		PlainBody: result.Content,
		ButtonURL: s.link("/contact"),
		ButtonTxt: "Talk to an expert",
	})
}

type EmailData struct {
	Title     string
	Intro     string
	Body      template.HTML
	PlainBody string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f5f1e8; color: #1f2a1c; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { width: 100%; padding: 40px 16px; box-sizing: border-box; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 16px; overflow: hidden; box-shadow: 0 12px 40px rgba(0, 0, 0, 0.08); }
    .header { padding: 28px 32px; background: #2f4f2f; }
    .brand { font-weight: 700; letter-spacing: 0.5px; font-size: 20px; color: #f2c14e; text-transform: uppercase; }
    .hero { padding: 36px 32px; }
    h1 { margin: 0 0 16px; font-size: 26px; color: #1f2a1c; }
    p { margin: 0 0 18px; line-height: 1.7; color: #44523f; font-size: 16px; }
    .itinerary { border-top: 1px solid #e7e1d3; margin-top: 24px; padding-top: 24px; }
    .btn { display: inline-block; padding: 14px 28px; background: #c8872b; color: #ffffff !important; text-decoration: none; border-radius: 10px; font-weight: 600; }
    .muted { color: #7a8574; font-size: 13px; }
    .footer { padding: 20px 32px; color: #7a8574; font-size: 13px; text-align: center; background: #faf8f3; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <div class="brand">{{.AppName}}</div>
      </div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        {{if .Body}}<div class="itinerary">{{.Body}}</div>{{end}}
        {{if .ButtonURL}}
          <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
          <p class="muted">If the button doesn't work, open {{.ButtonURL}}</p>
        {{end}}
      </div>
      <div class="footer">
        © {{.Year}} {{.AppName}}. Kigali, Rwanda.
      </div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{if .PlainBody}}
{{.PlainBody}}
{{end}}
{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}
-- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) deliver(to string, data EmailData) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	data.AppName = s.cfg.FromName
	data.Year = time.Now().Year()

	html, text, err := s.renderEmail(data)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	if s.sender == nil {
		s.log.WithFields(logrus.Fields{"to": to, "subject": data.Title}).Info("mail disabled, skipping send")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", data.Title)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// resolveLink turns a site path like "/tours" into an absolute link and
// leaves absolute URLs alone.
func (s *smtpMailService) resolveLink(target string) string {
	if strings.HasPrefix(target, "/") {
		return s.link(target)
	}
	return target
}

func (s *smtpMailService) link(path string) string {
	if s.cfg.AppBaseURL == "" {
		return ""
	}
	return strings.TrimRight(s.cfg.AppBaseURL, "/") + path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
