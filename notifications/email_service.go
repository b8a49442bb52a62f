package notifications

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	config "github.com/kevotieno/craft_agency/configs"
)

const brevoSendURL = "https://api.brevo.com/v3/smtp/email"

type BrevoService struct {
	client      *resty.Client
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.AppConfig.BrevoAPIKey
	senderEmail := config.AppConfig.EmailSender
	senderName := config.AppConfig.EmailSenderName

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		client:      resty.New().SetTimeout(10 * time.Second),
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialized successfully.")
}

func (s *BrevoService) send(toEmail, toName, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	resp, err := s.client.R().
		SetHeader("accept", "application/json").
		SetHeader("api-key", s.APIKey).
		SetHeader("content-type", "application/json").
		SetBody(payload).
		Post(brevoSendURL)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("failed to send email via Brevo: %s", resp.String())
	}

	return nil
}

// SendEmail is best-effort: callers invoke it in a goroutine and failures are
// only logged, never propagated to the triggering operation.
func SendEmail(toName, toEmail, subject, htmlContent string) {
	if EmailClient == nil {
		log.Println("Email client not initialized, skipping email send.")
		return
	}

	if err := EmailClient.send(toEmail, toName, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return
	}

	log.Printf("✅ Email sent successfully to %s", toEmail)
}

// NotifyOperator emails the configured operator mailbox.
func NotifyOperator(subject, htmlContent string) {
	operator := config.AppConfig.OperatorEmail
	if operator == "" {
		log.Println("OPERATOR_EMAIL not set, skipping operator notification.")
		return
	}
	SendEmail("", operator, subject, htmlContent)
}
