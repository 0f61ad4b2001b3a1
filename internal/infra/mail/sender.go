package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/reboundcg/lead-portal/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

type skipTraceNoticeData struct {
	CaseNumber   string
	ContactName  string
	OperatorName string
	CompletedAt  string
}

// SendSkipTraceNotice emails the operations inbox that a contact was traced.
func (s *EmailSender) SendSkipTraceNotice(to string, payload queue.SkipTracePayload) error {
	data := skipTraceNoticeData{
		CaseNumber:   payload.CaseNumber,
		ContactName:  payload.ContactName,
		OperatorName: payload.OperatorName,
		CompletedAt:  payload.CompletedAt.Format("Jan 2, 2006 15:04 MST"),
	}

	tmplPath := filepath.Join("templates", "skiptrace_notice.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("read notice template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render notice template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Skip trace completed: %s (%s)", payload.ContactName, payload.CaseNumber))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send notice via SMTP: %w", err)
	}
	return nil
}
