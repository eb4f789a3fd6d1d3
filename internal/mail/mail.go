package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jekabolt/seminar-booking/internal/dependency"
	gerr "github.com/jekabolt/seminar-booking/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	ReplyTo        string        `mapstructure:"reply_to"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	QueueSize      int           `mapstructure:"queue_size"`
}

type Mailer struct {
	cli       dependency.Sender
	from      *mail.Email
	c         *Config
	ctx       context.Context
	cancel    context.CancelFunc
	templates map[string]*template.Template

	queue chan pending
	// mu guards retry, which holds mails deferred by the API rate limit
	mu    sync.Mutex
	retry []pending
}

type pending struct {
	msg      *mail.SGMailV3
	to       string
	attempts int
}

const maxAttempts = 5

// New returns a sendgrid backed mailer.
func New(c *Config) (dependency.Mailer, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("incomplete config: missing sendgrid api key")
	}
	return newMailer(c, sendgrid.NewSendClient(c.APIKey))
}

func newMailer(c *Config, cli dependency.Sender) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: from_email and from_email_name are required")
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Minute
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 100
	}

	m := &Mailer{
		cli:       cli,
		from:      mail.NewEmail(c.FromName, c.FromEmail),
		c:         c,
		templates: make(map[string]*template.Template),
		queue:     make(chan pending, c.QueueSize),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, filepath.Join(templateDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}
	return nil
}

func (m *Mailer) buildMessage(to, name, tn string, data any) (*mail.SGMailV3, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}
	subject, ok := templateSubjects[tn]
	if !ok {
		return nil, fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	msg := mail.NewSingleEmail(m.from, subject, mail.NewEmail(name, to), "", body.String())
	if m.c.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail(m.c.FromName, m.c.ReplyTo))
	}
	return msg, nil
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return gerr.MailApiLimitReached
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", gerr.BadMailRequest, resp.Body)
	case resp.StatusCode >= 300:
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}
