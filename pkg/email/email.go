package email

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"compliance-ai-backend/config"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS; STARTTLS is negotiated otherwise
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// FromAppConfig maps the process configuration onto the transport settings.
func FromAppConfig(cfg *config.Config) Config {
	return Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Secure:   cfg.SMTPSecure,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFromEmail,
		Timeout:  time.Duration(cfg.SMTPTimeoutSeconds) * time.Second,
	}
}

// Client sends mail over SMTP. It keeps no session state: each Send dials,
// delivers and closes, so one Client is shared by all requests.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{cfg: cfg}
}

// IsConfigured checks if the client has enough settings to authenticate.
func (c *Client) IsConfigured() bool {
	return c.cfg.Host != "" && c.cfg.Username != "" && c.cfg.Password != ""
}

func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	d := c.newDialer()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	// ctx deadline wins when it is sooner than the transport timeout
	wait := c.cfg.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < wait {
			wait = left
		}
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ErrSend{Provider: "gomail/smtp", Err: ctx.Err()}
	case <-timer.C:
		return ErrSend{Provider: "gomail/smtp", Err: context.DeadlineExceeded}
	}
}

func (c *Client) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)
	d.SSL = c.cfg.Secure
	d.TLSConfig = &tls.Config{ServerName: c.cfg.Host, MinVersion: tls.VersionTLS12}
	return d
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}

	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}

	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	if strings.TrimSpace(m.HTMLBody) == "" {
		return nil, ErrInvalidMessage{Reason: "HTMLBody is required"}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	if replyTo := strings.TrimSpace(m.ReplyTo); replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetHeader("Subject", subj)
	msg.SetBody("text/html", m.HTMLBody)

	return msg, nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
