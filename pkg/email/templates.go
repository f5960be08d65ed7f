package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Field is one labelled row of the notification document. Exactly one of
// Value or Items is expected to carry data; a row with neither is skipped.
type Field struct {
	Label string
	Value string
	Items []string
	// Href turns Value into a link (e.g. mailto:)
	Href string
}

func (f Field) Present() bool {
	return strings.TrimSpace(f.Value) != "" || len(f.Items) > 0
}

// Lines splits Value so the template can join it with <br> while still
// escaping every line.
func (f Field) Lines() []string {
	v := strings.ReplaceAll(f.Value, "\r\n", "\n")
	return strings.Split(v, "\n")
}

type NotificationData struct {
	BrandName  string
	Fields     []Field
	ReceivedAt string
}

type ConfirmationData struct {
	BrandName string
	Name      string
	Year      int
}

const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
        .header { background: linear-gradient(135deg, #a855f7 0%, #06b6d4 100%); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: white; padding: 20px; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #a855f7; }
        .value { color: #555; margin-top: 5px; }
        .services-list { list-style: none; padding-left: 0; }
        .services-list li { padding: 5px 0; color: #555; }
        .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #999; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Contact Form Submission</h2>
        </div>
        <div class="content">
{{- range .Fields}}{{if .Present}}
            <div class="field">
                <div class="label">{{.Label}}</div>
{{- if .Items}}
                <ul class="services-list">{{range .Items}}<li>{{.}}</li>{{end}}</ul>
{{- else if .Href}}
                <div class="value"><a href="{{.Href}}">{{.Value}}</a></div>
{{- else}}
                <div class="value">{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</div>
{{- end}}
            </div>
{{- end}}{{end}}
            <div class="footer">
                <p>This is an automated email from the {{.BrandName}} website contact form.</p>
                <p>Submission received on: {{.ReceivedAt}}</p>
            </div>
        </div>
    </div>
</body>
</html>`

const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank You for Contacting {{.BrandName}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
        .header { background: linear-gradient(135deg, #a855f7 0%, #06b6d4 100%); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
        .content { background: white; padding: 20px; border-radius: 0 0 8px 8px; }
        .message { color: #555; margin: 20px 0; }
        .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #999; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Thank You for Contacting {{.BrandName}}</h2>
        </div>
        <div class="content">
            <p>Dear {{.Name}},</p>
            <div class="message">
                <p>Thank you for reaching out to {{.BrandName}}. We have received your inquiry and appreciate your interest in our services.</p>
                <p>Our team will review your submission and get back to you as soon as possible, typically within 24-48 business hours.</p>
                <p>If you have any urgent matters, please feel free to contact us directly through our YouTube channel or LinkedIn profile.</p>
            </div>
            <p>Best regards,<br>
            <strong>{{.BrandName}} Team</strong></p>
            <div class="footer">
                <p>This is an automated confirmation email. Please do not reply to this email.</p>
                <p>&copy; {{.Year}} {{.BrandName}}. All rights reserved.</p>
            </div>
        </div>
    </div>
</body>
</html>`

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
)

// RenderNotification builds the admin notification document.
func RenderNotification(data NotificationData) (string, error) {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute notification template: %w", err)
	}
	return body.String(), nil
}

// RenderConfirmation builds the thank-you document sent to the submitter.
func RenderConfirmation(data ConfirmationData) (string, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute confirmation template: %w", err)
	}
	return body.String(), nil
}
