package usecase

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML replaces the five markup-significant characters with entities.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

const contactTextTemplate = `
New contact form submission:

Name: {{ .Name }}
Email: {{ .Email }}
{{ if .Subject }}Subject: {{ .Subject }}{{ end }}

Message:
{{ .Message }}

---
This email was sent from the contact form.
`

const contactHTMLTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: 600; color: #6b7280; font-size: 12px; text-transform: uppercase; }
        .value { margin-top: 4px; }
        .message { background: white; padding: 15px; border-radius: 8px; border: 1px solid #e5e7eb; white-space: pre-wrap; }
        .footer { margin-top: 20px; font-size: 12px; color: #9ca3af; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2 style="margin: 0;">📬 New Contact Form Submission</h2>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name</div>
                <div class="value">{{ escape .Name }}</div>
            </div>
            <div class="field">
                <div class="label">Email</div>
                <div class="value"><a href="mailto:{{ escape .Email }}">{{ escape .Email }}</a></div>
            </div>
            {{- if .Subject }}
            <div class="field">
                <div class="label">Subject</div>
                <div class="value">{{ escape .Subject }}</div>
            </div>
            {{- end }}
            <div class="field">
                <div class="label">Message</div>
                <div class="message">{{ escape .Message }}</div>
            </div>
        </div>
        <div class="footer">
            This email was sent from the contact form.
        </div>
    </div>
</body>
</html>
`

var (
	contactText = template.Must(template.New("contact_text").Parse(contactTextTemplate))
	contactHTML = template.Must(template.New("contact_html").
			Funcs(template.FuncMap{"escape": escapeHTML}).
			Parse(contactHTMLTemplate))
)

func renderTemplate(t *template.Template, data entity.ContactData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return strings.TrimSpace(buf.String()), nil
}

// contactSubject returns the submitted subject or a synthesized one.
func contactSubject(data entity.ContactData) string {
	if data.Subject != "" {
		return data.Subject
	}
	return "[Contact Form] Message from " + data.Name
}
