// Package templates provides email template components
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// ContactEmailProps carries the contact-form fields into the email body
type ContactEmailProps struct {
	Name    string
	Email   string
	Service string
	Budget  string
	Message string
}

var contactEmailTemplate = template.Must(template.New("contactEmail").Parse(`
    <h2 style="font-size: 20px; font-weight: bold; margin: 0 0 16px;">New project enquiry</h2>
    <p style="font-size: 16px; margin: 0 0 8px;"><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
    <p style="font-size: 16px; margin: 0 0 8px;"><strong>Service:</strong> {{.Service}}</p>
    <p style="font-size: 16px; margin: 0 0 16px;"><strong>Budget:</strong> {{.Budget}}</p>
    <p style="font-size: 16px; margin: 0; white-space: pre-wrap;">{{.Message}}</p>`))

// GetContactEmailContent renders the contact enquiry body for the layout
func GetContactEmailContent(props ContactEmailProps) string {
	var buf bytes.Buffer
	if err := contactEmailTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: Failed to execute contact email template: %v", err)
		return ""
	}

	return buf.String()
}
