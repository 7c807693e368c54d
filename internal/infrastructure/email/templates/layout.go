// Package templates provides email template layout
package templates

import (
	"bytes"
	"html/template"
	"log"
)

type EmailLayoutProps struct {
	Preheader  string
	Content    string
	FooterText string
}

// Internal template data structure with safe HTML typing
type emailTemplateData struct {
	Preheader  string
	Content    template.HTML // Mark as safe HTML to prevent escaping
	FooterText string
}

// emailLayoutTemplate is the compiled template for email layout
var emailLayoutTemplate = template.Must(template.New("emailLayout").Parse(`
<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>Email from PixelCraft</title>
  </head>
  <body style="background-color: #f4f5f6; font-family: Helvetica, sans-serif; font-size: 16px; margin: 0; padding: 0;">
    <span style="color: transparent; display: none; height: 0; max-height: 0; max-width: 0; opacity: 0; overflow: hidden; visibility: hidden; width: 0;">{{.Preheader}}</span>
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%" style="background-color: #f4f5f6; width: 100%;">
      <tr>
        <td>&nbsp;</td>
        <td style="display: block; margin: 0 auto; max-width: 600px; padding: 24px;" width="600">
          <div style="background: #ffffff; border-radius: 8px; padding: 24px;">
            {{.Content}}
          </div>
          <div style="color: #9a9ea6; font-size: 13px; padding-top: 16px; text-align: center;">
            {{.FooterText}}
          </div>
        </td>
        <td>&nbsp;</td>
      </tr>
    </table>
  </body>
</html>`))

// GetEmailLayout renders the outer HTML shell around pre-rendered content
func GetEmailLayout(props EmailLayoutProps) string {
	data := emailTemplateData{
		Preheader:  props.Preheader,
		Content:    template.HTML(props.Content),
		FooterText: props.FooterText,
	}

	var buf bytes.Buffer
	if err := emailLayoutTemplate.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute email layout template: %v", err)
		return props.Content
	}

	return buf.String()
}
