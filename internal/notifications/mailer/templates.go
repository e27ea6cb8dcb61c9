package mailer

import (
	"bytes"
	"fmt"
	"text/template"
)

// templateData данные, доступные в шаблонах писем
type templateData struct {
	BookingDetails
	SiteName string
}

var customerHTMLTmpl = template.Must(template.New("customer_html").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Booking Confirmation</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #3b82f6; color: white; padding: 20px; text-align: center;">
    <h1>Booking Confirmed!</h1>
    <p>Thank you for choosing {{.SiteName}}</p>
  </div>
  <div style="background: #f9fafb; padding: 30px;">
    <p>Hi {{.Name}},</p>
    <p>Thank you for your booking! We're excited to capture your special moments with our 360&deg; photo booth experience.</p>
    <p style="background: #fef3c7; padding: 15px;"><strong>Important:</strong> Your booking is confirmed, but we'll contact you within 24 hours to finalize details and answer any questions you may have.</p>
    <div style="background: white; padding: 20px;">
      <h3 style="color: #3b82f6;">Booking Details</h3>
      <p><strong>Package:</strong> {{.PackageName}}</p>
      <p><strong>Event Date:</strong> {{.EventDate}}</p>
      <p><strong>Event Time:</strong> {{.EventTime}}</p>
      <p><strong>Total:</strong> {{.TotalPrice}}</p>
      {{if .Message}}<p><strong>Special Requests:</strong> {{.Message}}</p>{{end}}
    </div>
  </div>
</body>
</html>`))

var customerTextTmpl = template.Must(template.New("customer_text").Parse(`Hi {{.Name}},

Thank you for your booking with {{.SiteName}}!

Booking Details:
  Package:    {{.PackageName}}
  Event Date: {{.EventDate}}
  Event Time: {{.EventTime}}
  Total:      {{.TotalPrice}}
{{if .Message}}  Special Requests: {{.Message}}
{{end}}
Your booking is confirmed. We'll contact you within 24 hours to finalize details.
`))

var adminHTMLTmpl = template.Must(template.New("admin_html").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>New Booking</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>New Booking Request - {{.Name}}</h2>
  <p><strong>Customer:</strong> {{.Name}} ({{.Email}})</p>
  <p><strong>Package:</strong> {{.PackageName}}</p>
  <p><strong>Event Date:</strong> {{.EventDate}}</p>
  <p><strong>Event Time:</strong> {{.EventTime}}</p>
  <p><strong>Total:</strong> {{.TotalPrice}}</p>
  {{if .Message}}<p><strong>Special Requests:</strong> {{.Message}}</p>{{end}}
</body>
</html>`))

var adminTextTmpl = template.Must(template.New("admin_text").Parse(`New booking request from {{.Name}} ({{.Email}})

  Package:    {{.PackageName}}
  Event Date: {{.EventDate}}
  Event Time: {{.EventTime}}
  Total:      {{.TotalPrice}}
{{if .Message}}  Special Requests: {{.Message}}
{{end}}`))

func render(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderTemplate, tmpl.Name(), err)
	}
	return buf.String(), nil
}
