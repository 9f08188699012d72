package notifier

import (
	"bytes"
	"html/template"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: #dc2626; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background-color: #f5f5f5; padding: 30px; border-radius: 0 0 8px 8px; }
      .detail-row { margin: 15px 0; padding: 10px; background-color: white; border-radius: 4px; }
      .label { font-weight: bold; color: #dc2626; }
      .value { color: #1a1a1a; margin-left: 10px; }
      .footer { text-align: center; margin-top: 20px; color: #737373; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>Booking Confirmation</h1></div>
      <div class="content">
        <p>Dear <strong>{{.FullName}}</strong>,</p>
        <p>Thank you for choosing our bike service! Your booking has been confirmed.</p>
        <div class="detail-row"><span class="label">Booking ID:</span><span class="value">{{.ID}}</span></div>
        <div class="detail-row"><span class="label">Services:</span><span class="value">{{.Service}}</span></div>
        <div class="detail-row"><span class="label">Date:</span><span class="value">{{.Date}}</span></div>
        <div class="detail-row"><span class="label">Time Slot:</span><span class="value">{{.TimeSlot}}</span></div>
        <div class="detail-row"><span class="label">Location:</span><span class="value">{{.Location}}</span></div>
        <div class="detail-row"><span class="label">Assigned Mechanic:</span><span class="value">{{.Mechanic}}</span></div>
        <div class="detail-row"><span class="label">Bike Number:</span><span class="value">{{.BikeNumber}}</span></div>
        <div class="detail-row"><span class="label">Service Type:</span><span class="value">{{.ServiceType}}</span></div>
        <p style="margin-top: 30px;">Please arrive 10 minutes before your scheduled time. If you need to reschedule, please contact us as soon as possible.</p>
        <p>We look forward to serving you!</p>
      </div>
      <div class="footer"><p>Bike Service Center</p></div>
    </div>
  </body>
</html>`))

type confirmationView struct {
	*domain.Booking
	ServiceType string
}

// renderConfirmation строит HTML письма-подтверждения; значения экранируются шаблоном
func renderConfirmation(b *domain.Booking) (string, error) {
	view := confirmationView{Booking: b, ServiceType: "Free Service (Warranty)"}
	if b.PaymentType == domain.PaymentTypePaid {
		view.ServiceType = "Paid Service"
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
