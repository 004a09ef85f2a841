package constvars

const (
	EmailSendHTMLSubjectFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

const (
	EmailBookingCreatedSubjectFormat   = "Your Appointment for %s is on %s at %s is Confirmed"
	EmailPaymentConfirmedSubjectFormat = "We have received your payment for %s on %s at %s"
	EmailDefaultSenderName             = "Doctors Portal"
	ReceiptObjectKeyFormat             = "receipts/%s/%s.html"
)

const (
	EmailBookingCreatedBodyFormat = `<div>
  <p>Hello %s,</p>
  <h3>Your Appointment for %s is confirmed</h3>
  <p>Looking forward to seeing you on %s at %s.</p>
</div>`
	EmailPaymentConfirmedBodyFormat = `<div>
  <p>Hello %s,</p>
  <h3>Thank you for your payment</h3>
  <p>Appointment: %s on %s at %s</p>
  <p>Transaction: %s</p>
</div>`
)
