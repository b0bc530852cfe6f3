package inbox

import (
	"fmt"
	"net/url"

	"github.com/clementmotivates/core/internal/models"
)

// WhatsAppLink builds a wa.me deep link carrying the inquiry as a
// pre-filled chat message. phone must be digits only.
func WhatsAppLink(phone string, m models.ContactMessage) string {
	text := fmt.Sprintf("*New Website Inquiry*\n\n*Name:* %s\n*Email:* %s\n*Interest:* %s\n\n*Message:*\n%s",
		m.Name, m.Email, m.ServiceInterest, m.Message)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}
