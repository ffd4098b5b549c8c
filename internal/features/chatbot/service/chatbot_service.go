package service

import "strings"

// ChatbotService answers support questions with keyword-matched canned
// replies. Rules are evaluated in order; the first rule whose keywords
// match wins.
type ChatbotService struct {
	rules    []rule
	fallback string
}

type rule struct {
	keywords []string
	reply    string
}

func NewChatbotService() *ChatbotService {
	return &ChatbotService{
		rules: []rule{
			{
				keywords: []string{"hello", "hi ", "hey"},
				reply:    "Hello! How can I help you today? You can ask me about order tracking, product verification or inventory.",
			},
			{
				keywords: []string{"track", "order", "shipment", "delivery"},
				reply:    "You can track your order from the Track Order page. Enter your order ID (for example ORD001) to see its current status and full tracking history.",
			},
			{
				keywords: []string{"verify", "certif", "authentic", "qr"},
				reply:    "To verify a product's authenticity, open the Verify Certification page and enter the certification code printed on the packaging or scan its QR code.",
			},
			{
				keywords: []string{"inventory", "stock", "available"},
				reply:    "Current stock levels are listed on the Inventory page. You can search items by name or category.",
			},
			{
				keywords: []string{"training", "session", "book"},
				reply:    "Product training sessions can be booked from the Training page. Pick a date and time and we will confirm your slot.",
			},
			{
				keywords: []string{"feedback", "complain", "rating"},
				reply:    "We'd love to hear from you! Use the Feedback page to leave a rating and comments.",
			},
			{
				keywords: []string{"thank", "bye"},
				reply:    "You're welcome! Let me know if there is anything else I can help with.",
			},
		},
		fallback: "I'm not sure I understood that. I can help with order tracking, product verification, inventory, training bookings and feedback.",
	}
}

// Reply returns the canned response for the given message. It never
// returns an empty string.
func (s *ChatbotService) Reply(message string) string {
	normalized := " " + strings.ToLower(strings.TrimSpace(message)) + " "
	for _, r := range s.rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, kw) {
				return r.reply
			}
		}
	}
	return s.fallback
}
