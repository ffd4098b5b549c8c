package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply_KeywordMatching(t *testing.T) {
	svc := NewChatbotService()

	cases := []struct {
		message  string
		contains string
	}{
		{"Hello", "How can I help"},
		{"How do I track my order?", "Track Order"},
		{"Can you verify this certification?", "authenticity"},
		{"What's in stock?", "Inventory"},
		{"I want to book a training session", "training sessions"},
		{"I have some feedback", "Feedback page"},
		{"Thanks, bye!", "You're welcome"},
	}

	for _, tc := range cases {
		reply := svc.Reply(tc.message)
		assert.Contains(t, reply, tc.contains, "message %q", tc.message)
	}
}

func TestReply_CaseInsensitive(t *testing.T) {
	svc := NewChatbotService()

	assert.Equal(t, svc.Reply("TRACK ORDER"), svc.Reply("track order"))
}

func TestReply_FallbackNeverEmpty(t *testing.T) {
	svc := NewChatbotService()

	for _, msg := range []string{"", "   ", "xyzzy qwerty"} {
		assert.NotEmpty(t, svc.Reply(msg), "message %q", msg)
	}
}
