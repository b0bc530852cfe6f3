package inbox

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clementmotivates/core/internal/models"
)

func TestWhatsAppLink(t *testing.T) {
	m := models.ContactMessage{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		ServiceInterest: "Web Development",
		Message:         "I need a site & a brand",
	}
	link := WhatsAppLink("2348060180077", m)
	require.True(t, strings.HasPrefix(link, "https://wa.me/2348060180077?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	require.True(t, strings.HasPrefix(text, "*New Website Inquiry*"))
	require.Contains(t, text, "*Name:* Ada Lovelace")
	require.Contains(t, text, "*Email:* ada@example.com")
	require.Contains(t, text, "*Interest:* Web Development")
	require.Contains(t, text, "*Message:*\nI need a site & a brand")
}

func TestForwarderDeliversInquiry(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewForwarder(srv.URL, nil)
	f.deliver(models.ContactMessage{
		ID:              "abc",
		Name:            "Ada",
		Email:           "ada@example.com",
		ServiceInterest: "General Inquiry",
		Message:         "hello",
	})

	require.Equal(t, "application/json", gotContentType)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Equal(t, map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"serviceInterest": "General Inquiry",
		"message":         "hello",
	}, payload)
}

func TestForwarderToleratesRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	// only logs; must not panic or retry forever
	NewForwarder(srv.URL, nil).deliver(models.ContactMessage{Name: "Ada"})
}

func TestForwarderDisabledWithoutEndpoint(t *testing.T) {
	// no goroutine, no request, no panic
	NewForwarder("", nil).Forward(models.ContactMessage{Name: "Ada"})
}
