package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jbp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func testLead() *models.Lead {
	return &models.Lead{
		Model:  gorm.Model{CreatedAt: time.Date(2026, 8, 14, 18, 30, 0, 0, time.UTC)},
		Name:   "Rahul Sharma",
		Mobile: "9876543210",
	}
}

func TestRecipientsDeduplicated(t *testing.T) {
	notifier := NewLeadNotifier(nil, NotifierConfig{
		AdminEmail: "a@example.com",
		AdminUsers: []string{"b@example.com", "a@example.com"},
	})

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, notifier.Recipients())
}

func TestRecipientsSkipsBlanks(t *testing.T) {
	notifier := NewLeadNotifier(nil, NotifierConfig{
		AdminEmail: "",
		AdminUsers: []string{"b@example.com", ""},
	})

	assert.Equal(t, []string{"b@example.com"}, notifier.Recipients())
}

func TestNotifyNewLeadFanOut(t *testing.T) {
	var sentTo []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload brevoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.To, 1)
		sentTo = append(sentTo, payload.To[0].Email)

		assert.Equal(t, "New Lead: Rahul Sharma", payload.Subject)
		assert.Contains(t, payload.HtmlContent, "Rahul Sharma")
		assert.Contains(t, payload.HtmlContent, "9876543210")
		assert.Contains(t, payload.HtmlContent, "14 August 2026")

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mailer := NewMailer(MailerConfig{ApiKey: "test-key", ApiURL: server.URL})
	notifier := NewLeadNotifier(mailer, NotifierConfig{
		AdminEmail: "a@example.com",
		AdminUsers: []string{"b@example.com", "a@example.com"},
	})

	results := notifier.NotifyNewLead(testLead())

	// [a, b, a] deduplicates to exactly 2 gateway calls
	require.Len(t, results, 2)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sentTo)
	for _, result := range results {
		assert.True(t, result.Success, "unexpected failure for %s", result.Recipient)
	}
}

func TestNotifyNewLeadFailureDoesNotBlockOthers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload brevoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		// Reject only the first admin's address
		if payload.To[0].Email == "a@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mailer := NewMailer(MailerConfig{ApiKey: "test-key", ApiURL: server.URL})
	notifier := NewLeadNotifier(mailer, NotifierConfig{
		AdminEmail: "a@example.com",
		AdminUsers: []string{"b@example.com"},
	})

	results := notifier.NotifyNewLead(testLead())

	require.Len(t, results, 2)
	assert.Equal(t, "a@example.com", results[0].Recipient)
	assert.False(t, results[0].Success)
	assert.Equal(t, "b@example.com", results[1].Recipient)
	assert.True(t, results[1].Success)
}
