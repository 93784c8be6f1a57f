package utils

import (
	"fmt"
	"jbp/models"
)

// NotificationResult records the outcome of one send attempt. Produced per
// recipient during fan-out and consumed immediately by the caller for logging.
type NotificationResult struct {
	Recipient string
	Success   bool
	Message   string
}

// NotifierConfig holds the admin recipient settings for lead notifications
type NotifierConfig struct {
	AdminEmail string
	AdminUsers []string
}

// LeadNotifier fans out new-lead notifications to the configured admin set
type LeadNotifier struct {
	mailer *Mailer
	cfg    NotifierConfig
}

// NewLeadNotifier creates a LeadNotifier backed by the given mailer
func NewLeadNotifier(mailer *Mailer, cfg NotifierConfig) *LeadNotifier {
	return &LeadNotifier{mailer: mailer, cfg: cfg}
}

// Recipients returns the deduplicated union of the admin email and admin users
func (n *LeadNotifier) Recipients() []string {
	seen := make(map[string]bool)
	var recipients []string

	addresses := append([]string{n.cfg.AdminEmail}, n.cfg.AdminUsers...)
	for _, addr := range addresses {
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		recipients = append(recipients, addr)
	}
	return recipients
}

// NotifyNewLead sends the lead notification to every configured recipient,
// one gateway call per recipient. A failed delivery to one recipient does not
// block delivery to the others.
func (n *LeadNotifier) NotifyNewLead(lead *models.Lead) []NotificationResult {
	leadDate := lead.CreatedAt.Format("02 January 2006, 03:04 PM")

	body := fmt.Sprintf(`
		<p>A new inquiry has been received from the Jodhpur Boys PG website:</p>
		<div class="info-box">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Mobile:</strong> %s</p>
			<p><strong>Date:</strong> %s</p>
		</div>
		<p>Please contact them as soon as possible.</p>
	`, lead.Name, lead.Mobile, leadDate)

	subject := "New Lead: " + lead.Name
	html := getEmailTemplate("New Lead Inquiry", body)

	var results []NotificationResult
	for _, recipient := range n.Recipients() {
		success, message := n.mailer.Send(recipient, subject, html, "Admin")
		results = append(results, NotificationResult{
			Recipient: recipient,
			Success:   success,
			Message:   message,
		})
	}
	return results
}
