package notifier

import (
	"time"

	model "bidding-platform/internal/models"
	"bidding-platform/utils"
)

// EmailLogSink records delivery attempts for the audit trail
type EmailLogSink interface {
	RecordEmailLog(entry model.EmailLog) error
}

// Dispatcher sends one message at a time and records every attempt in the
// email log. Delivery is best-effort: failures are logged, never returned.
type Dispatcher struct {
	sender Notifier
	logs   EmailLogSink
}

// NewDispatcher creates a new Dispatcher instance
func NewDispatcher(sender Notifier, logs EmailLogSink) *Dispatcher {
	return &Dispatcher{sender: sender, logs: logs}
}

// Deliver sends msg to recipient and records the outcome. It reports
// whether the send succeeded.
func (d *Dispatcher) Deliver(emailType, recipient string, msg Message, opportunityID, bidID string) bool {
	entry := model.EmailLog{
		LogID:          utils.GenerateID(),
		Type:           emailType,
		RecipientEmail: recipient,
		Subject:        msg.Subject,
		OpportunityID:  opportunityID,
		BidID:          bidID,
		Status:         "sent",
		SentAt:         time.Now().UTC(),
	}

	delivered := true
	if err := d.sender.Send(recipient, msg.Subject, msg.HTML, msg.Text); err != nil {
		delivered = false
		entry.Status = "failed"
		entry.Error = err.Error()
		utils.Error("notification delivery failed", map[string]any{
			"type":           emailType,
			"recipient":      recipient,
			"opportunity_id": opportunityID,
			"error":          err.Error(),
		})
	} else {
		utils.Info("notification delivered", map[string]any{
			"type":           emailType,
			"recipient":      recipient,
			"opportunity_id": opportunityID,
		})
	}

	if err := d.logs.RecordEmailLog(entry); err != nil {
		utils.Warn("failed to record email log", map[string]any{
			"type":      emailType,
			"recipient": recipient,
			"error":     err.Error(),
		})
	}
	return delivered
}
