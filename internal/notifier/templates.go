package notifier

import (
	"fmt"
	"time"

	model "bidding-platform/internal/models"
)

// Email log types
const (
	EmailTypeBidConfirmation = "bid_confirmation"
	EmailTypeAdminNewBid     = "admin_new_bid"
	EmailTypeWinner          = "winner"
	EmailTypeUnsuccessful    = "unsuccessful"
	EmailTypeAdminClosure    = "admin_closure"
	EmailTypeReminder        = "reminder"
)

const signatureHTML = "<br><p>Best regards,<br>Baxter Environmental Team</p>"
const signatureText = "\nBest regards,\nBaxter Environmental Team\n"

// Message is a rendered email ready for a Notifier
type Message struct {
	Subject string
	HTML    string
	Text    string
}

func formatPounds(amount int64) string {
	return fmt.Sprintf("£%d", amount)
}

func opportunityListHTML(opp model.Opportunity) string {
	return fmt.Sprintf(`<ul>
<li><strong>Title:</strong> %s</li>
<li><strong>LPA:</strong> %s</li>
<li><strong>NCA:</strong> %s</li>
<li><strong>BNG Unit Type:</strong> %s</li>
<li><strong>Units Required:</strong> %d</li>
<li><strong>Closing Date:</strong> %s</li>
</ul>`, opp.Title, opp.LPA, opp.NCA, opp.BNGUnitType, opp.UnitsRequired, opp.ClosingDate.Format("02/01/2006"))
}

func opportunityListText(opp model.Opportunity) string {
	return fmt.Sprintf("Title: %s\nLPA: %s\nNCA: %s\nBNG Unit Type: %s\nUnits Required: %d\nClosing Date: %s\n",
		opp.Title, opp.LPA, opp.NCA, opp.BNGUnitType, opp.UnitsRequired, opp.ClosingDate.Format("02/01/2006"))
}

// BidConfirmationMessage confirms a submitted bid to the bidder
func BidConfirmationMessage(user model.User, opp model.Opportunity, bid model.Bid) Message {
	subject := fmt.Sprintf("Bid Confirmation - %s", opp.Title)
	html := fmt.Sprintf(`<h2>Bid Confirmation</h2>
<p>Hello %s %s,</p>
<p>Your bid of %s has been successfully submitted for the following opportunity:</p>
%s
<p>You will be notified if your bid is successful.</p>%s`,
		user.FirstName, user.LastName, formatPounds(bid.Amount), opportunityListHTML(opp), signatureHTML)
	text := fmt.Sprintf("Bid Confirmation\n\nHello %s %s,\n\nYour bid of %s has been successfully submitted for the following opportunity:\n\n%s\nYou will be notified if your bid is successful.\n%s",
		user.FirstName, user.LastName, formatPounds(bid.Amount), opportunityListText(opp), signatureText)
	return Message{Subject: subject, HTML: html, Text: text}
}

// AdminNewBidMessage alerts the operational recipient to a new bid
func AdminNewBidMessage(user model.User, opp model.Opportunity, bid model.Bid) Message {
	subject := fmt.Sprintf("New Bid - %s", opp.Title)
	html := fmt.Sprintf(`<h2>New Bid Submitted</h2>
<ul>
<li><strong>Title:</strong> %s</li>
<li><strong>Bidder:</strong> %s %s (%s)</li>
<li><strong>Email:</strong> %s</li>
<li><strong>Bid Amount:</strong> %s</li>
<li><strong>Submitted:</strong> %s</li>
</ul>`, opp.Title, user.FirstName, user.LastName, user.Company, user.Email,
		formatPounds(bid.Amount), bid.UpdatedAt.Format(time.RFC1123))
	return Message{Subject: subject, HTML: html, Text: html}
}

// WinnerMessage congratulates the winning bidder after a closure
func WinnerMessage(user model.User, opp model.Opportunity, amount int64) Message {
	subject := fmt.Sprintf("You won - %s", opp.Title)
	html := fmt.Sprintf(`<h2>Congratulations! You Won!</h2>
<p>Hello %s %s,</p>
<p>Your bid has been selected as the winning bid for:</p>
<ul>
<li><strong>Title:</strong> %s</li>
<li><strong>Your Winning Bid:</strong> %s</li>
<li><strong>LPA:</strong> %s</li>
<li><strong>NCA:</strong> %s</li>
<li><strong>BNG Unit Type:</strong> %s</li>
<li><strong>Units Required:</strong> %d</li>
</ul>
<p>We will be in touch shortly with next steps.</p>%s`,
		user.FirstName, user.LastName, opp.Title, formatPounds(amount),
		opp.LPA, opp.NCA, opp.BNGUnitType, opp.UnitsRequired, signatureHTML)
	text := fmt.Sprintf("Congratulations! You Won!\n\nHello %s %s,\n\nYour bid of %s has been selected as the winning bid for %s.\nWe will be in touch shortly with next steps.\n%s",
		user.FirstName, user.LastName, formatPounds(amount), opp.Title, signatureText)
	return Message{Subject: subject, HTML: html, Text: text}
}

// UnsuccessfulMessage tells a losing bidder the outcome
func UnsuccessfulMessage(user model.User, opp model.Opportunity, winningAmount int64) Message {
	subject := fmt.Sprintf("Bid Result - %s", opp.Title)
	html := fmt.Sprintf(`<h2>Bid Result</h2>
<p>Hello %s %s,</p>
<p>Thank you for your bid on %s.</p>
<p>Unfortunately, your bid was not selected. The winning bid was %s.</p>
<p>We encourage you to participate in future opportunities.</p>%s`,
		user.FirstName, user.LastName, opp.Title, formatPounds(winningAmount), signatureHTML)
	text := fmt.Sprintf("Bid Result\n\nHello %s %s,\n\nThank you for your bid on %s.\nUnfortunately, your bid was not selected. The winning bid was %s.\nWe encourage you to participate in future opportunities.\n%s",
		user.FirstName, user.LastName, opp.Title, formatPounds(winningAmount), signatureText)
	return Message{Subject: subject, HTML: html, Text: text}
}

// AdminClosureMessage summarizes a closure for the operational recipient
func AdminClosureMessage(opp model.Opportunity, result model.ClosingResult) Message {
	subject := fmt.Sprintf("Opportunity Closed - %s", opp.Title)
	outcome := "closed with no bids"
	if result.Outcome == model.ClosedWithWinner {
		outcome = fmt.Sprintf("closed with winning bid %s at %s", result.WinningBidID, formatPounds(result.WinningBidAmount))
	}
	html := fmt.Sprintf(`<h2>Opportunity Closed</h2>
<p>%s (%s) has been %s.</p>`, opp.Title, opp.OpportunityID, outcome)
	return Message{Subject: subject, HTML: html, Text: html}
}

// ReminderMessage warns a bidder that an opportunity closes tomorrow
func ReminderMessage(user model.User, opp model.Opportunity) Message {
	subject := fmt.Sprintf("Reminder: %s closes tomorrow", opp.Title)
	html := fmt.Sprintf(`<h2>Bid Opportunity Closing Tomorrow</h2>
<p>Hello %s %s,</p>
<p>Reminder: the following bid opportunity closes tomorrow:</p>
%s
<p>Don't miss out on this opportunity!</p>%s`,
		user.FirstName, user.LastName, opportunityListHTML(opp), signatureHTML)
	text := fmt.Sprintf("Bid Opportunity Closing Tomorrow\n\nHello %s %s,\n\nReminder: the following bid opportunity closes tomorrow:\n\n%s\nDon't miss out on this opportunity!\n%s",
		user.FirstName, user.LastName, opportunityListText(opp), signatureText)
	return Message{Subject: subject, HTML: html, Text: text}
}
