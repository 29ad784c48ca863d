package library

import (
	"context"
	"fmt"
	"strconv"
)

// Notifier sends a user-facing message to a recipient.
//
// Implementations are fire-and-forget: Send is synchronous, never signals an error
// and is never retried by the Service.
type Notifier interface {
	Send(ctx context.Context, recipient string, subject string, message string)
}

const (
	subjectWelcome  = "Welcome to the Library"
	messageWelcome  = "You have been registered in our system!"
	subjectLoan     = "Loan Confirmed"
	messageLoanFmt  = "You borrowed the book: %s"
	subjectLateFine = "Late Return Fine"
	messageFineFmt  = "You have a late fee of %s"
)

// FormatFine renders a fine amount without superfluous decimals, e.g. "3" or "2.5".
func FormatFine(fine float64) string {
	return strconv.FormatFloat(fine, 'f', -1, 64)
}

func loanMessage(book *Book) string {
	return fmt.Sprintf(messageLoanFmt, book.Title)
}

func fineMessage(fine float64) string {
	return fmt.Sprintf(messageFineFmt, FormatFine(fine))
}
