// Package notifier provides the concrete notification channels of the library.
//
// Every channel writes one line per notification to an io.Writer:
//
//	EmailNotifier:  [EMAIL] To: <recipient> | Subject: <subject> | Msg: <message>
//	SMSNotifier:    [SMS] To: <recipient> | Msg: <message>
//	JSONNotifier:   {"channel":"json","recipient":...,"subject":...,"message":...,"sentAt":...}
//
// FanOutNotifier forwards each notification to several channels in order, and Build
// creates a channel by its configured name.
//
// All channels satisfy library.Notifier: Send never signals an error. Write failures are
// reported to the optional Logger and otherwise swallowed.
package notifier
