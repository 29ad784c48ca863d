package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-loans-go/config"
	"github.com/AntonStoeckl/library-loans-go/features/bookslentbyuser"
	"github.com/AntonStoeckl/library-loans-go/features/finishedloans"
	"github.com/AntonStoeckl/library-loans-go/features/shell"
	"github.com/AntonStoeckl/library-loans-go/journal"
	"github.com/AntonStoeckl/library-loans-go/library"
	"github.com/AntonStoeckl/library-loans-go/notifier"
)

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the lending scenario and print the late fee",
		Long: `Seeds the catalog and the registry, lends the scenario's book to the scenario's user,
lets the configured number of simulated days pass, returns the book and prints the late fee.
Notifications are written to stdout, logs to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			return runScenario(cmd.Context(), cfg, flags.telemetry, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.telemetry, flagTelemetry, false, "collect OpenTelemetry metrics and spans and print a summary")

	return cmd
}

// simulatedClock starts at the real time and only moves when advanced.
type simulatedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *simulatedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *simulatedClock) advanceDays(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Duration(days) * 24 * time.Hour)
}

func runScenario(ctx context.Context, cfg config.Config, withTelemetry bool, out io.Writer, errOut io.Writer) error {
	logger := config.NewLogger(cfg.Logging, errOut)
	clock := &simulatedClock{now: time.Now()}

	channelNotifier, err := notifier.Build(cfg.Notifier.Channel, out, notifier.WithLogger(logger), notifier.WithClock(clock.Now))
	if err != nil {
		return err
	}

	options := []library.Option{library.WithClock(clock.Now), library.WithLogger(logger)}

	var eventJournal *journal.MemoryJournal
	if cfg.Journal.Enabled {
		eventJournal = journal.NewMemoryJournal()
		options = append(options, library.WithJournal(eventJournal))
	}

	var tel *telemetry
	if withTelemetry {
		tel = newTelemetry()
		options = append(options, tel.options()...)
	}

	service, err := library.NewService(channelNotifier, options...)
	if err != nil {
		return err
	}

	for _, book := range cfg.Books {
		service.AddBook(ctx, library.BuildBook(book.Title, book.Author, book.ISBN))
	}

	for _, user := range cfg.Users {
		service.AddUser(ctx, library.BuildUser(user.Name, user.ID))
	}

	scenario := cfg.Scenario
	if !service.Borrow(ctx, scenario.UserID, scenario.ISBN, scenario.LoanDays) {
		logger.Warn("scenario loan was rejected", "user_id", scenario.UserID, "isbn", scenario.ISBN)
	}

	clock.advanceDays(scenario.ReturnAfterDays)
	fine := service.ReturnBook(ctx, scenario.ISBN, scenario.UserID)

	if _, err = fmt.Fprintf(out, "Late fee: %s\n", library.FormatFine(fine)); err != nil {
		return err
	}

	if eventJournal != nil {
		queryOptions := []shell.Option{shell.WithLogging(logger)}
		if tel != nil {
			queryOptions = append(queryOptions, tel.queryOptions()...)
		}

		if err = logJournalSummary(ctx, eventJournal, scenario.UserID, logger, queryOptions...); err != nil {
			return err
		}
	}

	if tel != nil {
		return tel.printSummary(ctx, out)
	}

	return nil
}

// logJournalSummary replays the journal through the query features and logs what it found at debug level.
func logJournalSummary(
	ctx context.Context,
	eventJournal *journal.MemoryJournal,
	userID library.UserIDInt,
	logger *slog.Logger,
	queryOptions ...shell.Option,
) error {

	finishedLoansHandler, err := finishedloans.NewQueryHandler(eventJournal, queryOptions...)
	if err != nil {
		return err
	}

	finished, err := finishedLoansHandler.Handle(ctx, finishedloans.BuildQuery())
	if err != nil {
		return err
	}

	booksLentHandler, err := bookslentbyuser.NewQueryHandler(eventJournal, queryOptions...)
	if err != nil {
		return err
	}

	lent, err := booksLentHandler.Handle(ctx, bookslentbyuser.BuildQuery(userID))
	if err != nil {
		return err
	}

	logger.Debug("circulation journal summary",
		"events", eventJournal.Len(),
		"finished_loans", finished.Count,
		"total_fines", finished.TotalFines,
		"books_still_lent", lent.Count,
	)

	return nil
}
