package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mmynk/addressbook/internal/command"
	"github.com/mmynk/addressbook/internal/middleware"
	"github.com/mmynk/addressbook/internal/service"
	"github.com/mmynk/addressbook/internal/storage/memory"
	"github.com/mmynk/addressbook/pkg/logging"
)

// exitInterrupted is the exit code after SIGINT, 128 + signal number.
const exitInterrupted = 130

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	var (
		logLevel         string
		weekendsToMonday bool
	)

	weekendsDefault, _ := strconv.ParseBool(getEnv("ASSISTANT_WEEKENDS_TO_MONDAY", "false"))

	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Interactive address book assistant",
		Long: `assistant keeps an in-memory address book of names, phone numbers and
birthdays, and reports whose birthday falls in the coming week.

Type "help" at the prompt for the list of commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Setup(cmd.ErrOrStderr(), logLevel)

			reg := prometheus.NewRegistry()
			metrics := middleware.NewMetrics(reg)

			svc := service.NewAddressBookService(memory.New(),
				service.WithWeekendsToMonday(weekendsToMonday),
			)
			dispatcher := command.NewAssistant(svc,
				func(w io.Writer) error { return middleware.WriteText(w, reg) },
				middleware.Logging(logger),
				metrics.Middleware(),
			)

			logger.Debug("Assistant starting", "weekends_to_monday", weekendsToMonday)
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), dispatcher)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", getEnv("LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&weekendsToMonday, "weekends-to-monday", weekendsDefault, "report weekend birthdays under Monday")
	return cmd
}

// run reads commands from in until exit, close or end of input, writing replies to out.
func run(ctx context.Context, in io.Reader, out io.Writer, dispatcher *command.Dispatcher) error {
	fmt.Fprintln(out, command.Reply(command.TagPrompt, "Welcome to the assistant bot!"))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, command.Reply(command.TagPrompt, "Enter a command: "))
		if !scanner.Scan() {
			break
		}

		reply, err := dispatcher.Dispatch(ctx, scanner.Text())
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		if errors.Is(err, command.ErrQuit) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// end of input ends the session like exit does
	reply, _ := dispatcher.Dispatch(ctx, "exit")
	fmt.Fprintln(out, reply)
	return nil
}

func main() {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		fmt.Printf("%-8s %s\n", "\n"+command.TagPrompt, "Good bye!")
		os.Exit(exitInterrupted)
	}()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Assistant failed", "error", err)
		os.Exit(1)
	}
}
