package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/addressbook/internal/command"
	"github.com/mmynk/addressbook/internal/models"
	"github.com/mmynk/addressbook/internal/service"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// CommandIDKey is the context key for storing the ID of the running command.
const CommandIDKey contextKey = "command_id"

// GetCommandID extracts the command ID from the context.
// Returns empty string if not found.
func GetCommandID(ctx context.Context) string {
	id, _ := ctx.Value(CommandIDKey).(string)
	return id
}

// Logging returns a command middleware that logs every command run.
// It tags the context with a fresh command ID and logs the command name,
// argument count, duration, and any error.
func Logging(logger *slog.Logger) command.Middleware {
	return func(name string, next command.HandlerFunc) command.HandlerFunc {
		return func(ctx context.Context, args []string) (string, error) {
			start := time.Now()
			id := uuid.New().String()
			ctx = context.WithValue(ctx, CommandIDKey, id)

			out, err := next(ctx, args)

			duration := time.Since(start).Milliseconds()
			switch {
			case err == nil, errors.Is(err, command.ErrQuit):
				logger.Info("Command ok",
					"command", name,
					"command_id", id,
					"args_count", len(args),
					"duration_ms", duration,
				)
			case isUserError(err):
				logger.Warn("Command rejected",
					"command", name,
					"command_id", id,
					"error", err,
					"duration_ms", duration,
				)
			default:
				logger.Error("Command failed",
					"command", name,
					"command_id", id,
					"error", err,
					"duration_ms", duration,
				)
			}

			return out, err
		}
	}
}

// isUserError reports whether err was caused by the user's input rather than the assistant.
func isUserError(err error) bool {
	return command.IsUsageError(err) ||
		errors.Is(err, service.ErrContactNotFound) ||
		errors.Is(err, models.ErrInvalidPhoneFormat) ||
		errors.Is(err, models.ErrInvalidBirthdayFormat)
}
