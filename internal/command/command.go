// Package command parses assistant input lines and dispatches them to handlers.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Status tags prefixed to every reply.
const (
	TagOK     = "[ok]"
	TagInfo   = "[info]"
	TagError  = "[error]"
	TagPrompt = "[*]"
)

// AnyArgs disables the argument count check of a Command.
const AnyArgs = -1

// ErrQuit is returned by a handler to end the session.
var ErrQuit = errors.New("quit")

// HandlerFunc runs a command with its arguments and returns the reply.
type HandlerFunc func(ctx context.Context, args []string) (string, error)

// Middleware wraps the handler of the named command.
type Middleware func(name string, next HandlerFunc) HandlerFunc

// Command describes one assistant command.
type Command struct {
	Name  string
	Usage string
	Args  int
	Run   HandlerFunc
}

// Dispatcher routes input lines to registered commands.
type Dispatcher struct {
	commands   map[string]HandlerFunc
	usages     map[string]Command
	names      []string
	middleware []Middleware
	errorText  func(error) (tag, msg string)
}

// NewDispatcher creates a Dispatcher that wraps every handler with middleware,
// the first one outermost.
func NewDispatcher(middleware ...Middleware) *Dispatcher {
	return &Dispatcher{
		commands:   make(map[string]HandlerFunc),
		usages:     make(map[string]Command),
		middleware: middleware,
		errorText:  func(err error) (string, string) { return TagError, err.Error() },
	}
}

// Register adds commands. A command registered twice keeps the last handler.
func (d *Dispatcher) Register(cmds ...Command) {
	for _, cmd := range cmds {
		name := strings.ToLower(cmd.Name)
		h := withArgCount(cmd)
		for i := len(d.middleware) - 1; i >= 0; i-- {
			h = d.middleware[i](name, h)
		}
		if _, exists := d.commands[name]; !exists {
			d.names = append(d.names, name)
		}
		d.commands[name] = h
		d.usages[name] = cmd
	}
}

// Names returns the registered command names in registration order.
func (d *Dispatcher) Names() []string {
	return append([]string(nil), d.names...)
}

// Dispatch runs the command on line and returns its rendered reply.
// Blank lines produce an empty reply. The error is ErrQuit or nil;
// handler failures are rendered into the reply instead.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	h, ok := d.commands[name]
	if !ok {
		return Reply(TagError, "Invalid command."), nil
	}

	out, err := h(ctx, args)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, ErrQuit):
		return out, ErrQuit
	case errors.Is(err, errUsage):
		return Reply(TagError, fmt.Sprintf("%-34s %s", "Invalid command format. Please use:", d.usages[name].Usage)), nil
	default:
		tag, msg := d.errorText(err)
		return Reply(tag, msg), nil
	}
}

// Reply formats a reply line as the tag padded to 7 columns, then msg.
func Reply(tag, msg string) string {
	return fmt.Sprintf("%-7s %s", tag, msg)
}

var errUsage = errors.New("invalid command format")

func withArgCount(cmd Command) HandlerFunc {
	if cmd.Args == AnyArgs {
		return cmd.Run
	}
	return func(ctx context.Context, args []string) (string, error) {
		if len(args) != cmd.Args {
			return "", fmt.Errorf("%w: %s expects %d arguments, got %d", errUsage, cmd.Name, cmd.Args, len(args))
		}
		return cmd.Run(ctx, args)
	}
}

// IsUsageError reports whether err comes from an argument count mismatch.
func IsUsageError(err error) bool {
	return errors.Is(err, errUsage)
}
