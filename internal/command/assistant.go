package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmynk/addressbook/internal/models"
	"github.com/mmynk/addressbook/internal/service"
)

// NewAssistant creates a Dispatcher with every assistant command bound to svc.
// writeStats renders the session metrics for the stats command.
func NewAssistant(svc *service.AddressBookService, writeStats func(io.Writer) error, middleware ...Middleware) *Dispatcher {
	d := NewDispatcher(middleware...)
	d.errorText = assistantErrorText

	a := &assistant{svc: svc, writeStats: writeStats, dispatcher: d}
	d.Register(
		Command{Name: "hello", Args: 0, Usage: "hello", Run: a.hello},
		Command{Name: "add", Args: 2, Usage: "add [name] [phone]", Run: a.addContact},
		Command{Name: "change", Args: 2, Usage: "change [name] [phone]", Run: a.changeContact},
		Command{Name: "phone", Args: 1, Usage: "phone [name]", Run: a.showPhone},
		Command{Name: "all", Args: 0, Usage: "all", Run: a.showAll},
		Command{Name: "add-birthday", Args: 2, Usage: "add-birthday [name] [birthday]", Run: a.addBirthday},
		Command{Name: "show-birthday", Args: 1, Usage: "show-birthday [name]", Run: a.showBirthday},
		Command{Name: "birthdays", Args: 0, Usage: "birthdays", Run: a.birthdays},
		Command{Name: "delete", Args: 1, Usage: "delete [name]", Run: a.deleteContact},
		Command{Name: "remove-phone", Args: 2, Usage: "remove-phone [name] [phone]", Run: a.removePhone},
		Command{Name: "stats", Args: 0, Usage: "stats", Run: a.stats},
		Command{Name: "help", Args: AnyArgs, Usage: "help", Run: a.help},
		Command{Name: "exit", Args: AnyArgs, Usage: "exit", Run: quit},
		Command{Name: "close", Args: AnyArgs, Usage: "close", Run: quit},
	)
	return d
}

// assistantErrorText maps lookup misses to an info reply and everything else to an error reply.
func assistantErrorText(err error) (string, string) {
	switch {
	case errors.Is(err, service.ErrContactNotFound):
		return TagInfo, "Contact not found."
	case errors.Is(err, models.ErrInvalidPhoneFormat):
		return TagError, "Invalid phone number format. Must be 10 digits."
	case errors.Is(err, models.ErrInvalidBirthdayFormat):
		return TagError, "Invalid birthday format. Must be DD.MM.YYYY."
	default:
		return TagError, err.Error()
	}
}

type assistant struct {
	svc        *service.AddressBookService
	writeStats func(io.Writer) error
	dispatcher *Dispatcher
}

func (a *assistant) hello(context.Context, []string) (string, error) {
	return Reply(TagPrompt, "How can I help you?"), nil
}

func (a *assistant) addContact(_ context.Context, args []string) (string, error) {
	added, err := a.svc.AddContact(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !added {
		return Reply(TagInfo, "Phone number already exists."), nil
	}
	return Reply(TagOK, "Contact added."), nil
}

func (a *assistant) changeContact(_ context.Context, args []string) (string, error) {
	changed, err := a.svc.ChangePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !changed {
		return Reply(TagInfo, "This user does not have a phone number"), nil
	}
	return Reply(TagOK, "Contact updated."), nil
}

func (a *assistant) showPhone(_ context.Context, args []string) (string, error) {
	phone, ok, err := a.svc.Phone(args[0])
	if err != nil {
		return "", err
	}
	if !ok {
		return Reply(TagInfo, "This user does not have a phone number"), nil
	}
	return Reply(TagOK, fmt.Sprintf("%-6s %s", "Phone:", phone)), nil
}

func (a *assistant) showAll(context.Context, []string) (string, error) {
	records := a.svc.Contacts()
	if len(records) == 0 {
		return Reply(TagInfo, "No contacts."), nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = Reply(TagOK, "- "+r.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (a *assistant) addBirthday(_ context.Context, args []string) (string, error) {
	set, err := a.svc.AddBirthday(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !set {
		return Reply(TagInfo, "Birthday is already set."), nil
	}
	return Reply(TagOK, "Birthday added."), nil
}

func (a *assistant) showBirthday(_ context.Context, args []string) (string, error) {
	birthday, ok, err := a.svc.Birthday(args[0])
	if err != nil {
		return "", err
	}
	if !ok {
		return Reply(TagInfo, "This user has no record of their birthday"), nil
	}
	return Reply(TagOK, fmt.Sprintf("%-9s %s", "Birthday:", birthday)), nil
}

func (a *assistant) birthdays(context.Context, []string) (string, error) {
	report := a.svc.BirthdayReport()
	if report == "" {
		return Reply(TagInfo, "No birthdays next week."), nil
	}
	return report, nil
}

func (a *assistant) deleteContact(_ context.Context, args []string) (string, error) {
	if err := a.svc.DeleteContact(args[0]); err != nil {
		return "", err
	}
	return Reply(TagOK, "Contact deleted."), nil
}

func (a *assistant) removePhone(_ context.Context, args []string) (string, error) {
	removed, err := a.svc.RemovePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !removed {
		return Reply(TagInfo, "Phone number not found."), nil
	}
	return Reply(TagOK, "Phone number removed."), nil
}

func (a *assistant) stats(context.Context, []string) (string, error) {
	if a.writeStats == nil {
		return Reply(TagInfo, "No statistics available."), nil
	}
	var b strings.Builder
	if err := a.writeStats(&b); err != nil {
		return "", fmt.Errorf("failed to write statistics: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (a *assistant) help(context.Context, []string) (string, error) {
	return Reply(TagInfo, "You can use the following commands: "+strings.Join(a.dispatcher.Names(), ", ")), nil
}

func quit(context.Context, []string) (string, error) {
	return fmt.Sprintf("%-8s %s", "\n"+TagPrompt, "Good bye!"), ErrQuit
}
