package viewer

import (
	"BinViewer/internal/cli/model"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	// ErrUnknownAction is returned by Dispatch for names missing from the table.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownFile is returned by "open" for paths missing from the listing.
	ErrUnknownFile = errors.New("file is not in the listing")
	// ErrActionUsage is returned when an action gets wrong arguments.
	ErrActionUsage = errors.New("wrong arguments")
)

// ActionFunc — обработчик действия над сессией.
type ActionFunc func(ctx context.Context, s *Session, args []string) error

// Listing ищет файл в списке по пути.
type Listing interface {
	Lookup(path string) (model.FileEntry, bool)
}

// Files — список файлов в памяти.
type Files []model.FileEntry

// Lookup ищет точное совпадение пути; ведущий "/" не учитывается.
func (fs Files) Lookup(path string) (model.FileEntry, bool) {
	want := strings.TrimLeft(path, "/")
	for _, f := range fs {
		if strings.TrimLeft(f.Path, "/") == want {
			return f, true
		}
	}
	return model.FileEntry{}, false
}

// Actions — таблица действий: имя → обработчик.
type Actions map[string]ActionFunc

// NewActions строит таблицу действий просмотрщика.
// Результаты (расшифрованный файл, путь сохранения) пишутся в out.
func NewActions(v *Viewer, listing Listing, sink Sink, out io.Writer) Actions {
	decrypt := func(ctx context.Context, s *Session, args []string) error {
		c, err := v.Decrypt(ctx, s, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "decrypted: %s (%d bytes)\n", c.FileName, c.Size)
		return nil
	}

	return Actions{
		"open": func(_ context.Context, s *Session, args []string) error {
			if len(args) != 1 {
				return ErrActionUsage
			}
			entry, ok := listing.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%s: %w", args[0], ErrUnknownFile)
			}
			v.Open(s, entry)
			switch {
			case s.PasswordForm:
				fmt.Fprintln(out, "password required")
			case s.Content != nil:
				fmt.Fprintf(out, "%s: %s\n", s.Content.Kind, s.Content.URL)
			}
			return nil
		},
		"decrypt": decrypt,
		"enter":   decrypt,
		"cancel": func(_ context.Context, s *Session, _ []string) error {
			v.Cancel(s)
			return nil
		},
		"close": func(_ context.Context, s *Session, _ []string) error {
			v.Close(s)
			return nil
		},
		"download": func(_ context.Context, s *Session, _ []string) error {
			p, err := v.Download(s, sink)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "saved: %s\n", p)
			return nil
		},
	}
}

// Names возвращает имена действий по алфавиту.
func (a Actions) Names() []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Dispatch выполняет действие name.
func (a Actions) Dispatch(ctx context.Context, s *Session, name string, args []string) error {
	fn, ok := a[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownAction)
	}
	return fn(ctx, s, args)
}
