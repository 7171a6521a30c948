package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"BinViewer/internal/cli/bootstrap"
	"BinViewer/internal/cli/viewer"
	"BinViewer/internal/config"

	"golang.org/x/term"
)

type shellCmd struct{}

func (shellCmd) Name() string { return "shell" }
func (shellCmd) Description() string {
	return "Интерактивный просмотр: open/decrypt/cancel/close/download"
}
func (shellCmd) Usage() string { return "shell" }

func (shellCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	files, err := bootstrap.LoadListing(ctx, cfg)
	if err != nil {
		return err
	}

	v := bootstrap.NewViewer(cfg, Logger)
	s := viewer.NewSession()
	defer v.Close(s)
	acts := viewer.NewActions(v, files, bootstrap.NewSink(cfg), Out)

	sc := bufio.NewScanner(In)
	for {
		fmt.Fprint(Out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(Out)
			return sc.Err()
		}
		name, rest, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		name = strings.ToLower(name)

		switch name {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintf(Out, "actions: %s, list, exit\n", strings.Join(acts.Names(), ", "))
			continue
		case "list":
			printListing(files)
			continue
		}

		var actArgs []string
		if rest = strings.TrimLeft(rest, " "); rest != "" {
			actArgs = []string{rest}
		}
		if (name == "decrypt" || name == "enter") && actArgs == nil {
			pw, err := shellPassword(sc)
			if err != nil {
				return err
			}
			actArgs = []string{pw}
		}

		if err := acts.Dispatch(ctx, s, name, actArgs); err != nil {
			reportShellError(s, err)
		}
	}
}

// shellPassword читает пароль без эха в терминале, иначе следующей строкой ввода.
func shellPassword(sc *bufio.Scanner) (string, error) {
	if fd, ok := stdinTerminal(); ok {
		fmt.Fprint(Out, "Password: ")
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(Out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}
	fmt.Fprint(Out, "Password: ")
	if !sc.Scan() {
		return "", nil
	}
	return sc.Text(), nil
}

// reportShellError печатает ошибку; сессия остаётся рабочей.
func reportShellError(s *viewer.Session, err error) {
	if s.Error != "" && (errors.Is(err, viewer.ErrDecryptFailed) || errors.Is(err, viewer.ErrEmptyPassword)) {
		fmt.Fprintf(Out, "error: %s\n", s.Error)
		Logger.Debugw("shell action failed", "error", err)
		return
	}
	fmt.Fprintf(Out, "error: %v\n", err)
}

func init() { RegisterCmd(shellCmd{}) }
