package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadPassword спрашивает пароль. В терминале ввод не отображается,
// иначе читается строка из In. Переназначается в тестах.
var ReadPassword = readPassword

// stdinTerminal возвращает дескриптор In, если это терминал.
func stdinTerminal() (int, bool) {
	f, ok := In.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(Out, prompt)
	if fd, ok := stdinTerminal(); ok {
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(Out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}
	line, err := bufio.NewReader(In).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
