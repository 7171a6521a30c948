package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"BinViewer/internal/config"
	"BinViewer/internal/decryptor"
)

type encryptCmd struct{}

func (encryptCmd) Name() string { return "encrypt" }
func (encryptCmd) Description() string {
	return "Зашифровать файл в формат просмотрщика и записать hash/<name>.hash"
}
func (encryptCmd) Usage() string { return "encrypt <input> <output.bin> [password]" }

func (encryptCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	input, output := args[0], args[1]

	var password string
	var err error
	if len(args) == 3 {
		password = args[2]
	} else if password, err = ReadPassword("Password: "); err != nil {
		return err
	}

	plain, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	blob, err := decryptor.Encrypt(plain, password, filepath.Ext(input))
	if err != nil {
		return err
	}

	outDir := filepath.Dir(output)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(output, blob, 0o644); err != nil {
		return err
	}

	sum := decryptor.Checksum(blob)
	hashPath := decryptor.SidecarPath(output)
	if err := os.MkdirAll(filepath.Dir(hashPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(hashPath, []byte(decryptor.FormatSidecar(sum)), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(Out, "encrypted: %s (%d bytes)\nsha256: %s\nhash file: %s\n", output, len(blob), sum, hashPath)
	return nil
}

func init() { RegisterCmd(encryptCmd{}) }
