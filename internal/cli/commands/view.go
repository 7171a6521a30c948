package commands

import (
	"context"
	"fmt"

	"BinViewer/internal/cli/api"
	"BinViewer/internal/cli/bootstrap"
	"BinViewer/internal/cli/model"
	"BinViewer/internal/cli/viewer"
	"BinViewer/internal/config"
)

type viewCmd struct{}

func (viewCmd) Name() string { return "view" }
func (viewCmd) Description() string {
	return "Открыть файл; зашифрованный — расшифровать и сохранить в --out"
}
func (viewCmd) Usage() string { return "view <path> [password]" }

func (viewCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	files, err := bootstrap.LoadListing(ctx, cfg)
	if err != nil {
		return err
	}
	entry, ok := files.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%s: %w", args[0], viewer.ErrUnknownFile)
	}

	v := bootstrap.NewViewer(cfg, Logger)
	s := viewer.NewSession()
	v.Open(s, entry)
	defer v.Close(s)

	switch entry.Type {
	case model.TypeEncrypted:
	case model.TypeImage:
		fmt.Fprintf(Out, "image: %s\n", api.ResolveURL(cfg.ServerURL, entry.Path))
		return nil
	default:
		fmt.Fprintf(Out, "no preview: %s\n", api.ResolveURL(cfg.ServerURL, entry.Path))
		return nil
	}

	var password string
	if len(args) == 2 {
		password = args[1]
	} else if password, err = ReadPassword("Password: "); err != nil {
		return err
	}

	c, err := v.Decrypt(ctx, s, password)
	if err != nil {
		return err
	}
	p, err := v.Download(s, bootstrap.NewSink(cfg))
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "decrypted: %s (%d bytes)\nsaved: %s\n", c.FileName, c.Size, p)
	return nil
}

func init() { RegisterCmd(viewCmd{}) }
