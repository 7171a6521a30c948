package commands

import (
	"context"
	"fmt"

	"BinViewer/internal/cli/bootstrap"
	"BinViewer/internal/cli/model"
	"BinViewer/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать список файлов на сервере" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	files, err := bootstrap.LoadListing(ctx, cfg)
	if err != nil {
		return err
	}
	printListing(files)
	return nil
}

func printListing(files []model.FileEntry) {
	if len(files) == 0 {
		fmt.Fprintln(Out, "No files")
		return
	}
	for _, f := range files {
		typ := f.Type
		if typ == "" {
			typ = model.TypeOther
		}
		fmt.Fprintf(Out, "- %s  type=%s  size=%d\n", f.Path, typ, f.Size)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(files))
}

func init() { RegisterCmd(listCmd{}) }
