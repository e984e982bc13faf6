package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/hasty/foundation/core/log"
	"github.com/msto63/hasty/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch PATH",
	Short: "Re-check sources whenever they change",
	Long: `Checks every source under PATH once, then again each time a file is
written. PATH may be a single file or a directory; watch.recursive and
watch.extensions in the configuration select the files.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	check := func(path string) {
		if err := checkFile(out, errOut, path, true); err != nil {
			logger.Debug("Source has errors", mdwlog.Fields{"file": path})
		}
	}

	w := watcher.New(args[0], check, watcher.Options{
		Extensions: cfg.Watch.Extensions,
		Debounce:   cfg.Watch.Debounce.Duration,
		Recursive:  cfg.Watch.Recursive,
		Logger:     logger,
	})

	files, err := w.Files()
	if err != nil {
		return err
	}
	for _, path := range files {
		check(path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}
