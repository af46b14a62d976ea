package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/surgechecklist/internal/cards"
	"github.com/youruser/surgechecklist/internal/checklist"
	"github.com/youruser/surgechecklist/internal/config"
	"github.com/youruser/surgechecklist/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	file  string
	debug bool
	cfg   config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "checklist",
		Short:        "Track owned cards and their estimated value",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.file == "" {
				opts.file = cfg.DataFile
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "data file (default $CHECKLIST_DATA_FILE or surge_checklist.json)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log saves to stderr")

	cmd.AddCommand(
		listCmd(opts),
		statsCmd(opts),
		ownCmd(opts),
		addCardCmd(opts),
		addSetCmd(opts),
		exportCmd(opts),
		badgeCmd(opts),
		serveCmd(opts),
	)
	return cmd
}

func (o *options) open(stderr io.Writer) (*checklist.Service, error) {
	log := logger.Discard()
	if o.debug || o.cfg.Debug {
		log = logger.New(stderr, true)
	}
	return checklist.Open(cards.NewStore(o.file), log)
}
