package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/youruser/surgechecklist/internal/api"
	"github.com/youruser/surgechecklist/internal/cards"
	"github.com/youruser/surgechecklist/internal/export"
	imagepkg "github.com/youruser/surgechecklist/internal/image"
	"github.com/youruser/surgechecklist/internal/logger"
)

func listCmd(opts *options) *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards, optionally only some types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c := svc.Snapshot()
			if len(types) == 0 {
				types = c.Types()
			}
			out := cmd.OutOrStdout()
			for i, card := range cards.FilterByType(c, types) {
				mark := " "
				if card.Owned {
					mark = "x"
				}
				fmt.Fprintf(out, "%3d [%s] %s (%s, %s) - %s\n",
					i, mark, card.Name, card.Set, card.Type, cards.FormatValue(card.Value.Decimal, opts.cfg.Currency))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&types, "type", "t", nil, "card type to show (repeatable; default all)")
	return cmd
}

func statsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show owned count and estimated value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := svc.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Owned: %d/%d\nEstimated value: %s\n",
				s.Owned, s.Total, cards.FormatValue(s.OwnedValue, opts.cfg.Currency))
			return nil
		},
	}
}

func ownCmd(opts *options) *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "own INDEX",
		Short: "Mark a card as owned (or not, with --unset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid card index %q", args[0])
			}
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := svc.ToggleOwned(index, !unset); err != nil {
				return fmt.Errorf("card %d: %w", index, err)
			}
			card := svc.Snapshot().Cards[index]
			fmt.Fprintf(cmd.OutOrStdout(), "%s owned=%t\n", card.Name, card.Owned)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "unset", false, "mark as not owned")
	return cmd
}

func addCardCmd(opts *options) *cobra.Command {
	var (
		in    cards.NewCard
		value string
	)

	cmd := &cobra.Command{
		Use:   "add-card",
		Short: "Append a new card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("invalid value %q", value)
			}
			if v.IsNegative() {
				return errors.New("value must not be negative")
			}
			in.Value = cards.Price{Decimal: v}

			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			added, err := svc.AddCard(in)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(cmd.OutOrStdout(), "(nothing added: name is empty)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added card %d: %s\n", len(svc.Snapshot().Cards)-1, in.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "card name")
	f.StringVar(&in.Set, "set", "", "existing set")
	f.StringVar(&in.NewSet, "new-set", "", "new set name (registered if unseen)")
	f.StringVar(&in.Type, "type", cards.TypeCharacter, "card type")
	f.StringVar(&in.Image, "image", "", "image URL")
	f.StringVar(&value, "value", "0", "estimated value")
	return cmd
}

func addSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add-set NAME",
		Short: "Register a new set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			added, err := svc.AddSet(args[0])
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "(set %q already exists)\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added set %s\n", args[0])
			return nil
		},
	}
}

func exportCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the collection as text, json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			body, _, err := export.Render(svc.Snapshot(), format, opts.cfg.Currency)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", export.FormatText, "text, json or yaml")
	return cmd
}

func badgeCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Write the progress badge PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := imagepkg.WriteBadgePNG(f, svc.Stats(), opts.cfg.PublicURL); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "badge.png", "output file")
	return cmd
}

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the checklist page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(cmd.ErrOrStderr(), opts.debug || opts.cfg.Debug)
			if !opts.debug && !opts.cfg.Debug {
				gin.SetMode(gin.ReleaseMode)
			}
			svc, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			r := api.NewRouter(api.NewHandler(svc, opts.cfg.Currency, opts.cfg.PublicURL), log)
			log.Info("starting server", "url", "http://localhost"+opts.cfg.Addr())
			return r.Run(opts.cfg.Addr())
		},
	}
}
