package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dgrm/shape"
)

type options struct {
	configPath string
	typeCode   int
	title      string
	export     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "dgrm",
		Short: "Diagram shape playground",
		Long: `dgrm sizes diagram shapes around their labels.

Run without --export to edit a shape interactively. With --export the shape
is written to a .png, .svg or .json file and dgrm exits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cleanup, err := setup(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ws.create(shape.Record{
				Type:     opts.typeCode,
				Position: &shape.Point{},
				Title:    opts.title,
			}); err != nil {
				return err
			}
			if opts.export != "" {
				return ws.export(opts.export)
			}

			p := tea.NewProgram(newModel(ws), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath(), "config file")
	cmd.Flags().IntVarP(&opts.typeCode, "type", "t", shape.TypeLabelRect, "shape type code")
	cmd.Flags().StringVar(&opts.title, "title", defaultTitle, "shape label")
	cmd.Flags().StringVarP(&opts.export, "export", "o", "", "write the shape to a .png, .svg or .json file and exit")

	cmd.AddCommand(newTypesCmd(opts), newRenderCmd(opts))
	return cmd
}

func newTypesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the shape type codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cleanup, err := setup(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tVARIANT\tLABEL MODE")
			for _, code := range ws.registry.Codes() {
				g, _ := ws.registry.Geometry(code)
				fmt.Fprintf(w, "%d\t%v\t%t\n", code, g.Variant(), g.LabelMode())
			}
			return w.Flush()
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <record.json>",
		Short: "Render a persisted shape record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cleanup, err := setup(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := ws.load(data); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return ws.export(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "shape.svg", "output .png, .svg or .json file")
	return cmd
}

func setup(opts *options) (*workspace, func(), error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	ws, err := newWorkspace(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	logger.Debug("config loaded", zap.String("path", opts.configPath))
	return ws, func() { _ = logger.Sync() }, nil
}
