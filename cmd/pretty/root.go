package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/value"
)

type rootOpts struct {
	format    string
	width     int
	ribbon    float64
	styleFile string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var opts rootOpts
	cmd := &cobra.Command{
		Use:   "pretty [file ...]",
		Short: "Print JSON or YAML documents in structural syntax",
		Long: `pretty reads JSON or YAML documents from files, or from standard input when
no file or "-" is given, and prints each one as a structural value laid out
to fit the line width.`,
		Example: `  pretty config.yaml
  kubectl get pod -o json | pretty --width 100`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: json or yaml (default from the file extension, else json)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", pretty.DefaultStyle.Width, "line width in columns")
	cmd.Flags().Float64Var(&opts.ribbon, "ribbon", pretty.DefaultStyle.Ribbon, "fraction of the line width available to text, in (0, 1]")
	cmd.Flags().StringVar(&opts.styleFile, "style", "", "JSON or YAML file holding width and ribbon")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log each decoded document")
	return cmd
}

func run(cmd *cobra.Command, opts rootOpts, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	style, err := resolveStyle(cmd, opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"width": style.Width, "ribbon": style.Ribbon}).Debug("using style")

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		format, err := inputFormat(opts.format, name)
		if err != nil {
			return err
		}
		docs, err := decodeInput(cmd.InOrStdin(), name, format)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"input": name, "format": format, "documents": len(docs)}).Debug("decoded")
		if err := pretty.Write(cmd.OutOrStdout(), style, docs...); err != nil {
			return err
		}
	}
	return nil
}

// resolveStyle starts from the style file, if any, and applies explicitly
// set flags on top.
func resolveStyle(cmd *cobra.Command, opts rootOpts) (pretty.Style, error) {
	style := pretty.DefaultStyle
	if opts.styleFile != "" {
		s, err := pretty.LoadStyle(opts.styleFile)
		if err != nil {
			return pretty.Style{}, fmt.Errorf("load style: %w", err)
		}
		style = s
	}
	if opts.styleFile == "" || cmd.Flags().Changed("width") {
		style.Width = opts.width
	}
	if opts.styleFile == "" || cmd.Flags().Changed("ribbon") {
		style.Ribbon = opts.ribbon
	}
	if err := style.Validate(); err != nil {
		return pretty.Style{}, err
	}
	return style, nil
}

func inputFormat(flag, name string) (pretty.Format, error) {
	if flag != "" {
		return pretty.ParseFormat(flag)
	}
	if name != "-" {
		if f, err := pretty.FormatOf(name); err == nil {
			return f, nil
		}
	}
	return pretty.JSON, nil
}

func decodeInput(stdin io.Reader, name string, format pretty.Format) ([]value.Value, error) {
	if name == "-" {
		docs, err := value.Decode(stdin, format)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return docs, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	docs, err := value.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return docs, nil
}
