package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/cfgextract/internal/translate"
)

type translateOptions struct {
	inPlace bool
	phrases string
}

func newTranslateCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts translateOptions

	cmd := &cobra.Command{
		Use:   "translate [flags] <input.cfg> [output.cfg]",
		Short: "Translate the text fields of a contract .cfg file",
		Long: `Translate the title, description, notes, synopsis, completedMessage and
agent fields of a contract .cfg file from English to Brazilian Portuguese,
keeping every other line as it is. Agent values that look like company names
are left untranslated.

The result goes to output.cfg when given, back to the input with --in-place,
or to stdout otherwise. --phrases merges a YAML table of the form
"phrases: {English: translation}" over the built-in one.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return translateFile(args[0], output, opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.inPlace, "in-place", "i", false, "modify the input file in place")
	f.StringVar(&opts.phrases, "phrases", "", "YAML phrase table merged over the built-in one")
	return cmd
}

func translateFile(input, output string, opts translateOptions, stdout, stderr io.Writer) error {
	if opts.inPlace && output != "" {
		return errors.New("--in-place and an output file are mutually exclusive")
	}

	var extra map[string]string
	if opts.phrases != "" {
		var err error
		if extra, err = translate.LoadPhrases(opts.phrases); err != nil {
			return fmt.Errorf("loading phrases: %w", err)
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	result := translate.New(extra).File(string(data))

	switch {
	case opts.inPlace:
		output = input
	case output == "":
		_, _ = fmt.Fprint(stdout, result)
		return nil
	}

	if err := os.WriteFile(output, []byte(result), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	_, _ = fmt.Fprintf(stderr, "translated %s to %s\n", input, output)
	return nil
}
