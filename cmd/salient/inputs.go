package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"salient/internal/config"
	"salient/internal/summary"
	"salient/internal/textsource"
)

// inputFlags are shared by every command that reads an exclusion list and a
// body of text.
type inputFlags struct {
	exclude   string
	noExclude bool
	mode      string
	pattern   string
	take      int
	encoding  string
}

func (f *inputFlags) register(cmd *cobra.Command, withTake bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.exclude, "exclude", "e", "", "Exclusion list file (\"-\" for stdin)")
	flags.BoolVar(&f.noExclude, "no-exclude", false, "Score every word; ignore the exclusion list")
	flags.StringVarP(&f.mode, "mode", "m", "", "Split mode: paragraph-windows, paragraph-unix, sentence, pattern")
	flags.StringVarP(&f.pattern, "pattern", "p", "", "Separator for --mode pattern")
	flags.StringVar(&f.encoding, "encoding", "", "Input encoding: "+encodingNames())
	if withTake {
		flags.IntVarP(&f.take, "take", "n", 0, "Number of top scoring units to keep")
	}
}

type resolvedInputs struct {
	exclusion textsource.Source
	body      textsource.Source
	mode      summary.Mode
	take      int
}

// resolve merges flags over configuration. The optional positional argument
// names the body file.
func (f *inputFlags) resolve(cmd *cobra.Command, cfg *config.Config, args []string) (*resolvedInputs, error) {
	encName := cfg.Inputs.Encoding
	if cmd.Flags().Changed("encoding") {
		encName = f.encoding
	}
	enc, err := textsource.ParseEncoding(encName)
	if err != nil {
		return nil, err
	}

	modeName := cfg.Summary.Mode
	pattern := cfg.Summary.Pattern
	if cmd.Flags().Changed("mode") {
		modeName = f.mode
	}
	if cmd.Flags().Changed("pattern") {
		pattern = f.pattern
		if !cmd.Flags().Changed("mode") {
			modeName = summary.NamePattern
		}
	}
	mode, err := summary.ParseMode(modeName, pattern)
	if err != nil {
		return nil, err
	}

	take := cfg.Summary.Take
	if cmd.Flags().Lookup("take") != nil && cmd.Flags().Changed("take") {
		if f.take < 0 {
			return nil, fmt.Errorf("--take must be >= 0, got %d", f.take)
		}
		take = f.take
	}

	textPath := cfg.Inputs.TextPath
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		textPath, err = config.ExpandPath(args[0])
		if err != nil {
			return nil, fmt.Errorf("resolve text path: %w", err)
		}
	}
	excludePath := cfg.Inputs.ExcludePath
	if cmd.Flags().Changed("exclude") {
		excludePath, err = config.ExpandPath(f.exclude)
		if err != nil {
			return nil, fmt.Errorf("resolve exclude path: %w", err)
		}
	}
	if excludePath == textsource.StdinPath && textPath == textsource.StdinPath {
		return nil, fmt.Errorf("exclusion list and text cannot both read stdin")
	}

	in := &resolvedInputs{
		body: textsource.File(textPath, enc).WithStdin(cmd.InOrStdin()),
		mode: mode,
		take: take,
	}
	if f.noExclude {
		in.exclusion = textsource.Text("none", "")
	} else {
		in.exclusion = textsource.File(excludePath, enc).WithStdin(cmd.InOrStdin())
	}
	return in, nil
}

func encodingNames() string {
	encs := textsource.Encodings()
	names := make([]string, len(encs))
	for i, enc := range encs {
		names[i] = string(enc)
	}
	return strings.Join(names, ", ")
}
