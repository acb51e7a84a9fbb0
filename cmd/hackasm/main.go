// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/hackasm/hack"
)

// outputPath derives the .hack file name from the source file name.
func outputPath(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".hack"
}

func newCommand() *cobra.Command {
	var output string
	var defines []string
	var symbols bool

	cmd := &cobra.Command{
		Use:   "hackasm [flags] source.asm",
		Short: "Assemble Hack assembly into .hack machine code",
		Long: `Hackasm translates a Hack assembly program into binary machine code.

Labels and variables are resolved in two passes, then every instruction
is written to the output as a line of 16 binary digits. By default the
output file is the source file name with its extension replaced by .hack.
`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			// Arguments are valid, so later errors are not usage errors.
			cmd.SilenceUsage = true

			source := args[0]
			if len(output) == 0 {
				output = outputPath(source)
			}

			asm := &hack.Assembler{}
			for _, define := range defines {
				name, expr, ok := strings.Cut(define, "=")
				if !ok {
					return fmt.Errorf("-D %v: expected name=value", define)
				}
				err = asm.Predefine(name, expr)
				if err != nil {
					return
				}
			}

			inf, err := os.Open(source)
			if err != nil {
				return
			}
			defer inf.Close()

			prog, err := asm.Parse(inf)
			if err != nil {
				return fmt.Errorf("%v: %w", source, err)
			}

			if symbols {
				pp.Fprintln(cmd.ErrOrStderr(), prog.Symbols)
			}

			ouf, err := os.Create(output)
			if err != nil {
				return
			}

			_, err = prog.WriteTo(ouf)
			if err != nil {
				ouf.Close()
				return fmt.Errorf("%v: %w", output, err)
			}

			err = ouf.Close()
			if err != nil {
				return
			}

			glog.V(1).Infof("%v: %d instructions assembled to %v", source, len(prog.Instructions), output)

			return
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output .hack file")
	flags.StringArrayVarP(&defines, "define", "D", nil, "predefine a symbol, as name=expression")
	flags.BoolVar(&symbols, "symbols", false, "dump the symbol table to stderr")
	flags.AddGoFlagSet(flag.CommandLine)

	return cmd
}

func main() {
	defer glog.Flush()

	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		glog.Exitf("%v: %v", filepath.Base(os.Args[0]), err)
	}
}
