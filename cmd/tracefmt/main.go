// Command tracefmt rewrites a raw nestest-style CPU trace log into the
// annotated line format internal/cpu.TraceLine produces, so a reference log
// can be diffed directly against this emulator's own trace output.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude/nescore/internal/cpu"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "tracefmt <input.log>",
		Short: "Reformat a nestest-style trace log to the annotated trace line format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			out := io.Writer(os.Stdout)
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return processLog(in, out)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}

// processLog reformats each line of a nestest-style trace into
// "ADDR OP:(OPCODE)MNEMONIC A:.. X:.. Y:.. P:.. SP:.. CYC:..".
func processLog(r io.Reader, w io.Writer) error {
	names := cpu.New(nil)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == ':'
		})
		if len(fields) < 3 {
			continue
		}

		address := fields[0]
		opcodeStr := fields[1]
		opcode64, err := strconv.ParseUint(opcodeStr, 16, 8)
		if err != nil {
			continue
		}
		opcode := uint8(opcode64)

		var a, x, y, p, sp, cyc string
		for i, field := range fields {
			if i+1 >= len(fields) {
				continue
			}
			switch field {
			case "A":
				a = fields[i+1]
			case "X":
				x = fields[i+1]
			case "Y":
				y = fields[i+1]
			case "P":
				p = fields[i+1]
			case "SP":
				sp = fields[i+1]
			case "CYC":
				cyc = fields[i+1]
			}
		}

		op := fmt.Sprintf("OP:(%02X)%s", opcode, names.OpcodeName(opcode))
		if len(op) < 30 {
			op += strings.Repeat(" ", 30-len(op))
		}

		fmt.Fprintf(w, "%s %s A:%s X:%s Y:%s P:%s SP:%s CYC:%s\n", address, op, a, x, y, p, sp, cyc)
	}

	return scanner.Err()
}
