// Command disasm dumps the mnemonic for every byte in a cartridge's PRG ROM,
// one line per address, in the style of a static objdump.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claude/nescore/internal/cartridge"
	"github.com/claude/nescore/internal/cpu"
)

var (
	numInstructions int
	offset          uint16
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm <rom.nes>",
		Short: "Dump the mnemonic for each PRG ROM byte of an iNES file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDisasm,
	}

	cmd.Flags().IntVarP(&numInstructions, "num", "n", 0, "number of bytes to dump (0 means through $FFFF)")
	cmd.Flags().Uint16VarP(&offset, "offset", "o", 0, "offset into the PRG ROM address space ($8000-$FFFF), relative to $8000")

	return cmd
}

func runDisasm(cmd *cobra.Command, args []string) error {
	cart, err := cartridge.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("load rom: %w", err)
	}

	names := cpu.New(nil)

	start := uint32(0x8000) + uint32(offset)
	count := numInstructions
	if count <= 0 {
		count = 0x10000 - int(start)
	}

	for i := 0; i < count; i++ {
		addr := start + uint32(i)
		if addr > 0xFFFF {
			break
		}
		opcode := cart.ReadPRG(uint16(addr))
		name := names.OpcodeName(opcode)
		if name == "???" {
			fmt.Printf("0x%04x:(0x%02x)INVALID - Value:0x%02x Signed:%d\n", addr, opcode, opcode, int8(opcode))
			continue
		}
		fmt.Printf("0x%04x:(0x%02x)%s\n", addr, opcode, name)
	}

	return nil
}
