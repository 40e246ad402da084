// Command i8080 loads a raw 8080 binary image and either runs it to HALT
// or steps it in an interactive debugger.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"i8080/cpu"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i8080",
		Short: "Intel 8080 interpreter",
	}

	var rom string
	var loadAddr uint16
	var trace bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a binary image and run it to HALT",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(rom)
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}

			c := cpu.New()
			if err := c.Load(image, loadAddr); err != nil {
				return fmt.Errorf("loading image: %w", err)
			}
			c.PC = loadAddr

			err = c.Run(context.Background(), func(err error) {
				if trace {
					fmt.Fprintln(os.Stderr, err)
				}
			})
			if err != nil {
				return err
			}

			fmt.Printf("Final state: %+v\n", c.Snapshot())
			return nil
		},
	}
	runCmd.Flags().StringVar(&rom, "rom", "", "path to the binary image (required)")
	runCmd.Flags().Uint16Var(&loadAddr, "load-addr", 0, "address to load the image at")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print unimplemented-opcode diagnostics to stderr")
	_ = runCmd.MarkFlagRequired("rom")

	debugCmd := &cobra.Command{
		Use:   "debug",
		Short: "Load a binary image and step it in an interactive TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(rom)
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}
			c := cpu.New()
			return c.Debug(image, loadAddr)
		},
	}
	debugCmd.Flags().StringVar(&rom, "rom", "", "path to the binary image (required)")
	debugCmd.Flags().Uint16Var(&loadAddr, "load-addr", 0, "address to load the image at")
	_ = debugCmd.MarkFlagRequired("rom")

	root.AddCommand(runCmd, debugCmd)
	return root
}
