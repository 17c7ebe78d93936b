package cmd

import (
	"fmt"
	"os"

	"github.com/albertofem/chippuhachi/internal/chip8"
	"github.com/albertofem/chippuhachi/internal/emulator"
	"github.com/albertofem/chippuhachi/internal/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
)

var (
	cyclesPerFrame int
	debugOpcodes   bool
)

// runCmd boots the machine with the given ROM inside a pixelgl window
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippuhachi emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippuhachi,
}

func init() {
	runCmd.Flags().IntVar(&cyclesPerFrame, "cycles-per-frame", 10, "CPU instructions executed per video frame")
	runCmd.Flags().BoolVar(&debugOpcodes, "debug", false, "log every executed opcode")
}

func runChippuhachi(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	// pixelgl needs the main thread, so the whole emulator runs under it.
	pixelgl.Run(func() {
		machine := chip8.New()
		machine.SetDebug(debugOpcodes)

		if err := machine.LoadROMFile(pathToROM); err != nil {
			fmt.Printf("\nerror loading ROM: %v\n", err)
			os.Exit(1)
		}
		machine.Start()

		win, err := pixel.NewWindow(machine.RenderWidth(), machine.RenderHeight())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		emulator.Run(machine, win, cyclesPerFrame)
	})
}
