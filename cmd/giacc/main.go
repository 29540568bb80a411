// giacc-go: GIA asset Classic/Beyond Mode conversion tool
// Copyright (C) 2026  Da Spud Lord
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DaSpudLord/giacc-go/pkg/gia"
)

var rootCmd = &cobra.Command{
	Use:   "giacc",
	Short: "Convert GIA asset files between Classic and Beyond Mode",
	Long: `giacc converts GIA asset files between Classic Mode and Beyond Mode
so an editor locked to one mode will accept files authored in the
other. It can also report which mode a file is currently in.`,
}

var toClassicCmd = &cobra.Command{
	Use:   "to-classic <input> <output>",
	Short: "Convert a GIA file to Classic Mode",
	Long: `Converts the GIA file at <input> to Classic Mode and writes the
converted file to <output>. No changes are made if the input file is
already configured for Classic Mode. If the output file already
exists, it is overwritten without warning. If <output> is a single
asterisk ("*"), the converted file is written back to the input file,
overwriting the prior contents.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return convert(args[0], args[1], gia.ModeClassic)
	},
}

var toBeyondCmd = &cobra.Command{
	Use:   "to-beyond <input> <output>",
	Short: "Convert a GIA file to Beyond Mode",
	Long: `Converts the GIA file at <input> to Beyond Mode and writes the
converted file to <output>. No changes are made if the input file is
already configured for Beyond Mode. If the output file already
exists, it is overwritten without warning. If <output> is a single
asterisk ("*"), the converted file is written back to the input file,
overwriting the prior contents.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return convert(args[0], args[1], gia.ModeBeyond)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <input>",
	Short: "Report whether a GIA file is in Classic or Beyond Mode",
	Long: `Tests whether <input> denotes a Classic Mode asset file or a Beyond
Mode asset file. No conversion is performed and the file is not
modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		mode, err := gia.Detect(b)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		fmt.Println(mode)

		return nil
	},
}

// convert rewrites the file at in for the target mode and writes the
// result to out. An out of "*" means overwrite in.
func convert(in, out string, to gia.Mode) error {
	if out == "*" {
		out = in
	}

	b, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	a, err := gia.Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if a.Mode() == to {
		fmt.Printf("This asset is already configured for %s Mode.\n", to)
		fmt.Println("No changes will be made.")

		if out == in {
			return nil
		}

		return os.WriteFile(out, b, 0644)
	}

	fmt.Printf("Converting asset to %s Mode...\n", to)

	conv, err := a.Convert(to)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, conv, 0644); err != nil {
		return err
	}

	fmt.Println("Conversion completed.")

	return nil
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(toClassicCmd, toBeyondCmd, queryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
