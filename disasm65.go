// This file is part of Disasm65.
//
// Disasm65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Disasm65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Disasm65.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peteri/disasm65/gen"
	"github.com/peteri/disasm65/logger"
	"github.com/peteri/disasm65/project"
	"github.com/peteri/disasm65/regression"
	"github.com/peteri/disasm65/shell"
	"github.com/peteri/disasm65/statsview"
	"github.com/peteri/disasm65/version"
	"github.com/spf13/pflag"
)

const defaultRegressionDB = "regressionDB"

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	flags := pflag.NewFlagSet(version.ApplicationName, pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: disasm65 [flags] [mode] [args]\n\n")
		fmt.Fprintf(os.Stderr, "modes: shell (default), gen, check, regress, version\n\n")
		fmt.Fprint(os.Stderr, flags.FlagUsages())
	}

	echoLog := flags.Bool("log", false, "echo log entries to stderr")
	stats := flags.Bool("statsview", false, "run stats server (requires the statsview build constraint)")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 10
	}

	if *echoLog {
		logger.SetEcho(os.Stderr, true)
	}
	if *stats {
		statsview.Launch(os.Stdout)
	}

	mode := "SHELL"
	rem := flags.Args()
	if len(rem) > 0 {
		switch strings.ToUpper(rem[0]) {
		case "SHELL", "GEN", "CHECK", "REGRESS", "VERSION":
			mode = strings.ToUpper(rem[0])
			rem = rem[1:]
		default:
			// an unrecognised mode is a project file for the shell
		}
	}

	var err error

	switch mode {
	case "SHELL":
		filename := ""
		if len(rem) > 0 {
			filename = rem[0]
		}
		err = shell.Start(filename)

	case "GEN":
		err = genMode(rem)

	case "CHECK":
		err = checkMode(rem)

	case "REGRESS":
		err = regressMode(rem)

	case "VERSION":
		vers, revision, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
		if !release {
			fmt.Printf("  %s\n", revision)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 10
	}

	return 0
}

func genMode(args []string) error {
	flags := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	resume := flags.Bool("resume", false, "emit resume directives at region ends")
	offsets := flags.Bool("offsets", false, "annotate directives with file offsets")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if len(flags.Args()) != 1 {
		return fmt.Errorf("gen mode requires a project file")
	}

	m, err := project.Load(flags.Args()[0])
	if err != nil {
		return err
	}

	return gen.Write(os.Stdout, m, gen.WriteAttr{
		Resume:         *resume,
		OffsetComments: *offsets,
	})
}

func checkMode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check mode requires a project file")
	}

	// a project that loads at all has passed every map invariant, but run
	// the validator anyway: this is the mode bug reports are asked to use
	m, err := project.Load(args[0])
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", args[0], m)
	return nil
}

func regressMode(args []string) error {
	flags := pflag.NewFlagSet("regress", pflag.ContinueOnError)
	dbPath := flags.String("db", defaultRegressionDB, "path to the regression database")

	if err := flags.Parse(args); err != nil {
		return err
	}

	rem := flags.Args()
	sub := "RUN"
	if len(rem) > 0 {
		sub = strings.ToUpper(rem[0])
		rem = rem[1:]
	}

	switch sub {
	case "RUN":
		return regression.RegressRun(os.Stdout, *dbPath)

	case "LIST":
		return regression.RegressList(os.Stdout, *dbPath)

	case "ADD":
		if len(rem) != 1 {
			return fmt.Errorf("regress add requires a project file")
		}
		return regression.RegressAdd(os.Stdout, *dbPath, rem[0])

	case "DELETE":
		if len(rem) != 1 {
			return fmt.Errorf("regress delete requires an entry key")
		}
		key, err := strconv.Atoi(rem[0])
		if err != nil {
			return fmt.Errorf("invalid entry key (%s)", rem[0])
		}
		return regression.RegressDelete(os.Stdout, *dbPath, key)
	}

	return fmt.Errorf("unrecognised regress sub-mode (%s)", sub)
}
