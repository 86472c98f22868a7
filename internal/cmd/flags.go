// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "DIRSNAP"

// Set on build.
var version = "dev"

type config struct {
	Dir     string
	Base    string
	Output  string
	Workers int
	Verify  bool
	Debug   bool
}

type runFunc func(cmd *cobra.Command, cfg *config) error

func newCommand(name string, cfg IO, run runFunc) *cobra.Command {
	v := viper.New()

	var configFile string

	cmd := &cobra.Command{
		Use:   name + " [flags] DIR",
		Short: "Snapshot a directory into an archive",
		Long: `Snapshot a directory into an archive that can be embedded into a Go
program and loaded into a virtual filesystem at run time.

DIR is resolved relative to the base directory. The base directory defaults
to the nearest directory containing a go.mod file, starting at the working
directory.

Every flag can be set by environment variable with prefix ` + envPrefix + `_
as well, e.g. ` + envPrefix + `_OUTPUT.`,
		Example: "  " + name + " -o assets.cpio assets\n" +
			"  //go:generate go run github.com/aibor/dirsnap/cmd/dirsnap -o assets.cpio assets",
		Version:       buildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.ExactArgs(1)(cmd, args)
			if err != nil {
				return fail(cmd, "args", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := readConfig(v, configFile)
			if err != nil {
				return err
			}

			runCfg := &config{
				Dir:     args[0],
				Base:    v.GetString("base"),
				Output:  v.GetString("output"),
				Workers: v.GetInt("workers"),
				Verify:  v.GetBool("verify"),
				Debug:   v.GetBool("debug"),
			}

			if runCfg.Workers < 1 {
				return fail(cmd, "workers", ErrWorkersOutOfRange)
			}

			return run(cmd, runCfg)
		},
	}

	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fail(cmd, "flag parse", err)
	})

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.String("base", "",
		"project base directory DIR is relative to (default: nearest go.mod)")
	flags.StringP("output", "o", "-",
		"archive file to write, - for stdout")
	flags.IntP("workers", "w", 1,
		"number of goroutines reading directories")
	flags.Bool("verify", false,
		"read the written archive back and compare with the snapshot")
	flags.Bool("debug", false,
		"enable debug output")
	flags.StringVar(&configFile, "config", "",
		"YAML config file with the same keys as the flags")

	_ = v.BindPFlags(flags)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func readConfig(v *viper.Viper, file string) error {
	if file == "" {
		return nil
	}

	v.SetConfigFile(file)
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func fail(cmd *cobra.Command, msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())

	cmd.SetOut(cmd.ErrOrStderr())
	_ = cmd.Usage()

	return err
}

func buildVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	switch buildInfo.Main.Version {
	case "", "(devel)":
		return version
	default:
		return buildInfo.Main.Version
	}
}
