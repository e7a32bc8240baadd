package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/switchcase/pkg/casefile"
	"github.com/arthur-debert/switchcase/pkg/errors"
	"github.com/arthur-debert/switchcase/pkg/logging"
	"github.com/arthur-debert/switchcase/pkg/registry"
	"github.com/arthur-debert/switchcase/pkg/switchcase"
)

var (
	casesFile string
	caseFlags []string
)

var runCmd = &cobra.Command{
	Use:   "run <value>",
	Short: MsgRunShort,
	Long: `Run matches <value> against the case map assembled from --cases and --case
flags, then invokes the selected action through the built-in action registry.

Examples:
  switchcase run apple --case apple="echo found an apple" --case default="echo unknown"
  switchcase run banana --cases fruit-cases.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.run")
		defer logging.LogDuration(time.Now(), "run")

		caseMap := make(map[string]interface{})

		if casesFile != "" {
			loaded, err := casefile.Load(casesFile)
			if err != nil {
				return err
			}
			caseMap = loaded
		}

		// Inline --case flags override file entries on key collision
		for _, spec := range caseFlags {
			key, definition, ok := strings.Cut(spec, "=")
			if !ok || key == "" {
				return errors.Newf(errors.ErrInvalidInput,
					"--case must be key=definition, got %q", spec)
			}
			caseMap[key] = definition
		}

		logger.Debug().
			Str("switchValue", args[0]).
			Int("cases", len(caseMap)).
			Str("casesFile", casesFile).
			Msg("Dispatching")

		dispatcher := switchcase.New(registry.Runner{})

		result, err := dispatcher.Dispatch(args[0], caseMap)
		if err != nil {
			return err
		}

		if result != nil {
			fmt.Fprintln(cmd.OutOrStdout(), result)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&casesFile, "cases", "c", "", "Case map file (.toml, .yaml, .json)")
	runCmd.Flags().StringArrayVar(&caseFlags, "case", nil, "Inline case binding, key=definition (repeatable)")
	rootCmd.AddCommand(runCmd)
}
