// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pwd-strength/internal/util"
	"pwd-strength/pkg/hibp"
	"pwd-strength/pkg/strength"
	"pwd-strength/pkg/wordlist"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Check the strength of a single password",
		Args: func(cmd *cobra.Command, args []string) error {
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" && len(args) > 0 {
				password = args[0]
			}
			return checkCommand(cmd)
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	checkCmd.Flags().StringVarP(&password, "password", "p", "", "Password to check. Careful: shell history may record this. Omit for an interactive prompt.")
	checkCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Path to a local wordlist of known-weak passwords")
	checkCmd.Flags().BoolVar(&hibpCheck, "hibp", false, "Also check the password against the haveibeenpwned.com breach corpus")
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode.")

	rootCmd.AddCommand(checkCmd)
}

// evaluator bundles the collaborators one session needs: the pure combiner
// plus the resolved-ahead-of-time wordlist and breach client.
type evaluator struct {
	combiner *strength.Combiner
	set      wordlist.Set
	breach   *hibp.Client
}

func newEvaluator() (*evaluator, error) {
	combiner, err := strength.NewCombiner(strength.DefaultConfig(), strength.ZxcvbnScorer{})
	if err != nil {
		return nil, err
	}

	e := &evaluator{combiner: combiner}

	if wordlistFile != "" {
		if e.set, err = wordlist.Load(wordlistFile); err != nil {
			// Degrade to the no-wordlist state instead of refusing to score.
			log.Error().Err(err).Msgf("could not load wordlist %s, continuing without it", wordlistFile)
			e.set = nil
		}
	}

	if hibpCheck {
		if e.breach, err = hibp.NewClient(); err != nil {
			log.Error().Err(err).Msg("could not initialize the breach-check client, continuing without it")
			e.breach = nil
		}
	}

	return e, nil
}

// resolveBreach performs the only network call of an evaluation, before the
// core runs. Failures become the unchecked state; they never fail the check.
func (e *evaluator) resolveBreach(cmd *cobra.Command, pwd string) strength.BreachResult {
	if e.breach == nil {
		return strength.BreachResult{}
	}

	count, err := e.breach.PwnedCount(cmd.Context(), pwd)
	if err != nil {
		log.Warn().Err(err).Msg("breach check failed, reporting it as skipped")
		return strength.BreachResult{}
	}

	return strength.BreachResult{Checked: true, Found: count > 0, Count: count}
}

func (e *evaluator) check(cmd *cobra.Command, pwd string) error {
	// The password value itself is only ever logged at debug level.
	log.Debug().Msgf("checking password %q", pwd)

	report := e.combiner.Evaluate(pwd, e.set, e.resolveBreach(cmd, pwd))
	return strength.Format(os.Stdout, report)
}

func checkCommand(cmd *cobra.Command) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	eval, err := newEvaluator()
	if err != nil {
		return err
	}

	if password != "" && !interactive {
		return eval.check(cmd, password)
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("please enter a password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	if err = runInteractiveSession(cmd, prompt, eval); err != nil {
		if err.Error() == "^C" || err.Error() == "^D" {
			log.Info().Msgf("Goodbye")
		} else {
			log.Error().Err(err).Msgf("Error during interactive session")
		}
		// No return to avoid the default cobra error message
		return nil
	}

	return nil
}

func runInteractiveSession(cmd *cobra.Command, prompt promptui.Prompt, eval *evaluator) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = eval.check(cmd, result); err != nil {
			log.Error().Err(err).Msg("Error during check")
		}
	}
}
