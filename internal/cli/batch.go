package cli

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pwd-strength/internal/util"
	"pwd-strength/pkg/strength"
)

var (
	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Check every password in a file, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return batchCommand(cmd)
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	batchCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "File with one candidate password per line (required)")
	batchCmd.MarkFlagRequired("in-file")
	batchCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Path to a local wordlist of known-weak passwords")
	batchCmd.Flags().BoolVar(&hibpCheck, "hibp", false, "Also check each password against the haveibeenpwned.com breach corpus")
	batchCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of workers. If omitted or less than 1, defaults to the number of logical processors.")

	rootCmd.AddCommand(batchCmd)
}

// batchRun fans one evaluation per input line out over a bounded worker pool.
// Every evaluation is independent, so the only synchronization needed is
// around the output writer and the label tally.
type batchRun struct {
	eval    *evaluator
	cmd     *cobra.Command
	mu      sync.Mutex
	out     *bufio.Writer
	tally   map[strength.Label]int
	checked uint64
}

func (b *batchRun) processLine(pwd string) {
	breach := b.eval.resolveBreach(b.cmd, pwd)
	report := b.eval.combiner.Evaluate(pwd, b.eval.set, breach)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := fmt.Fprintf(b.out, "%d\t%s\t%s\n", report.Score, report.Label, pwd); err != nil {
		log.Fatal().Err(err).Msg("error writing batch results. Stopping process")
	}
	b.tally[report.Label]++
	b.checked++
}

func batchCommand(cmd *cobra.Command) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	eval, err := newEvaluator()
	if err != nil {
		return err
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing input file")
		}
	}(file)

	workers := threads
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	run := &batchRun{
		eval:  eval,
		cmd:   cmd,
		out:   bufio.NewWriter(os.Stdout),
		tally: make(map[strength.Label]int),
	}

	log.Info().Msgf("checking passwords from %s with %d workers", inputFile, workers)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err = pool.Publish(run.processLine, line); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}
	if err = scanner.Err(); err != nil {
		return err
	}

	pool.Wait()
	if err = run.out.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("checked %s passwords", p.Sprintf("%d", run.checked))
	for score := 0; score <= 4; score++ {
		label := strength.LabelFor(score)
		if n := run.tally[label]; n > 0 {
			log.Info().Msgf("%s: %s", label, p.Sprintf("%d", n))
		}
	}

	return nil
}
