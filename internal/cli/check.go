package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"speller/internal/dictionary"
	"speller/internal/speller"
	"speller/pkg/accuracy"
	"speller/pkg/editdist"
)

var (
	dictFlag    string
	levelFlag   string
	algoFlag    string
	workersFlag int
	noColorFlag bool
)

var checkCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Check a word against the dictionary",
	Long: `Check a single word. Exact dictionary members are reported correct;
otherwise candidates within the accuracy threshold are listed, closest
first.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&dictFlag, "dict", "d", "words.txt", "Path to the dictionary word list")
	checkCmd.Flags().StringVarP(&levelFlag, "level", "l", "medium", "Accuracy level: low, medium, high")
	checkCmd.Flags().StringVar(&algoFlag, "algo", "tworow", "Distance algorithm: recursive, matrix, tworow")
	checkCmd.Flags().IntVar(&workersFlag, "workers", 1, "Rank the dictionary across this many goroutines")
	checkCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	word := strings.ToLower(strings.TrimSpace(args[0]))
	if word == "" {
		return fmt.Errorf("word must not be empty")
	}

	level, err := accuracy.ParseLevel(levelFlag)
	if err != nil {
		return fmt.Errorf("invalid --level value: %w", err)
	}
	calc, err := editdist.Select(algoFlag)
	if err != nil {
		return fmt.Errorf("invalid --algo value: %w", err)
	}

	dict, err := dictionary.Load(dictFlag)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	sp := speller.New(dict,
		speller.WithCalculator(calc),
		speller.WithLevel(level),
		speller.WithWorkers(workersFlag),
	)
	result := sp.Check(word)

	if noColorFlag {
		color.NoColor = true
	}
	render(cmd, result, level)
	return nil
}

func render(cmd *cobra.Command, result speller.Result, level accuracy.Level) {
	out := cmd.OutOrStdout()
	if result.Correct {
		fmt.Fprintf(out, "%s %q is in the dictionary\n", color.GreenString("ok"), result.Query)
		return
	}
	if len(result.Matches) == 0 {
		fmt.Fprintf(out, "%s %q has no suggestions at %s accuracy\n",
			color.RedString("??"), result.Query, level)
		return
	}
	fmt.Fprintf(out, "%s %q is not in the dictionary, did you mean:\n",
		color.YellowString("~~"), result.Query)
	for _, m := range result.Matches {
		fmt.Fprintf(out, "  %s  (distance %d)\n", color.CyanString(m.Word), m.Distance)
	}
}
