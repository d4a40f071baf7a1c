package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/23skdu/indexpq/indexpq"
)

var demoWords = []string{"it", "was", "the", "best", "of", "times", "it", "was", "the", "worst"}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Drain a queue of words, then list them again through the iterator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Info().Int("words", len(demoWords)).Msg("Running word demo")
			return runDemo(cmd.OutOrStdout(), demoWords)
		},
	}
}

// runDemo prints "index word" lines in ascending word order twice: once by
// repeated DeleteMin and once by the snapshot iterator over a refilled queue.
func runDemo(w io.Writer, words []string) error {
	pq, err := indexpq.New[string](len(words))
	if err != nil {
		return err
	}
	fill := func() error {
		for i, s := range words {
			if err := pq.Insert(i, s); err != nil {
				return err
			}
		}
		return nil
	}

	if err := fill(); err != nil {
		return err
	}
	for !pq.IsEmpty() {
		i, err := pq.DeleteMin()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d %s\n", i, words[i])
	}
	fmt.Fprintln(w)

	if err := fill(); err != nil {
		return err
	}
	for i := range pq.Ascending() {
		fmt.Fprintf(w, "%d %s\n", i, words[i])
	}
	return nil
}
