package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/kocubinski/containers/fbtree"
	"github.com/spf13/cobra"
)

func dotCommand() *cobra.Command {
	var (
		seed    int64
		inserts int
		out     string
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Build a random tree and render it in graphviz dot format",
		RunE: func(_ *cobra.Command, _ []string) error {
			rnd := rand.New(rand.NewSource(seed))
			tree := fbtree.New[int64]()
			for i := 0; i < inserts; i++ {
				tree.Insert(rnd.Int63n(1000))
			}

			graph := tree.RenderDotGraph()
			if out == "" {
				fmt.Println(graph)
				return nil
			}
			if err := os.WriteFile(out, []byte(graph), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info().Msgf("wrote %d-node tree to %s", tree.Size(), out)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "tree seed")
	cmd.Flags().IntVar(&inserts, "inserts", 10, "number of values to insert")
	cmd.Flags().StringVar(&out, "out", "", "output file; stdout when empty")
	return cmd
}
