package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-sim/minhash"
)

func newMinHashCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minhash",
		Short: "MinHash signatures and Jaccard estimates",
	}
	cmd.AddCommand(newMinHashSignatureCommand(ctx))
	cmd.AddCommand(newMinHashSimilarityCommand(ctx))
	return cmd
}

type signatureResult struct {
	Algorithm string   `json:"algorithm"`
	Hashes    int      `json:"hashes"`
	Digests   []string `json:"digests"`
}

type similarityResult struct {
	Algorithm string   `json:"algorithm"`
	Hashes    int      `json:"hashes"`
	Estimate  float64  `json:"estimate"`
	Exact     *float64 `json:"exact,omitempty"`
}

func newMinHashSignatureCommand(ctx *commandContext) *cobra.Command {
	var elements []string
	var hashes int
	cmd := &cobra.Command{
		Use:   "signature",
		Short: "Print the MinHash signature of a collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasher, k, err := ctx.minHashSetup(cmd, hashes)
			if err != nil {
				return err
			}
			sig := hasher.Signature(toElements(elements), k)
			ctx.componentLogger("minhash").Debug("signature computed",
				slog.Int("elements", len(elements)),
				slog.Int("hashes", k))

			digests := make([]string, len(sig))
			for i, d := range sig {
				digests[i] = d.String()
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, signatureResult{
					Algorithm: hasher.Hash().String(),
					Hashes:    k,
					Digests:   digests,
				})
			}
			rows := make([][]string, len(digests))
			for i, d := range digests {
				rows[i] = []string{fmt.Sprintf("%d", i), d}
			}
			printTable(cmd, []string{"Salt", "Digest"}, rows, []columnAlignment{alignRight, alignLeft})
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&elements, "elements", nil, "Collection elements (comma separated)")
	cmd.Flags().IntVar(&hashes, "hashes", 0, "Signature length (defaults to minhash.hashes)")
	return cmd
}

func newMinHashSimilarityCommand(ctx *commandContext) *cobra.Command {
	var a, b []string
	var hashes int
	var exact bool
	cmd := &cobra.Command{
		Use:   "similarity",
		Short: "Estimate the Jaccard similarity of two collections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasher, k, err := ctx.minHashSetup(cmd, hashes)
			if err != nil {
				return err
			}
			left, right := toElements(a), toElements(b)
			result := similarityResult{
				Algorithm: hasher.Hash().String(),
				Hashes:    k,
				Estimate:  hasher.Similarity(left, right, k),
			}
			if exact {
				j := minhash.Jaccard(left, right)
				result.Exact = &j
			}
			ctx.componentLogger("minhash").Debug("similarity estimated",
				slog.Int("hashes", k),
				slog.Float64("estimate", result.Estimate))

			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			rows := [][]string{{"minhash_similarity", formatFloat(result.Estimate)}}
			if result.Exact != nil {
				rows = append(rows, []string{"jaccard", formatFloat(*result.Exact)})
			}
			printTable(cmd, []string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&a, "a", nil, "First collection (comma separated)")
	cmd.Flags().StringSliceVar(&b, "b", nil, "Second collection (comma separated)")
	cmd.Flags().IntVar(&hashes, "hashes", 0, "Signature length (defaults to minhash.hashes)")
	cmd.Flags().BoolVar(&exact, "exact", false, "Also print the exact Jaccard similarity")
	return cmd
}

// minHashSetup returns the configured hasher and the signature length,
// preferring an explicit --hashes flag over minhash.hashes.
func (c *commandContext) minHashSetup(cmd *cobra.Command, hashes int) (*minhash.Hasher, int, error) {
	hasher, err := c.ensureHasher()
	if err != nil {
		return nil, 0, err
	}
	if cmd.Flags().Changed("hashes") {
		if hashes <= 0 || hashes > minhash.MaxHashes {
			return nil, 0, fmt.Errorf("--hashes must be between 1 and %d, got %d", minhash.MaxHashes, hashes)
		}
		return hasher, hashes, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, 0, err
	}
	return hasher, cfg.MinHash.Hashes, nil
}

func toElements(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
