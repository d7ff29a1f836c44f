package main

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-sim/vector"
)

type cosineResult struct {
	Dimensions int      `json:"dimensions"`
	Similarity *float64 `json:"similarity"`
}

type euclideanResult struct {
	Dimensions int     `json:"dimensions"`
	Distance   float64 `json:"distance"`
	Similarity float64 `json:"similarity"`
}

func newCosineCommand(ctx *commandContext) *cobra.Command {
	var a, b []float64
	cmd := &cobra.Command{
		Use:   "cosine",
		Short: "Cosine similarity of two vectors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, err := vector.CosineSimilarity(a, b)
			if err != nil {
				return err
			}
			ctx.componentLogger("vector").Debug("cosine similarity computed",
				slog.Int("dimensions", len(a)),
				slog.Float64("similarity", sim))

			if ctx.jsonOutput() {
				return writeJSON(cmd, cosineResult{Dimensions: len(a), Similarity: nullable(sim)})
			}
			printTable(cmd,
				[]string{"Metric", "Value"},
				[][]string{{"cosine_similarity", formatFloat(sim)}},
				[]columnAlignment{alignLeft, alignRight})
			return nil
		},
	}
	addVectorFlags(cmd, &a, &b)
	return cmd
}

func newEuclideanCommand(ctx *commandContext) *cobra.Command {
	var a, b []float64
	cmd := &cobra.Command{
		Use:   "euclidean",
		Short: "Euclidean distance and similarity of two vectors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dist, err := vector.EuclideanDistance(a, b)
			if err != nil {
				return err
			}
			sim, err := vector.EuclideanSimilarity(a, b)
			if err != nil {
				return err
			}
			ctx.componentLogger("vector").Debug("euclidean distance computed",
				slog.Int("dimensions", len(a)),
				slog.Float64("distance", dist))

			if ctx.jsonOutput() {
				return writeJSON(cmd, euclideanResult{Dimensions: len(a), Distance: dist, Similarity: sim})
			}
			printTable(cmd,
				[]string{"Metric", "Value"},
				[][]string{
					{"euclidean_distance", formatFloat(dist)},
					{"euclidean_similarity", formatFloat(sim)},
				},
				[]columnAlignment{alignLeft, alignRight})
			return nil
		},
	}
	addVectorFlags(cmd, &a, &b)
	return cmd
}

func addVectorFlags(cmd *cobra.Command, a, b *[]float64) {
	cmd.Flags().Float64SliceVar(a, "a", nil, "First vector (comma separated)")
	cmd.Flags().Float64SliceVar(b, "b", nil, "Second vector (comma separated)")
}

// nullable maps NaN, which encoding/json rejects, to null.
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
