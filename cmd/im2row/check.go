package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/im2row/im2row"
)

var errAdjointMismatch = errors.New("forward and backward are not adjoint")

func newCheckCmd() *cobra.Command {
	var (
		seed   uint64
		trials int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify <forward(t), g> == <t, backward(g)> on random inputs",
		Args:  cobra.NoArgs,
	}
	flags := addGeometryFlags(cmd)
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&trials, "trials", 3, "Random inputs per data type")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		shape, g, _, err := flags.resolve()
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewPCG(seed, seed+1))
		var reports []im2row.AdjointReport
		for i := 0; i < trials; i++ {
			r32, err := im2row.CheckAdjoint[float32](shape, g, rng)
			if err != nil {
				return err
			}
			r64, err := im2row.CheckAdjoint[float64](shape, g, rng)
			if err != nil {
				return err
			}
			reports = append(reports, r32, r64)
		}

		failed := 0
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"DTYPE", "<FWD(T),G>", "<T,BWD(G)>", "REL ERR", "STATUS"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		for _, r := range reports {
			status := "ok"
			if !r.OK(im2row.DefaultTolerance(r.DataType)) {
				status = "FAIL"
				failed++
			}
			slog.Debug("adjoint check", "dtype", r.DataType, "forward", r.Forward, "backward", r.Backward, "relerr", r.RelErr())
			table.Append([]string{
				r.DataType.String(),
				fmt.Sprintf("%.10g", r.Forward),
				fmt.Sprintf("%.10g", r.Backward),
				fmt.Sprintf("%.3g", r.RelErr()),
				status,
			})
		}
		table.Render()

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d checks failed", errAdjointMismatch, failed, len(reports))
		}
		return nil
	}

	return cmd
}
