package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/im2row/im2row"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the patch matrix layout for a shape and geometry",
		Args:  cobra.NoArgs,
	}
	flags := addGeometryFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		shape, g, l, err := flags.resolve()
		if err != nil {
			return err
		}

		data := [][]string{
			{"shape", shape.String()},
			{"geometry", g.String()},
			{"window extent", fmt.Sprintf("%dx%d", l.WindowExtentX, l.WindowExtentY)},
			{"patches", fmt.Sprintf("%dx%d", l.NumPatchesX, l.NumPatchesY)},
			{"rows", strconv.Itoa(l.NumRows)},
			{"columns", strconv.Itoa(l.NumPatches())},
			{"elements", strconv.Itoa(l.StackedSize())},
		}
		for _, dt := range []im2row.DataType{im2row.Float32, im2row.Float64} {
			data = append(data, []string{dt.String() + " bytes", strconv.Itoa(l.StackedSize() * dt.Size())})
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(data)
		table.Render()
		return nil
	}

	return cmd
}
