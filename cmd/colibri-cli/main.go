// Command colibri-cli exercises the colibri evaluation engine from the
// terminal: a demo walking through comparison, membership, boolean
// combination and arithmetic over sample columns, plus build metadata.
package main

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	colibri "github.com/colibri-db/colibri"
	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
	"github.com/colibri-db/colibri/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "colibri-cli",
		Short: "Explore the colibri expression evaluation engine",
		Long: `colibri-cli runs the binary expression evaluators over small
in-memory columns so the dispatch, promotion and masking behavior can be
inspected without embedding the library.`,
		SilenceUsage: true,
	}
	root.AddCommand(newDemoCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(version.Info().String())
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Evaluate sample expressions over in-memory columns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	mem := memory.NewGoAllocator()
	engine := colibri.NewEngine(mem)

	prices := []float64{9.5, 42.0, 13.25, 99.9, 7.0, 55.5}
	qtys := []int64{3, 0, 12, 5, 0, 8}

	priceCol := float64Column(mem, prices)
	qtyCol := int64Column(mem, qtys)

	rows := table.NewWriter()
	rows.SetOutputMirror(cmd.OutOrStdout())
	rows.AppendHeader(table.Row{"row", "price", "qty"})
	for i := range prices {
		rows.AppendRow(table.Row{i, prices[i], qtys[i]})
	}
	rows.Render()

	// price > 40.0
	expensive, err := engine.EvaluateBinary(
		colibri.ColumnOf(priceCol, nil),
		colibri.ValueOf(value.NewFloat64(40.0)),
		colibri.OpGt,
	)
	if err != nil {
		return err
	}

	// qty IN {0}
	outOfStock, err := engine.EvaluateBinary(
		colibri.ColumnOf(qtyCol, nil),
		colibri.SetOf(value.NewInt64Set(0)),
		colibri.OpIsIn,
	)
	if err != nil {
		return err
	}

	// price > 40.0 AND NOT sold out: expensive AND (qty NOT IN {0})
	inStock, err := engine.EvaluateBinary(
		colibri.ColumnOf(qtyCol, nil),
		colibri.SetOf(value.NewInt64Set(0)),
		colibri.OpIsNotIn,
	)
	if err != nil {
		return err
	}
	combined, err := engine.EvaluateBinary(expensive, inStock, colibri.OpAnd)
	if err != nil {
		return err
	}

	// price * qty
	revenue, err := engine.EvaluateBinary(
		colibri.ColumnOf(priceCol, nil),
		colibri.ColumnOf(qtyCol, nil),
		colibri.OpMul,
	)
	if err != nil {
		return err
	}

	results := table.NewWriter()
	results.SetOutputMirror(cmd.OutOrStdout())
	results.AppendHeader(table.Row{"expression", "result"})
	results.AppendRow(table.Row{"price > 40.0", maskString(expensive, len(prices))})
	results.AppendRow(table.Row{"qty IN {0}", maskString(outOfStock, len(prices))})
	results.AppendRow(table.Row{"price > 40.0 AND qty NOT IN {0}", maskString(combined, len(prices))})
	results.AppendRow(table.Row{"price * qty", columnString(revenue)})
	results.Render()
	return nil
}

func float64Column(mem memory.Allocator, vals []float64) *colibri.Column {
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return colibri.NewColumn(types.Float64, b.NewArray())
}

func int64Column(mem memory.Allocator, vals []int64) *colibri.Column {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return colibri.NewColumn(types.Int64, b.NewArray())
}

func maskString(op colibri.Operand, n int) string {
	switch v := op.(type) {
	case colibri.MaskOperand:
		out := make([]byte, n)
		for i := 0; i < n; i++ {
			out[i] = '0'
			if v.Mask.Test(i) {
				out[i] = '1'
			}
		}
		return string(out)
	case colibri.EmptyResult:
		return "<empty>"
	case colibri.FullResult:
		return "<full>"
	}
	return fmt.Sprintf("<%s>", op.Kind())
}

func columnString(op colibri.Operand) string {
	col, ok := op.(colibri.ColumnOperand)
	if !ok {
		return fmt.Sprintf("<%s>", op.Kind())
	}
	vals, ok := col.Col.Data().(*array.Float64)
	if !ok {
		return col.Col.Tag().String()
	}
	return fmt.Sprintf("%v", vals.Float64Values())
}
