package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulego/colexpr"
	"github.com/rulego/colexpr/expr"
)

// ParseResult describes a parsed expression.
type ParseResult struct {
	SQL     string                 `json:"sql" yaml:"sql"`
	Columns []string               `json:"columns" yaml:"columns"`
	Depth   int                    `json:"depth" yaml:"depth"`
	Tree    map[string]interface{} `json:"tree" yaml:"tree"`
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse SQL expression text into an expression tree",
		Long: `Parse SQL expression text and print the resulting tree.

Every function call is checked against the catalog for its name and
argument count unless --raw is given.`,
		Example: `  colexpr parse "CASE WHEN age >= 18 THEN 'adult' ELSE 'minor' END" --format json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := parseExpression(rootOpts, cmd, args[0], raw)
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Print(result, func(w io.Writer) {
				fmt.Fprintln(w, result.SQL)
				fmt.Fprintf(w, "columns: %s\n", strings.Join(result.Columns, ", "))
				fmt.Fprintf(w, "depth: %d\n", result.Depth)
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "skip catalog validation")

	return cmd
}

func parseExpression(opts *RootOptions, cmd *cobra.Command, text string, raw bool) (*ParseResult, error) {
	var node expr.Node
	var err error
	if raw {
		node, err = expr.Parse(text, nil)
	} else {
		b := colexpr.New(colexpr.WithLogger(opts.logger(cmd.ErrOrStderr())))
		node, err = b.Parse(text)
	}
	if err != nil {
		return nil, err
	}
	columns := expr.Columns(node)
	if columns == nil {
		columns = []string{}
	}
	return &ParseResult{
		SQL:     node.String(),
		Columns: columns,
		Depth:   expr.Depth(node),
		Tree:    expr.ToMap(node),
	}, nil
}
