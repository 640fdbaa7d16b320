package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rulego/colexpr/engine"
	"github.com/rulego/colexpr/engine/local"
	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/table"
)

// Document is an evaluation request read from YAML.
//
//	timezone: Asia/Shanghai
//	schema: [name, age]
//	config:
//	  maxDepth: 100
//	columns:
//	  - upper(name) AS shout
//	  - CASE WHEN age >= 18 THEN 'adult' ELSE 'minor' END AS kind
//	rows:
//	  - {name: ann, age: 20}
type Document struct {
	TimeZone string                   `yaml:"timezone"`
	Schema   []string                 `yaml:"schema"`
	Config   types.Config             `yaml:"config"`
	Columns  []string                 `yaml:"columns"`
	Rows     []map[string]interface{} `yaml:"rows"`
}

// EvalResult holds the evaluated rows in column order.
type EvalResult struct {
	Columns []string                 `json:"columns" yaml:"columns"`
	Rows    []map[string]interface{} `json:"rows" yaml:"rows"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var exprs, rows []string

	cmd := &cobra.Command{
		Use:   "eval [document.yaml]",
		Short: "Evaluate expressions over rows with the local engine",
		Long: `Evaluate SQL expressions over rows with the local engine.

Expressions and rows come from a YAML document ("-" reads stdin), from
--expr and --row flags, or both. Rows given as flags are JSON objects.`,
		Example: `  colexpr eval -e "upper(name)" -e "age + 1" --row '{"name": "ann", "age": 20}'
  colexpr eval request.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := &Document{Config: types.NewConfig()}
			if len(args) == 1 {
				if err := loadDocument(cmd, args[0], doc); err != nil {
					return err
				}
			}
			doc.Columns = append(doc.Columns, exprs...)
			for _, r := range rows {
				row, err := decodeRow(r)
				if err != nil {
					return err
				}
				doc.Rows = append(doc.Rows, row)
			}
			if len(doc.Columns) == 0 {
				return WrapExitError(ExitCommandError, "nothing to evaluate", fmt.Errorf("no expressions given"))
			}

			loc := rootOpts.location()
			if doc.TimeZone != "" && !cmd.Flag("timezone").Changed {
				var err error
				if loc, err = time.LoadLocation(doc.TimeZone); err != nil {
					return WrapExitError(ExitCommandError, "invalid document", err)
				}
			}
			doc.Config.TimeZone = loc

			result, err := evaluate(cmd.Context(), rootOpts, cmd, doc)
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Print(result, func(w io.Writer) {
				table.RenderSlice(w, result.Rows, result.Columns)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&exprs, "expr", "e", nil, "expression to evaluate, repeatable")
	cmd.Flags().StringArrayVar(&rows, "row", nil, "input row as a JSON object, repeatable")

	return cmd
}

func loadDocument(cmd *cobra.Command, path string, doc *Document) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read document", err)
	}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return WrapExitError(ExitCommandError, "invalid document", err)
	}
	return nil
}

func decodeRow(text string) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var row map[string]interface{}
	if err := dec.Decode(&row); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid row", err)
	}
	return row, nil
}

func evaluate(ctx context.Context, opts *RootOptions, cmd *cobra.Command, doc *Document) (*EvalResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b, eng := opts.builder(cmd, doc.Config, doc.Schema)

	refs := make([]engine.Ref, len(doc.Columns))
	names := make([]string, len(doc.Columns))
	for i, text := range doc.Columns {
		node, err := b.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		h, err := b.Submit(ctx, node)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		refs[i] = h
		names[i] = columnName(h, node)
	}

	out, err := eng.Select(ctx, doc.Rows, refs...)
	if err != nil {
		return nil, err
	}
	return &EvalResult{Columns: names, Rows: out}, nil
}

// columnName 引擎给出的结果列名
func columnName(h *expr.Handle, node expr.Node) string {
	if x, ok := h.Ref().(*local.Expression); ok {
		return x.Name()
	}
	return node.String()
}
