package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rulego/colexpr/functions"
	"github.com/rulego/colexpr/utils/table"
)

// FunctionInfo is one catalog entry as printed by the functions command.
type FunctionInfo struct {
	Name          string `json:"name" yaml:"name"`
	Category      string `json:"category" yaml:"category"`
	Group         string `json:"group" yaml:"group"`
	Signature     string `json:"signature" yaml:"signature"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	DeprecatedFor string `json:"deprecatedFor,omitempty" yaml:"deprecatedFor,omitempty"`
}

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand(rootOpts *RootOptions) *cobra.Command {
	var category, group string

	cmd := &cobra.Command{
		Use:   "functions [name...]",
		Short: "List the function catalog",
		Long: `List registered functions with their category, group and argument shape.

Names select single entries; --category and --group filter the catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := listFunctions(functions.Default(), args, category, group)
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Print(infos, func(w io.Writer) {
				renderFunctions(w, infos)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only functions of this category (scalar|aggregate|window)")
	cmd.Flags().StringVar(&group, "group", "", "only functions of this group, e.g. string or datetime")

	return cmd
}

func listFunctions(reg *functions.Registry, names []string, category, group string) ([]FunctionInfo, error) {
	var descs []*functions.Descriptor
	if len(names) > 0 {
		for _, name := range names {
			d, err := reg.Get(name)
			if err != nil {
				return nil, err
			}
			descs = append(descs, d)
		}
	} else {
		descs = reg.List()
	}

	infos := make([]FunctionInfo, 0, len(descs))
	for _, d := range descs {
		if category != "" && string(d.Category) != category {
			continue
		}
		if group != "" && string(d.Group) != group {
			continue
		}
		infos = append(infos, FunctionInfo{
			Name:          d.Name,
			Category:      string(d.Category),
			Group:         string(d.Group),
			Signature:     d.Signature(),
			Description:   d.Description,
			DeprecatedFor: d.DeprecatedFor,
		})
	}
	return infos, nil
}

func renderFunctions(w io.Writer, infos []FunctionInfo) {
	rows := make([][]string, len(infos))
	for i, info := range infos {
		desc := info.Description
		if info.DeprecatedFor != "" {
			desc = fmt.Sprintf("deprecated, use %s", info.DeprecatedFor)
		}
		rows[i] = []string{info.Name, info.Category, info.Group, info.Signature, desc}
	}
	table.Render(w, []string{"NAME", "CATEGORY", "GROUP", "SIGNATURE", "DESCRIPTION"}, rows)
	fmt.Fprintf(w, "(%d functions)\n", len(infos))
}
