package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rulego/colexpr/utils/cast"
	"github.com/rulego/colexpr/utils/table"
	"github.com/rulego/colexpr/window"
)

// WindowResult lists the buckets a timestamp falls into.
type WindowResult struct {
	Window    string   `json:"window" yaml:"window"`
	Type      string   `json:"type" yaml:"type"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Buckets   []Bucket `json:"buckets" yaml:"buckets"`
}

// Bucket is one half-open window [Start, End).
type Bucket struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// NewWindowCommand creates the window command.
func NewWindowCommand(rootOpts *RootOptions) *cobra.Command {
	var slide, start string

	cmd := &cobra.Command{
		Use:   "window <timestamp> <length>",
		Short: "Show the window buckets containing a timestamp",
		Long: `Assign a timestamp to tumbling or sliding windows.

Lengths, slides and start offsets are intervals such as "10 minutes",
"1 day 12 hours" or Go durations like "90s". Month and year based
intervals are rejected because their length depends on the calendar.
Timestamps without a zone are read in --timezone.`,
		Example: `  colexpr window "2024-05-01 09:13:00" "10 minutes" --slide "5 minutes" --start "2 minutes"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := assignWindow(args[0], args[1], slide, start, rootOpts.location())
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Print(result, func(w io.Writer) {
				renderWindow(w, result)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide interval; empty for a tumbling window")
	cmd.Flags().StringVar(&start, "start", "", "start offset of the buckets relative to the epoch")

	return cmd
}

func assignWindow(timestamp, length, slide, start string, loc *time.Location) (*WindowResult, error) {
	t, err := cast.ToTimeInLocationE(timestamp, loc)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid timestamp", err)
	}
	spec, err := window.NewSpec(length, slide, start)
	if err != nil {
		return nil, err
	}
	w, err := window.CreateWindow(spec)
	if err != nil {
		return nil, err
	}

	result := &WindowResult{
		Window:    spec.String(),
		Type:      window.TypeOf(spec),
		Timestamp: t.In(loc).Format(time.RFC3339Nano),
	}
	for _, slot := range w.Assign(t) {
		result.Buckets = append(result.Buckets, Bucket{
			Start: slot.Start.In(loc).Format(time.RFC3339Nano),
			End:   slot.End.In(loc).Format(time.RFC3339Nano),
		})
	}
	return result, nil
}

func renderWindow(w io.Writer, result *WindowResult) {
	fmt.Fprintf(w, "%s at %s\n", result.Window, result.Timestamp)
	rows := make([][]string, len(result.Buckets))
	for i, b := range result.Buckets {
		rows[i] = []string{b.Start, b.End}
	}
	table.Render(w, []string{"START", "END"}, rows)
}
