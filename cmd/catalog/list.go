package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	llmcatalog "github.com/kingfs/go-llm-catalog"
)

var (
	listInput     []string
	listOutput    []string
	listSort      string
	listDirection string
	listLimit     int
)

var listCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List models matching a name filter and modality requirements",
	Long: `List models from the catalog.

The filter is matched token by token against model names; every token must
match the start of a name word, or of several consecutive name words.

Examples:
  catalog list
  catalog list gemini flash
  catalog list nanobanana --output image
  catalog list --input image --input file --sort created --direction asc`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVar(&listInput, "input", nil, "required input modality (repeatable)")
	listCmd.Flags().StringSliceVar(&listOutput, "output", nil, "required output modality (repeatable)")
	listCmd.Flags().StringVar(&listSort, "sort", "prompt", "sort field: name, created, prompt or completion")
	listCmd.Flags().StringVar(&listDirection, "direction", "desc", "sort direction: asc or desc")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "show at most this many models (0 shows all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	view, err := viewFromFlags(strings.Join(args, " "))
	if err != nil {
		return err
	}

	ds, err := catalog.Load(cmd.Context())
	if err != nil {
		return err
	}

	results := ds.Query(view)
	total := len(results)
	if listLimit > 0 && len(results) > listLimit {
		results = results[:listLimit]
	}

	out := cmd.OutOrStdout()
	if total == 0 {
		fmt.Fprintln(out, "No models match.")
		return nil
	}
	fmt.Fprint(out, renderModels(results))
	fmt.Fprintf(out, "%d of %d models\n", total, ds.Len())
	return nil
}

func viewFromFlags(filter string) (llmcatalog.ViewState, error) {
	view := llmcatalog.DefaultViewState().WithFilter(filter)

	for _, name := range listInput {
		m, err := llmcatalog.ParseModality(name)
		if err != nil {
			return view, err
		}
		view = view.RequireInput(m)
	}
	for _, name := range listOutput {
		m, err := llmcatalog.ParseModality(name)
		if err != nil {
			return view, err
		}
		view = view.RequireOutput(m)
	}

	field, err := llmcatalog.ParseSortField(listSort)
	if err != nil {
		return view, err
	}
	view = view.SortBy(field)

	switch strings.ToLower(listDirection) {
	case "asc", "ascending":
		view = view.WithDirection(llmcatalog.Ascending)
	case "desc", "descending":
		view = view.WithDirection(llmcatalog.Descending)
	default:
		return view, fmt.Errorf("unknown sort direction %q", listDirection)
	}
	return view, nil
}
