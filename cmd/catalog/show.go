package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id|slug|alias>",
	Short: "Show the details of one model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := catalog.Load(cmd.Context())
		if err != nil {
			return err
		}
		m, ok := ds.Get(args[0])
		if !ok {
			return fmt.Errorf("model %q not found. Run 'catalog list' to see all models", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), renderDetails(m))
		return nil
	},
}

var modalitiesCmd = &cobra.Command{
	Use:   "modalities",
	Short: "List the input and output modalities present in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := catalog.Load(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "input:  %s\n", joinModalities(ds.InputModalities()))
		fmt.Fprintf(out, "output: %s\n", joinModalities(ds.OutputModalities()))
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Drop the cached catalog and fetch it again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := catalog.Refresh(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to refresh catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog refreshed: %d models, %d providers.\n", ds.Len(), len(ds.Providers()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd, modalitiesCmd, refreshCmd)
}
