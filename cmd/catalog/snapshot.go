package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var snapshotFormat string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <path>",
	Short: "Write the normalized catalog to a file",
	Long: `Write the normalized catalog to a file.

A JSON snapshot can be used as an offline fallback by pointing the
snapshot setting (or LLMCATALOG_SNAPSHOT) at it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ds, err := catalog.Load(cmd.Context())
	if err != nil {
		return err
	}

	var data []byte
	switch snapshotFormat {
	case "json":
		data, err = json.MarshalIndent(ds.Models(), "", "  ")
	case "yaml":
		data, err = yaml.Marshal(ds.Models())
	default:
		return fmt.Errorf("unknown format %q", snapshotFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := args[0]
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d models to %s.\n", ds.Len(), path)
	return nil
}
