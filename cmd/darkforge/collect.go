package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/darkforge/internal/profile"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect a profile interactively and save it as JSON",
	RunE:  runCollect,
}

var collectOutputFile string

func init() {
	collectCmd.Flags().StringVarP(&collectOutputFile, "out", "o", "", "Path to write the profile JSON (required)")

	if err := collectCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, _ []string) error {
	p, err := profile.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Collect(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to collect profile: %w", err)
	}
	if err := profile.Save(collectOutputFile, p); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nProfile saved: %s\n", collectOutputFile)

	store, err := openStore(cmd.Context())
	if err != nil {
		warnStore("connect", err)
		return nil
	}
	if store == nil {
		return nil
	}
	defer store.Close()

	rec, err := store.SaveProfile(cmd.Context(), "", p)
	if err != nil {
		warnStore("save profile", err)
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile ID: %s\n", rec.ID)
	return nil
}
