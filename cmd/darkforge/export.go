package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/darkforge/internal/db"
	"github.com/jonathan/darkforge/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a wordlist in a cracking-tool format",
	Long: "Reads a wordlist and writes it as a plain list, hashcat hash:plaintext lines, " +
		"or John the Ripper tagged lines into a timestamped file.",
	RunE: runExport,
}

var (
	exportInputFile string
	exportOutputDir string
	exportFormat    string
	exportHashType  string
	exportRunID     string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to wordlist (required)")
	exportCmd.Flags().StringVar(&exportOutputDir, "out-dir", "", "Output directory (default <output_dir>)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format: plain, hashcat, john (default from config)")
	exportCmd.Flags().StringVar(&exportHashType, "hash-type", "", "Hash type: md5, sha1, sha256, sha512, ntlm, bcrypt (default from config)")
	exportCmd.Flags().StringVar(&exportRunID, "run-id", "", "Generation run ID to link the export to")

	if err := exportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	formatName := exportFormat
	if formatName == "" {
		formatName = appConfig.Export.Format
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	hashName := exportHashType
	if hashName == "" {
		hashName = appConfig.Export.HashType
	}
	hashType, err := export.ParseHashType(hashName)
	if err != nil {
		return err
	}

	var runID *uuid.UUID
	if exportRunID != "" {
		id, err := uuid.Parse(exportRunID)
		if err != nil {
			return fmt.Errorf("invalid --run-id: %w", err)
		}
		runID = &id
	}

	opts := []export.Option{export.WithLogger(logger)}
	if hashType == export.HashBcrypt {
		pc, err := appConfig.Export.Password()
		if err != nil {
			return err
		}
		opts = append(opts, export.WithPasswordHasher(pc))
	}
	exporter, err := export.New(format, hashType, opts...)
	if err != nil {
		return err
	}

	passwords, err := export.ReadWordlistFile(exportInputFile)
	if err != nil {
		return err
	}

	dir := exportOutputDir
	if dir == "" {
		dir = appConfig.OutputDir
	}
	outPath := filepath.Join(dir, export.FileName(format, time.Now()))
	f, err := createOutput(outPath)
	if err != nil {
		return err
	}
	n, err := exporter.Write(cmd.Context(), f, passwords)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d passwords to %s\n", n, outPath)

	recordExport(cmd, &db.ExportInput{
		GenerationRunID: runID,
		Format:          string(format),
		HashType:        exportedHashType(format, hashType),
		LineCount:       n,
		OutputPath:      outPath,
	})
	return nil
}

func exportedHashType(format export.Format, hashType export.HashType) string {
	if format == export.FormatPlain {
		return ""
	}
	return string(hashType)
}

func recordExport(cmd *cobra.Command, input *db.ExportInput) {
	store, err := openStore(cmd.Context())
	if err != nil {
		warnStore("connect", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	if _, err := store.SaveExport(cmd.Context(), input); err != nil {
		warnStore("save export", err)
	}
}
