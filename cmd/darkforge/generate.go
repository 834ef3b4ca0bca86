package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/darkforge/internal/db"
	"github.com/jonathan/darkforge/internal/export"
	"github.com/jonathan/darkforge/internal/generator"
	"github.com/jonathan/darkforge/internal/profile"
	"github.com/jonathan/darkforge/internal/report"
	"github.com/jonathan/darkforge/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate password candidates from a profile",
	Long: "Loads a profile (JSON or YAML) or collects one interactively, expands the pattern " +
		"library and transformation rules over it, and writes the deduplicated candidates one per line.",
	RunE: runGenerate,
}

var (
	generateProfileFile string
	generateInteractive bool
	generateOutputFile  string
	generateMin         int
	generateMax         int
	generateYear        int
	generatePreview     int
)

func init() {
	generateCmd.Flags().StringVarP(&generateProfileFile, "profile", "p", "", "Path to profile JSON or YAML file")
	generateCmd.Flags().BoolVar(&generateInteractive, "interactive", false, "Collect the profile interactively")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Output wordlist path (default <output_dir>/<first>_<last>_passwords.txt)")
	generateCmd.Flags().IntVar(&generateMin, "min", 0, "Minimum candidate count before a low-yield warning (default from config)")
	generateCmd.Flags().IntVar(&generateMax, "max", 0, "Maximum candidate count (default from config)")
	generateCmd.Flags().IntVar(&generateYear, "year", 0, "Year used for year-suffix variants (default current year)")
	generateCmd.Flags().IntVar(&generatePreview, "preview", 10, "Number of candidates to preview")

	generateCmd.MarkFlagsMutuallyExclusive("profile", "interactive")

	rootCmd.AddCommand(generateCmd)
}

// profileHint explains the most common rejection: a missing name.
func profileHint(err error) string {
	var invalid *types.InvalidProfileError
	if !errors.As(err, &invalid) {
		return ""
	}
	if invalid.HasField(types.FieldFirstName) || invalid.HasField(types.FieldLastName) {
		return "first_name and last_name are required"
	}
	return ""
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var (
		p   *types.Profile
		err error
	)
	switch {
	case generateProfileFile != "":
		p, err = profile.Load(generateProfileFile)
	case generateInteractive:
		p, err = profile.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Collect(ctx)
	default:
		return errors.New("one of --profile or --interactive is required")
	}
	if err != nil {
		if hint := profileHint(err); hint != "" {
			return fmt.Errorf("failed to load profile (%s): %w", hint, err)
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	year := resolveYear(generateYear, appConfig.Generator.CurrentYear, time.Now())
	gen := generator.New(
		generator.WithCurrentYear(year),
		generator.WithLogger(logger),
	)
	res, err := gen.Generate(p,
		resolveTarget(generateMin, appConfig.Generator.TargetMin),
		resolveTarget(generateMax, appConfig.Generator.TargetMax),
	)
	if err != nil {
		return fmt.Errorf("failed to generate candidates: %w", err)
	}

	outPath := generateOutputFile
	if outPath == "" {
		outPath = defaultCandidatesPath(appConfig.OutputDir, p)
	}
	f, err := createOutput(outPath)
	if err != nil {
		return err
	}
	if err := export.WriteWordlist(f, res.Candidates); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	report.NewPrinter(cmd.OutOrStdout()).PrintGeneration(res, generatePreview)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outPath)

	recordGeneration(cmd, p, res, outPath)
	return nil
}

func recordGeneration(cmd *cobra.Command, p *types.Profile, res *types.GenerationResult, outPath string) {
	store, err := openStore(cmd.Context())
	if err != nil {
		warnStore("connect", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	var profileID *uuid.UUID
	if rec, err := store.SaveProfile(cmd.Context(), "", p); err != nil {
		warnStore("save profile", err)
	} else {
		profileID = &rec.ID
	}

	run, err := store.CreateGenerationRun(cmd.Context(), &db.GenerationRunInput{
		ProfileID:  profileID,
		Result:     res,
		OutputPath: outPath,
	})
	if err != nil {
		warnStore("create generation run", err)
		return
	}
	logger.Info("Recorded generation run", zap.String("run_id", run.ID.String()))
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Run ID: %s\n", run.ID)
}
