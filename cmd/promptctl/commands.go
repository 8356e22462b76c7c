package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promptfoundry/promptfoundry/internal/catalog"
	"github.com/promptfoundry/promptfoundry/internal/engine"
	"github.com/promptfoundry/promptfoundry/internal/logging"
	"github.com/promptfoundry/promptfoundry/internal/model"
	"github.com/promptfoundry/promptfoundry/internal/worker"
)

var globalFlags struct {
	catalog  string
	logLevel string
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func newGenerateCmd() *cobra.Command {
	var fields struct {
		goal, context, tone, constraints, format, audience string
	}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate safe, balanced and aggressive variants from an intake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			in := engine.IntakeInput{
				Goal:        flagValue(f.Changed("goal"), fields.goal),
				Context:     flagValue(f.Changed("context"), fields.context),
				Tone:        flagValue(f.Changed("tone"), fields.tone),
				Constraints: flagValue(f.Changed("constraints"), fields.constraints),
				Format:      flagValue(f.Changed("format"), fields.format),
				Audience:    flagValue(f.Changed("audience"), fields.audience),
			}
			draft, err := engine.NewPipeline(engine.UUIDGenerator{}).DraftInput(in)
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				if perr := printJSON(cmd.ErrOrStderr(), map[string]any{"error": verr}); perr != nil {
					return fmt.Errorf("invalid intake: %w", perr)
				}
				return errors.New("invalid intake")
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), draft)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fields.goal, "goal", "", "what the prompt should achieve (required, at least 6 characters)")
	f.StringVar(&fields.context, "context", "", "background the model needs")
	f.StringVar(&fields.tone, "tone", "", "tone of the expert role")
	f.StringVar(&fields.constraints, "constraints", "", "explicit constraints")
	f.StringVar(&fields.format, "format", "", "expected output format")
	f.StringVar(&fields.audience, "audience", "", "target audience")
	return cmd
}

func flagValue(changed bool, v string) *string {
	if !changed {
		return nil
	}
	return &v
}

// ---------------------------------------------------------------------------
// critique, score, rewrite
// ---------------------------------------------------------------------------

func newCritiqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "critique [file|-]",
		Short: "Lint a prompt for missing format and length declarations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPrompt(cmd, args)
			if err != nil {
				return err
			}
			c, err := engine.NewPipeline(nil).CritiquePrompt(text)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"critique": c})
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [file|-]",
		Short: "Score a prompt from 60 to 100 with a five-dimension breakdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPrompt(cmd, args)
			if err != nil {
				return err
			}
			s, err := engine.NewPipeline(nil).ScorePrompt(text)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"scoring": s})
		},
	}
}

func newRewriteCmd() *cobra.Command {
	var variantType string
	cmd := &cobra.Command{
		Use:   "rewrite [file|-]",
		Short: "Append the critique's guardrails to a prompt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPrompt(cmd, args)
			if err != nil {
				return err
			}
			res, err := engine.NewPipeline(nil).Rewrite(engine.RewriteRequest{
				ID:      "cli",
				Content: text,
				Type:    variantType,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&variantType, "type", model.VariantBalanced, "variant type: safe, balanced or aggressive")
	return cmd
}

// ---------------------------------------------------------------------------
// review
// ---------------------------------------------------------------------------

func newReviewCmd() *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "review <file>...",
		Short: "Critique and score many prompt files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewTo("stderr", globalFlags.logLevel, false)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()

			prompts := make([]string, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read prompt: %w", err)
				}
				prompts = append(prompts, string(data))
			}
			logger.Info("reviewing prompts", zap.Int("files", len(args)), zap.Int("parallel", parallel))

			reviews, err := worker.New(parallel, logger).Review(cmd.Context(), prompts)
			if err != nil {
				return err
			}

			type fileReview struct {
				File string `json:"file"`
				worker.Review
			}
			out := make([]fileReview, len(reviews))
			for i, r := range reviews {
				out[i] = fileReview{File: args[r.Index], Review: r}
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"reviews": out})
		},
	}
	cmd.Flags().IntVarP(&parallel, "parallel", "p", worker.DefaultParallelism, "number of prompts reviewed concurrently")
	return cmd
}

// ---------------------------------------------------------------------------
// templates
// ---------------------------------------------------------------------------

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the use-case templates of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Load(globalFlags.catalog)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"templates": c.Templates()})
		},
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// readPrompt reads the prompt from the file named by args[0], or from stdin
// when no file or "-" is given.
func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
