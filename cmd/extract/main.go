package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/internal/usecase/extraction"
	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
	"github.com/johnquangdev/smart-voice-assistant/pkg/nlp"
)

type options struct {
	backend  string
	spacyURL string
	timeout  time.Duration
	pretty   bool
	analysis bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "extract [text...]",
		Short:         "Extract action items, meeting dates and key points from text",
		Long:          "Runs the extraction engine over the arguments, or over stdin when no arguments are given, and prints the result as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := buildAnalyzer(opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), analyzer, args, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.backend, "backend", config.NLPBackendProse, "analysis backend: prose or spacy")
	cmd.Flags().StringVar(&opts.spacyURL, "spacy-url", os.Getenv("SPACY_URL"), "base URL of the spaCy service")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout for the spaCy backend")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&opts.analysis, "analysis", false, "print the raw analysis instead of the extraction")
	return cmd
}

func buildAnalyzer(opts options) (nlp.Analyzer, error) {
	switch strings.ToLower(opts.backend) {
	case config.NLPBackendProse:
		return nlp.NewProseAnalyzer(zap.NewNop())
	case config.NLPBackendSpacy:
		if opts.spacyURL == "" {
			return nil, fmt.Errorf("--spacy-url is required for the spacy backend")
		}
		return nlp.NewSpacyClient(opts.spacyURL, opts.timeout, zap.NewNop()), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q", opts.backend)
	}
}

func run(ctx context.Context, analyzer nlp.Analyzer, args []string, in io.Reader, out io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(raw)
	}
	text = strings.TrimSpace(text)

	var result interface{}
	if opts.analysis {
		analyzed, err := analyzer.Analyze(ctx, text)
		if err != nil {
			return err
		}
		result = analyzed
	} else {
		extracted, err := extraction.Extract(ctx, text, analyzer)
		if err != nil {
			return err
		}
		result = extracted
	}

	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
