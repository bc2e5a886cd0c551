package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/autovisory/autovisory/internal/advisor"
	"github.com/autovisory/autovisory/internal/chat"
	"github.com/autovisory/autovisory/internal/dataset"
	"github.com/autovisory/autovisory/internal/llm"
	"github.com/autovisory/autovisory/internal/metrics"
	"github.com/autovisory/autovisory/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var chatPlain bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive advisory session",
	Long: `Start an interactive chat session with the advisor.

Runs a full-screen terminal UI when attached to a terminal, or a plain
line-based loop when piped or when --plain is given.

Examples:
  autovisory chat
  autovisory chat --plain < questions.txt`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "force the plain line-based interface")
}

// buildEngine wires the generator, optional reference data and the
// dialogue engine. Shared by chat and ask.
func buildEngine(ctx context.Context) (*advisor.Engine, *metrics.Collector, error) {
	model, err := llm.NewModel(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init model: %w", err)
	}
	logger.Info("model initialized", "provider", cfg.LLMProvider, "model", model.Model())

	marketContext := ""
	if cfg.DataDir != "" {
		catalog, err := dataset.Load(cfg.DataDir)
		if err != nil {
			// Reference data is optional context, never fatal.
			logger.Warn("reference listings unavailable", "dir", cfg.DataDir, "error", err)
		} else if !catalog.Empty() {
			marketContext = catalog.ContextBlock(10)
			logger.Info("reference listings loaded", "segments", len(catalog.Segments))
		}
	}

	stats := metrics.NewCollector()
	return advisor.New(model, marketContext, stats, logger), stats, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	engine, stats, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	log := chat.NewLog()
	logger.Info("session started", "session", log.SessionID())
	defer func() {
		snap := stats.Snapshot()
		logger.Info("session ended",
			"session", log.SessionID(),
			"turns", log.Len(),
			"uptime_s", snap.UptimeSeconds,
		)
	}()

	if !chatPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.Run(ctx, engine, log)
	}
	return runPlainChat(ctx, engine, log)
}

// runPlainChat is the line-based loop used outside a terminal.
func runPlainChat(ctx context.Context, engine *advisor.Engine, log *chat.Log) error {
	fmt.Println(chat.Greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		reply := engine.HandleTurn(ctx, log, text)
		fmt.Println(reply)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
