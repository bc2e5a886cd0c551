package cli

import (
	"fmt"
	"os"

	"github.com/autovisory/autovisory/internal/chat"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var askPlain bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the answer",
	Long: `Ask a single question against a fresh session and print the reply.

Examples:
  autovisory ask "Tell me about the Ford F-150"
  autovisory ask "Compare Civic and Corolla" --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print raw Markdown without terminal styling")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	engine, _, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	log := chat.NewLog()
	reply := engine.HandleTurn(ctx, log, args[0])

	if !askPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if pretty, err := renderer.Render(reply); err == nil {
				fmt.Print(pretty)
				return nil
			}
		}
	}

	fmt.Println(reply)
	return nil
}
