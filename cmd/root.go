// Package cmd wires the llmpipe command-line surface to the provider,
// prompt and rendering layers.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llmpipe/llmpipe/internal/config"
	"github.com/llmpipe/llmpipe/internal/llm"
	"github.com/llmpipe/llmpipe/internal/prompt"
	"github.com/llmpipe/llmpipe/internal/text"
	"github.com/llmpipe/llmpipe/internal/ui"
)

var (
	codeBlockFlag bool
	cbFlag        bool
	haikuFlag     bool
	mixtralFlag   bool
	llamaFlag     bool
	gpt4Flag      bool
	prettyFlag    bool
	thinkingFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "llmpipe [prompt]",
	Short: "Send a prompt to an LLM completion API and print the response",
	Long: `llmpipe forwards a prompt to a Groq-compatible endpoint, OpenAI GPT-4
or Anthropic Claude and writes the completion to stdout.

The prompt comes from the command-line arguments, from piped stdin, or from
both joined with a separator line:

  llmpipe "explain monads"
  cat main.go | llmpipe "find the bug"
  git diff | llmpipe --cb "write a commit message" `,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

// GetRootCommand returns the root command with the version set. Called from
// main with the build version string.
func GetRootCommand(v string) *cobra.Command {
	rootCmd.Version = v
	return rootCmd
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&codeBlockFlag, "codeblock", false, "print only the fenced code block from the response")
	flags.BoolVar(&cbFlag, "cb", false, "shorthand for --codeblock")
	flags.BoolVar(&haikuFlag, "haiku", false, "use Anthropic Claude")
	flags.BoolVar(&mixtralFlag, "mx", false, "use the Mixtral model on the Groq-compatible endpoint")
	flags.BoolVar(&llamaFlag, "l370", false, "use the Llama 3 70B model on the Groq-compatible endpoint")
	flags.BoolVar(&gpt4Flag, "gpt4", false, "use OpenAI GPT-4")
	flags.BoolVar(&prettyFlag, "pretty", false, "render the response as markdown")
	flags.BoolVar(&thinkingFlag, "thinking", false, "keep <think> sections in the response")
}

func run(cmd *cobra.Command, args []string) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	// Invoked bare, with nothing piped in: show usage and succeed.
	if len(args) == 0 && interactive {
		return cmd.Help()
	}

	var piped string
	if !interactive {
		var err error
		piped, err = prompt.ReadPiped(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	composed, err := prompt.Compose(piped, strings.Join(args, " "))
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	route := llm.Resolve(llm.Flags{
		Claude:  haikuFlag,
		GPT4:    gpt4Flag,
		Mixtral: mixtralFlag,
		Llama:   llamaFlag,
	}, cfg.GroqModel)

	completion, err := llm.NewProvider(route, cfg).Complete(cmd.Context(), composed)
	if err != nil {
		return err
	}

	if !thinkingFlag {
		completion = text.StripThinkTags(completion)
	}

	renderer := ui.NewRenderer(cmd.OutOrStdout(), prettyFlag)
	if codeBlockFlag || cbFlag {
		return renderer.RenderCode(text.ExtractCodeBlock(completion))
	}
	return renderer.Render(completion)
}
