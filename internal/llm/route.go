package llm

// Kind identifies which remote API a route targets.
type Kind int

const (
	KindGroq Kind = iota
	KindGPT4
	KindClaude
)

// Flags mirrors the provider-selection command-line flags.
type Flags struct {
	Claude  bool
	GPT4    bool
	Mixtral bool
	Llama   bool
}

// Route is a resolved provider choice with the model it should use.
type Route struct {
	Kind  Kind
	Model string
}

// Resolve picks exactly one route from the flag combination. Precedence is
// fixed: Claude, then GPT-4, then the Groq-compatible endpoint. Conflicting
// flags are not an error; the higher-precedence one silently wins. On the
// Groq path, --mx beats --l370, and with neither set defaultModel (from
// GROQ_MODEL) is used.
func Resolve(f Flags, defaultModel string) Route {
	switch {
	case f.Claude:
		return Route{Kind: KindClaude, Model: claudeModel}
	case f.GPT4:
		return Route{Kind: KindGPT4, Model: gpt4Model}
	case f.Mixtral:
		return Route{Kind: KindGroq, Model: mixtralModel}
	case f.Llama:
		return Route{Kind: KindGroq, Model: llamaModel}
	default:
		return Route{Kind: KindGroq, Model: defaultModel}
	}
}
