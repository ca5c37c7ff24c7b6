// Package interpreter wires the tokenizer, the parser and the executor
// into a single text-in/text-out call. One command in, one result out;
// no state is carried between calls.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quicktix/quicktix/internal/apperr"
	"github.com/quicktix/quicktix/internal/executor"
	"github.com/quicktix/quicktix/internal/parser"
	"github.com/quicktix/quicktix/internal/storage"
	"github.com/quicktix/quicktix/internal/token"
)

type Interpreter struct {
	tokenizer *token.Tokenizer
	parser    *parser.Parser
	executor  *executor.Executor
}

// New builds an interpreter over the given repository. The repository
// is the only collaborator; there is no process-wide store handle.
func New(repo storage.Repository) *Interpreter {
	return &Interpreter{
		tokenizer: token.NewTokenizer(),
		parser:    parser.New(),
		executor:  executor.New(repo),
	}
}

// Run interprets one command line. Bad input never escapes as an error:
// lexical diagnostics are reported inline, syntax failures come back
// with the fixed syntax-error marker, and execution failures are
// rendered by the executor. The result is never empty for non-empty
// input.
func (i *Interpreter) Run(ctx context.Context, text string) string {
	tokens, lexErrs := i.tokenizer.Tokenize(text)

	var b strings.Builder
	for _, le := range lexErrs {
		fmt.Fprintf(&b, "Invalid character '%c' in command. Please check the command syntax.\n", le.Char)
	}

	cmd, err := i.parser.Parse(tokens)
	if err != nil {
		var pe *apperr.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(&b, "❌ Syntax error: %s. Type 'help' for available commands.", pe.Message)
		} else {
			fmt.Fprintf(&b, "❌ Syntax error: %s. Type 'help' for available commands.", err)
		}
		return b.String()
	}

	b.WriteString(i.executor.Execute(ctx, cmd))
	return b.String()
}
