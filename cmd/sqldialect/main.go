package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/sqlkit/sqldialect"
)

// Context represents the global context for commands
type Context struct {
	Dialect *sqldialect.Dialect
	Verbose bool
}

// ClassifyCmd looks a word up in the dialect's keyword registry.
type ClassifyCmd struct {
	Word string `arg:"" help:"Word to classify"`
}

// Run executes the classify command
func (cmd *ClassifyCmd) Run(ctx *Context) error {
	typ := ctx.Dialect.Keywords.Classify(cmd.Word)
	if typ == sqldialect.KeywordTypeNone {
		fmt.Printf("%s: not registered\n", cmd.Word)
		return nil
	}
	color.New(color.FgGreen).Printf("%s: %s\n", strings.ToUpper(cmd.Word), typ)
	return nil
}

// CompleteCmd lists registered words matching a prefix.
type CompleteCmd struct {
	Prefix string `arg:"" help:"Prefix to complete"`
	Limit  int    `help:"Maximum number of matches to print" default:"20"`
}

// Run executes the complete command
func (cmd *CompleteCmd) Run(ctx *Context) error {
	matches := ctx.Dialect.Keywords.MatchPrefix(cmd.Prefix)
	if len(matches) > cmd.Limit {
		matches = matches[:cmd.Limit]
	}
	for _, word := range matches {
		fmt.Println(word)
	}
	return nil
}

// QuoteCmd quotes an identifier for the dialect.
type QuoteCmd struct {
	Identifier    string `arg:"" help:"Identifier to quote"`
	CaseSensitive bool   `help:"Quote when the identifier's case would not survive the engine's case folding" short:"c"`
	Force         bool   `help:"Quote unconditionally" short:"f"`
}

// Run executes the quote command
func (cmd *QuoteCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Dialect.QuoteIdentifier(cmd.Identifier, cmd.CaseSensitive, cmd.Force))
	return nil
}

// UnquoteCmd strips identifier quoting.
type UnquoteCmd struct {
	Identifier string `arg:"" help:"Identifier to unquote"`
}

// Run executes the unquote command
func (cmd *UnquoteCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Dialect.UnquoteIdentifier(cmd.Identifier))
	return nil
}

// EscapeCmd renders a value as a quoted string literal.
type EscapeCmd struct {
	Value string `arg:"" help:"Raw string value"`
}

// Run executes the escape command
func (cmd *EscapeCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Dialect.QuoteString(cmd.Value))
	return nil
}

// TxCmd classifies statements as transaction-modifying or read-only.
// Statements come from arguments, or from stdin when none are given.
type TxCmd struct {
	Statements []string `arg:"" optional:"" help:"SQL statements to classify"`
}

// Run executes the tx command
func (cmd *TxCmd) Run(ctx *Context) error {
	statements := cmd.Statements
	if len(statements) == 0 {
		data, err := readStdin()
		if err != nil {
			return err
		}
		statements = []string{data}
	}

	modifying := color.New(color.FgYellow)
	readonly := color.New(color.FgGreen)
	for _, stmt := range statements {
		if ctx.Dialect.IsTransactionModifying(stmt) {
			modifying.Printf("modifying: %s\n", summarize(stmt))
		} else {
			readonly.Printf("read-only: %s\n", summarize(stmt))
		}
	}
	return nil
}

// CallCmd synthesizes a stored procedure call statement.
type CallCmd struct {
	Name     string   `arg:"" help:"Fully qualified routine name"`
	Function bool     `help:"Routine is a function rather than a procedure"`
	Param    []string `help:"Parameter as name:kind[:type], kind one of in, out, inout, return" short:"P"`
}

// Run executes the call command
func (cmd *CallCmd) Run(ctx *Context) error {
	proc := sqldialect.Procedure{Name: cmd.Name}
	if cmd.Function {
		proc.Kind = sqldialect.ProcedureKindFunction
	}
	for _, spec := range cmd.Param {
		param, err := parseParameter(spec)
		if err != nil {
			return err
		}
		proc.Parameters = append(proc.Parameters, param)
	}

	var buf strings.Builder
	ctx.Dialect.GenerateProcedureCall(&buf, proc)
	fmt.Print(buf.String())
	return nil
}

func parseParameter(spec string) (sqldialect.ProcedureParameter, error) {
	parts := strings.SplitN(spec, ":", 3)
	param := sqldialect.ProcedureParameter{Name: parts[0]}
	if len(parts) > 1 {
		switch strings.ToLower(parts[1]) {
		case "in", "":
			param.Kind = sqldialect.ParameterIn
		case "out":
			param.Kind = sqldialect.ParameterOut
		case "inout":
			param.Kind = sqldialect.ParameterInOut
		case "return":
			param.Kind = sqldialect.ParameterReturn
		default:
			return param, fmt.Errorf("%w: %q", sqldialect.ErrInvalidParameterKind, parts[1])
		}
	}
	if len(parts) > 2 {
		param.TypeName = parts[2]
	}
	return param, nil
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func summarize(stmt string) string {
	stmt = strings.Join(strings.Fields(stmt), " ")
	if len(stmt) > 60 {
		return stmt[:57] + "..."
	}
	return stmt
}

// CLI represents the command-line interface
var CLI struct {
	Dialect  string      `help:"Built-in dialect profile (generic, postgres, mysql, oracle, sqlite)" short:"d" default:"generic" env:"SQLDIALECT"`
	Profile  string      `help:"YAML dialect profile path; overrides --dialect" short:"p" env:"SQLDIALECT_PROFILE"`
	Verbose  bool        `help:"Enable verbose output" short:"v"`
	Classify ClassifyCmd `cmd:"" help:"Classify a word against the dialect's keyword registry"`
	Complete CompleteCmd `cmd:"" help:"List registered words matching a prefix"`
	Quote    QuoteCmd    `cmd:"" help:"Quote an identifier for the dialect"`
	Unquote  UnquoteCmd  `cmd:"" help:"Strip identifier quoting"`
	Escape   EscapeCmd   `cmd:"" help:"Render a value as a quoted string literal"`
	Tx       TxCmd       `cmd:"" help:"Classify statements as transaction-modifying or read-only"`
	Call     CallCmd     `cmd:"" help:"Synthesize a stored procedure call statement"`
}

func main() {
	// Pick up SQLDIALECT/SQLDIALECT_PROFILE defaults from a local .env.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)

	dialect, err := resolveDialect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &Context{
		Dialect: dialect,
		Verbose: CLI.Verbose,
	}
	if CLI.Verbose {
		fmt.Printf("Dialect: %s (%d registered words)\n", dialect.Name, dialect.Keywords.Len())
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveDialect() (*sqldialect.Dialect, error) {
	if CLI.Profile != "" {
		return sqldialect.LoadProfile(CLI.Profile)
	}
	dialect, ok := sqldialect.ProfileByName(CLI.Dialect)
	if !ok {
		return nil, fmt.Errorf("%w: %q", sqldialect.ErrUnknownDialect, CLI.Dialect)
	}
	return dialect, nil
}
