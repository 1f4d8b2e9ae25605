package main

import (
	"fmt"
	"io"
	"strings"

	text2docx "github.com/alnah/go-text2docx"
	"github.com/alnah/go-text2docx/internal/launch"
	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// shells lists supported shells in display order.
var shells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagNumber
	flagEnum // has predefined values
	flagFile // file with glob pattern
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --out
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Args       []string // fixed argument values
	TakesFlags bool     // accepts the conversion flags
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"page":     {Values: text2docx.PageSizeNames()},
	"font":     {Values: text2docx.FontNames()},
	"eafont":   {Values: text2docx.EastAsianFontNames()},
	"col":      {Values: []string{"2", "3"}},
	"do":       {Values: verbNames()},
	"encoding": {Values: []string{"shift_jis", "euc-jp", "iso-2022-jp", "gbk", "big5", "euc-kr", "windows-1252"}},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"out":    {FileGlob: "*.docx"},
}

func verbNames() []string {
	names := make([]string, len(launch.Verbs))
	for i, v := range launch.Verbs {
		names[i] = string(v)
	}
	return names
}

// buildConvertFlagSet creates a FlagSet with all conversion flags.
// This reuses the same flag registration as parseConvertFlags.
func buildConvertFlagSet() *flag.FlagSet {
	return newConvertFlagSet(&convertFlags{})
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "float64", "float64Slice":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	shellNames := make([]string, len(shells))
	for i, s := range shells {
		shellNames[i] = string(s)
	}

	return []commandDef{
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: []string{"convert", "version", "help", "completion", "config"}},
		{Name: "completion", Desc: "Generate shell completion script", Args: shellNames},
		{Name: "config", Desc: "Print the effective configuration as YAML", TakesFlags: true},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	flags := extractFlagsFromFlagSet(buildConvertFlagSet())
	cmds := getCommands()

	switch shell {
	case ShellBash:
		return generateBash(w, cmds, flags)
	case ShellZsh:
		return generateZsh(w, cmds, flags)
	case ShellFish:
		return generateFish(w, cmds, flags)
	case ShellPowerShell:
		return generatePowerShell(w, cmds, flags)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// flagWords returns the spellings of every flag, long first.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// spellings returns the case pattern matching a flag, e.g. "--out|-o".
func spellings(f flagDef, sep string) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "--" + f.Long + sep + "-" + f.Short
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer, cmds []commandDef, flags []flagDef) error {
	var b strings.Builder

	b.WriteString("# bash completion for text2docx\n")
	b.WriteString("_text2docx_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range flags {
		if !f.takesValue() {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", spellings(f, "|"))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(f.Values, " "))
		case flagFile:
			b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		}
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ $COMP_CWORD -ge 2 ]]; then\n")
	b.WriteString("        case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "            %s)\n", c.Name)
		fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Args, " "))
		b.WriteString("                return\n")
		b.WriteString("                ;;\n")
	}
	b.WriteString("        esac\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(flagWords(flags), " "))
	b.WriteString("}\n\n")
	b.WriteString("complete -F _text2docx_completions text2docx\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshEscape escapes text for a single-quoted _arguments spec.
var zshEscape = strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`)

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer, cmds []commandDef, flags []flagDef) error {
	var b strings.Builder

	b.WriteString("#compdef text2docx\n\n")
	b.WriteString("_text2docx() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then\n")
	b.WriteString("        _describe -t commands 'text2docx command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case $words[2] in\n")
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    _arguments -s \\\n")
	for i, f := range flags {
		b.WriteString("        ")
		if f.Short != "" {
			fmt.Fprintf(&b, "'(-%s --%s)'{-%s,--%s}", f.Short, f.Long, f.Short, f.Long)
		} else {
			fmt.Fprintf(&b, "'--%s'", f.Long)
		}
		fmt.Fprintf(&b, "'[%s]", zshEscape.Replace(f.Desc))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, ":%s:(%s)", f.Long, strings.Join(f.Values, " "))
		case flagFile:
			globs := strings.ReplaceAll(f.FileGlob, ",", " ")
			fmt.Fprintf(&b, ":file:_files -g \"%s\"", globs)
		case flagString, flagNumber:
			fmt.Fprintf(&b, ":%s: ", f.Long)
		}
		b.WriteString("'")
		if i < len(flags)-1 {
			b.WriteString(" \\")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
	b.WriteString("compdef _text2docx text2docx\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// fishQuote quotes s as a double-quoted fish string.
func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`)
	return `"` + r.Replace(s) + `"`
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer, cmds []commandDef, flags []flagDef) error {
	var b strings.Builder

	// Flags complete everywhere except after commands that take none.
	var flagless []string
	for _, c := range cmds {
		if !c.TakesFlags {
			flagless = append(flagless, c.Name)
		}
	}
	noFlags := strings.Join(flagless, " ")

	b.WriteString("# fish completion for text2docx\n\n")
	b.WriteString("function __fish_text2docx_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_text2docx_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	b.WriteString("complete -c text2docx -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c text2docx -n __fish_text2docx_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "complete -c text2docx -n '__fish_text2docx_using_command %s' -a %s\n", c.Name, fishQuote(strings.Join(c.Args, " ")))
	}
	b.WriteString("\n")

	for _, f := range flags {
		fmt.Fprintf(&b, "complete -c text2docx -n 'not __fish_seen_subcommand_from %s' -l %s", noFlags, f.Long)
		if f.Short != "" {
			fmt.Fprintf(&b, " -s %s", f.Short)
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, " -x -a %s", fishQuote(strings.Join(f.Values, " ")))
		case flagFile:
			b.WriteString(" -r -F")
		case flagString, flagNumber:
			b.WriteString(" -x")
		}
		fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Desc))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// psQuote quotes s as a single-quoted PowerShell string.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func psArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = psQuote(v)
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

// generatePowerShell writes a PowerShell completion script.
func generatePowerShell(w io.Writer, cmds []commandDef, flags []flagDef) error {
	var b strings.Builder

	b.WriteString("# PowerShell completion for text2docx\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName text2docx -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	fmt.Fprintf(&b, "    $commands = %s\n", psArray(commandNames(cmds)))
	fmt.Fprintf(&b, "    $flags = %s\n", psArray(flagWords(flags)))
	b.WriteString("    $values = @{\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        %s = %s\n", psQuote(c.Name), psArray(c.Args))
		}
	}
	for _, f := range flags {
		if f.Type != flagEnum {
			continue
		}
		fmt.Fprintf(&b, "        %s = %s\n", psQuote("--"+f.Long), psArray(f.Values))
		if f.Short != "" {
			fmt.Fprintf(&b, "        %s = %s\n", psQuote("-"+f.Short), psArray(f.Values))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($wordToComplete -ne '') { $prev = $words[-2] } else { $prev = $words[-1] }\n")
	b.WriteString("    if ($values.ContainsKey($prev)) {\n")
	b.WriteString("        $candidates = $values[$prev]\n")
	b.WriteString("    } elseif ($words.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	b.WriteString("        $candidates = $commands\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $candidates = $flags\n")
	b.WriteString("    }\n\n")

	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2docx completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(text2docx completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(text2docx completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    text2docx completion fish > ~/.config/fish/completions/text2docx.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    text2docx completion powershell | Out-String | Invoke-Expression")
}
