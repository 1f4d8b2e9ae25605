package main

import (
	"fmt"
	"io"
	"strings"

	text2docx "github.com/alnah/go-text2docx"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2docx [flags] < input.txt")
	fmt.Fprintln(w, "       text2docx <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert plain text from standard input to a Word document.")
	fmt.Fprintln(w, "A form feed (\\f) in the input starts a new page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w, "  completion    Generate shell completion script")
	fmt.Fprintln(w, "  config        Print the effective configuration as YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'text2docx help convert' for conversion flags.")
}

// printConvertUsage prints usage for a conversion.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2docx [flags] < input.txt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert plain text from standard input to a Word document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --out <path>          Output file (default: output.docx)")
	fmt.Fprintln(w, "      --do <verb>           After saving: print, edit, open")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintf(w, "  -p, --page <name>         Page size: %s (default: a4)\n", strings.Join(text2docx.PageSizeNames(), ", "))
	fmt.Fprintln(w, "      --width <mm>          Page width, with --height (overrides --page)")
	fmt.Fprintln(w, "      --height <mm>         Page height, with --width")
	fmt.Fprintln(w, "      --landscape           Swap width and height")
	fmt.Fprintln(w, "      --margin <t,b,l,r>    Margins in mm (default: 10,10,10,10)")
	fmt.Fprintln(w, "      --col <n>             Text columns: 2 or 3")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Font:")
	fmt.Fprintln(w, "      --size <pt>           Font size (default: 14)")
	fmt.Fprintf(w, "      --font <name>         Font: %s, or any font name (default: lc)\n", strings.Join(text2docx.FontNames(), ", "))
	fmt.Fprintf(w, "      --eafont <name>       East-Asian font: %s,\n", strings.Join(text2docx.EastAsianFontNames(), ", "))
	fmt.Fprintln(w, "                            or any font name (default: hge)")
	fmt.Fprintln(w, "      --lang <tag>          East-Asian language tag, e.g. ja-JP")
	fmt.Fprintln(w, "      --sample              Write a font sample table instead of reading input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Header and Footer:")
	fmt.Fprintln(w, "      --number              Page number header \"[Page X/Y]\"")
	fmt.Fprintln(w, "      --header <code>       Header field code (not with --number)")
	fmt.Fprintln(w, "      --footer <code>       Footer field code")
	fmt.Fprintln(w, "                            Fields: {PAGE}, {NUMPAGES}, {DATE}, ...")
	fmt.Fprintln(w, "                            Leading space aligns right, trailing space left")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --raw                 Accept invalid UTF-8 (replaced by U+FFFD)")
	fmt.Fprintln(w, "      --encoding <name>     Legacy encoding, e.g. shift_jis (implies --raw)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Title property")
	fmt.Fprintln(w, "      --author <s>          Author property")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolved settings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TEXT2DOCX_CONFIG, TEXT2DOCX_OUT, TEXT2DOCX_PAGE, TEXT2DOCX_FONT,")
	fmt.Fprintln(w, "  TEXT2DOCX_EAFONT, TEXT2DOCX_SIZE, TEXT2DOCX_AUTHOR")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2docx config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML. Accepts the conversion flags,")
	fmt.Fprintln(w, "so the output can be saved as a named config:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  text2docx config --page b5 --number > ~/.config/go-text2docx/b5.yaml")
	fmt.Fprintln(w, "  text2docx -c b5 < notes.txt")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: text2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: text2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		return fmt.Errorf("%w: unknown help topic %q", ErrUsage, args[0])
	}
	return nil
}
