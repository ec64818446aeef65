package cli

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rambip/go-web-markdown/internal/logging"
	"github.com/rambip/go-web-markdown/internal/ui/tree"
	"github.com/rambip/go-web-markdown/pkg/htmlctx"
	"github.com/rambip/go-web-markdown/pkg/render"
)

type renderFlags struct {
	format          string
	maths           bool
	wikilinks       bool
	unsafeHTML      bool
	hardBreaks      bool
	showFrontmatter bool
	strictTags      bool
	detectLanguages bool
	components      []string
}

func newRenderCommand(color *string) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a markdown document",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags, *color)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "html",
		"output format: html, tree")
	cmd.Flags().BoolVar(&flags.maths, "maths", false,
		"recognize $...$ and $$...$$ math spans")
	cmd.Flags().BoolVar(&flags.wikilinks, "wikilinks", false,
		"recognize [[target]] and [[target|label]] links")
	cmd.Flags().BoolVar(&flags.unsafeHTML, "unsafe-html", false,
		"pass raw HTML through instead of escaping it")
	cmd.Flags().BoolVar(&flags.hardBreaks, "hard-breaks", false,
		"treat every line break as a hard break")
	cmd.Flags().BoolVar(&flags.showFrontmatter, "frontmatter", false,
		"print the frontmatter block before the rendered output")
	cmd.Flags().BoolVar(&flags.strictTags, "strict-tags", false,
		"fail on custom component tags with no registered component")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", false,
		"guess a language for unlabeled code blocks (html format only)")
	cmd.Flags().StringArrayVar(&flags.components, "component", nil,
		"custom component name to accept (repeatable)")

	return cmd
}

const renderLongDescription = `Render a markdown document read from a file or standard input.

Examples:
  mdrender render README.md              # Render a file to HTML
  mdrender render < notes.md             # Render standard input
  mdrender render --format tree doc.md   # Print the element tree
  mdrender render --maths paper.md       # Enable math spans
  mdrender render --component Counter doc.md   # Accept <Counter .../> tags`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags, color string) error {
	logger := logging.Default()

	source, err := readSource(args)
	if err != nil {
		return err
	}

	rawPolicy := render.RawHTMLEscape
	if flags.unsafeHTML {
		rawPolicy = render.RawHTMLPreserve
	}
	unknownPolicy := render.UnknownRawHTML
	if flags.strictTags {
		unknownPolicy = render.UnknownError
	}

	logger.Debug("rendering",
		logging.FieldFormat, flags.format,
		logging.FieldInput, len(source))

	switch flags.format {
	case "html":
		return renderHTML(cmd, source, flags, rawPolicy, unknownPolicy)
	case "tree":
		return renderTree(cmd, source, flags, rawPolicy, unknownPolicy, color)
	default:
		return &usageError{msg: fmt.Sprintf("unknown format %q (want html or tree)", flags.format)}
	}
}

// readSource reads the document from the file argument, or stdin when no
// argument was given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func renderHTML(cmd *cobra.Command, source string, flags *renderFlags, rawPolicy render.RawHTMLPolicy, unknownPolicy render.UnknownPolicy) error {
	opts := []htmlctx.Option{}
	if flags.detectLanguages {
		opts = append(opts, htmlctx.WithLanguageDetection())
	}
	host := htmlctx.New(opts...)

	components := render.Components[string]{}
	for _, name := range flags.components {
		components[name] = htmlComponent(name)
	}

	cfg := render.Config[string]{
		Components:     components,
		Maths:          flags.maths,
		Wikilinks:      flags.wikilinks,
		HardLineBreaks: flags.hardBreaks,
		RawHTML:        rawPolicy,
		Unknown:        unknownPolicy,
	}

	out, err := render.Render(cmd.Context(), source, cfg, host)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flags.showFrontmatter {
		if fm, ok := host.FrontmatterText(); ok {
			fmt.Fprintln(w, "---")
			fmt.Fprintln(w, fm)
			fmt.Fprintln(w, "---")
		}
	}
	fmt.Fprint(w, out)
	return nil
}

// htmlComponent is the generic HTML rendition of a custom component: a div
// carrying the component name and attributes as data attributes, wrapping
// its escaped child source.
func htmlComponent(name string) render.Constructor[string] {
	return func(props render.Props) (string, error) {
		var sb strings.Builder
		sb.WriteString(`<div data-component="`)
		sb.WriteString(html.EscapeString(name))
		sb.WriteString(`"`)
		for _, key := range props.Keys() {
			value, _ := props.Get(key)
			sb.WriteString(" data-")
			sb.WriteString(key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(value))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		sb.WriteString(html.EscapeString(props.ChildSource()))
		sb.WriteString("</div>")
		return sb.String(), nil
	}
}

func renderTree(cmd *cobra.Command, source string, flags *renderFlags, rawPolicy render.RawHTMLPolicy, unknownPolicy render.UnknownPolicy, color string) error {
	host := tree.NewBuilder()

	components := render.Components[*tree.Node]{}
	for _, name := range flags.components {
		components[name] = tree.Component
	}

	cfg := render.Config[*tree.Node]{
		Components:     components,
		Maths:          flags.maths,
		Wikilinks:      flags.wikilinks,
		HardLineBreaks: flags.hardBreaks,
		RawHTML:        rawPolicy,
		Unknown:        unknownPolicy,
	}

	root, err := render.Render(cmd.Context(), source, cfg, host)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flags.showFrontmatter {
		if fm, ok := host.FrontmatterText(); ok {
			fmt.Fprintln(w, "---")
			fmt.Fprintln(w, fm)
			fmt.Fprintln(w, "---")
		}
	}

	styles := tree.NewStyles(tree.IsColorEnabled(color, w))
	return tree.NewPrinter(w, styles).Print(root)
}
