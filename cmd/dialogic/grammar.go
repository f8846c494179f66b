package main

import (
	"fmt"

	"github.com/CakeVR/dialogic/internal/cli"
	"github.com/CakeVR/dialogic/internal/presentation/tui"
	"github.com/spf13/cobra"
)

const grammarDoc = "# Layer Directives\n" +
	"\n" +
	"A directive is a comma-separated list of segments. Each segment is an\n" +
	"operator followed by a layer path:\n" +
	"\n" +
	"```\n" +
	"directive := segment (',' segment)*\n" +
	"segment   := operator SP path\n" +
	"operator  := \"show\" | \"hide\" | \"set\"\n" +
	"path      := non-whitespace characters\n" +
	"```\n" +
	"\n" +
	"## Operators\n" +
	"\n" +
	"- `show <path>` makes the layer visible.\n" +
	"- `hide <path>` makes the layer invisible.\n" +
	"- `set <path>` shows the layer and hides its siblings (radio-button\n" +
	"  semantics, useful for outfits and expressions).\n" +
	"\n" +
	"## Notes\n" +
	"\n" +
	"- Operators are case-sensitive: `SHOW` is not an operator.\n" +
	"- Paths are slash-delimited, relative to the portrait root:\n" +
	"  `torso/armor_damaged`.\n" +
	"- Literal backslashes in paths are stripped.\n" +
	"- Segments are applied left to right; later segments win.\n" +
	"- Bad segments are skipped with a warning; the rest still apply.\n" +
	"\n" +
	"## Example\n" +
	"\n" +
	"```\n" +
	"set torso/armor_damaged, show scar_left, hide eyepatch\n" +
	"```\n"

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Show the directive language reference",
	Run: func(cmd *cobra.Command, args []string) {
		if !cli.IsInteractive() {
			fmt.Print(grammarDoc)
			return
		}

		tui.PrintBanner()
		render := tui.NewRenderer()
		out, err := render(grammarDoc)
		if err != nil {
			// Fall back to the raw markdown
			fmt.Print(grammarDoc)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}
