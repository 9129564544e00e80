package main

import (
	tsize "github.com/kopoli/go-terminal-size"
	"github.com/spf13/cobra"

	"github.com/fernandofreitas03/textfmt/internal/cli"
	"github.com/fernandofreitas03/textfmt/internal/text"
)

var (
	Width           int
	Justify         bool
	JustifyLastLine bool
	FilePath        string
	Json            bool
	SaveDefaults    bool

	formatCmd = &cobra.Command{
		Use:   "format [flags] [text]",
		Short: "Wrap text to a maximum line width, optionally justified",
		Example: `  textfmt format --width 40 "some text to wrap"
  textfmt format --width 40 --justify --file input.txt
  cat input.txt | textfmt format -w 40 -j --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var inlineText string
			if len(args) == 1 {
				inlineText = args[0]
			}

			defaultWidth := text.DefaultWidth
			if size, err := tsize.GetSize(); err == nil && size.Width > 0 {
				defaultWidth = size.Width
			}

			return service.Format(cli.FormatConfig{
				Text:            inlineText,
				FilePath:        FilePath,
				Width:           Width,
				DefaultWidth:    defaultWidth,
				Justify:         Justify,
				JustifyLastLine: JustifyLastLine,
				Json:            Json,
				SaveDefaults:    SaveDefaults,
			})
		},
	}
)

func init() {
	formatCmd.Flags().IntVarP(&Width, "width", "w", 0, "the maximum line width in characters. Defaults to the saved preference, then the terminal width.")
	formatCmd.Flags().BoolVarP(&Justify, "justify", "j", false, "stretch every line except the last to exactly the width")
	formatCmd.Flags().BoolVar(&JustifyLastLine, "justify-last-line", false, "also stretch the final line")
	formatCmd.Flags().StringVarP(&FilePath, "file", "f", "", "read the text from a file instead of the argument or stdin")
	formatCmd.Flags().BoolVar(&Json, "json", false, "output the result as JSON")
	formatCmd.Flags().BoolVar(&SaveDefaults, "save-defaults", false, "persist the resolved width and justify settings as defaults")
}
