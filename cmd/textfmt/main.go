package main

import (
	"fmt"
	"os"

	tsize "github.com/kopoli/go-terminal-size"
	"github.com/mitchellh/go-wordwrap"

	"github.com/fernandofreitas03/textfmt/internal/errors"
)

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if Debug {
		// Enabling debug output will print stacktraces
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
	} else {
		message := fmt.Sprintf("Error: %s", err)
		if size, sizeErr := tsize.GetSize(); sizeErr == nil && size.Width > 0 {
			message = wordwrap.WrapString(message, uint(size.Width))
		}
		fmt.Fprintln(os.Stderr, message)
	}

	if _, ok := errors.AsInputError(err); ok {
		os.Exit(2)
	}

	os.Exit(1)
}
