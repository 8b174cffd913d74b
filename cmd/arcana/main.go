// Package main provides the arcana CLI, the presentation shell over
// the card catalog and the client store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/arcana/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// userErrors are the validation sentinels that exit with a user-error
// code and an inline message rather than a system-error code.
var userErrors = []error{
	types.ErrEmptyName,
	types.ErrDuplicateName,
	types.ErrClientNotFound,
	types.ErrNoCurrentClient,
	types.ErrLastClient,
	types.ErrInvalidReadingData,
	types.ErrEmptyEntry,
	types.ErrSpreadNotFound,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		for _, sentinel := range userErrors {
			if errors.Is(err, sentinel) {
				os.Exit(exitUserError)
			}
		}
		os.Exit(exitSysError)
	}
	os.Exit(exitSuccess)
}

// userMessage maps validation sentinels to the inline messages shown
// to the user; anything else passes through unchanged.
func userMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrDuplicateName):
		return "Client name already exists!"
	case errors.Is(err, types.ErrEmptyName):
		return "Please enter a client name!"
	case errors.Is(err, types.ErrNoCurrentClient):
		return "Please select a client first!"
	case errors.Is(err, types.ErrLastClient):
		return "Cannot delete the last client!"
	case errors.Is(err, types.ErrClientNotFound):
		return "Client not found!"
	case errors.Is(err, types.ErrSpreadNotFound):
		return "Unknown spread. Run 'arcana spreads' to list them."
	case errors.Is(err, types.ErrEmptyEntry):
		return "Journal entry is empty!"
	case errors.Is(err, types.ErrInvalidReadingData):
		return "Reading data is incomplete!"
	default:
		return err.Error()
	}
}
