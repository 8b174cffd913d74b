package types

import "errors"

// Client mutation errors. These are sentinel values so the presentation
// layer can branch with errors.Is and show an inline message instead of
// handling a panic or a wrapped unknown.
var (
	ErrEmptyName       = errors.New("client name must not be empty")
	ErrDuplicateName   = errors.New("client name already exists")
	ErrClientNotFound  = errors.New("client not found")
	ErrNoCurrentClient = errors.New("no client selected")
	ErrLastClient      = errors.New("cannot delete the last client")
)

// Record append errors.
var (
	ErrInvalidReadingData = errors.New("cards and orientations are missing or mismatched")
	ErrEmptyEntry         = errors.New("journal entry must not be empty")
)

// Catalog errors. ErrInvalidSpread indicates a programming or
// configuration mistake (a spread asking for more cards than the deck
// holds) and is the one failure that should surface loudly.
var (
	ErrSpreadNotFound = errors.New("spread not found")
	ErrInvalidSpread  = errors.New("spread card count is impossible")
)
