package ecs

import (
	"log"
	"os"
)

// Logger is the diagnostic sink spec.md §1 names as an external
// collaborator. Recoverable-misuse paths (an unchecked GetComponent miss)
// write through it; nothing in this package treats a Logger error as fatal.
type Logger interface {
	Printf(format string, args ...any)
}

// defaultLogger is Config's logger until SetLogger overrides it.
var defaultLogger Logger = log.New(os.Stderr, "ecs: ", log.LstdFlags)
