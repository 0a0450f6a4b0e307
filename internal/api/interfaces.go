package api

import "context"

// CommandRegistry is the command table used by CommandHandler.
type CommandRegistry interface {
	Invoke(ctx context.Context, name string) (any, error)
	Names() []string
}
