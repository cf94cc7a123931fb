package rpc

import (
	"github.com/rs/zerolog"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

// Context is built once per request. Identity is nil for anonymous callers.
type Context struct {
	Identity  *models.Identity
	RequestID string
	Logger    zerolog.Logger
}

// Anonymous returns a context with no identity and a disabled logger.
func Anonymous() *Context {
	return &Context{Logger: zerolog.Nop()}
}

func (c *Context) Authenticated() bool {
	return c != nil && c.Identity != nil
}

// AuthedContext is what protected handlers receive; User is always set.
type AuthedContext struct {
	*Context
	User models.Identity
}
