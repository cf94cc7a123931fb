package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
)

const (
	identityKey = "identity"
	resolvedKey = "identity_resolved"
)

// TokenVerifier checks a bearer token with the identity provider.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.Identity, error)
}

// ContextFactory turns request credentials into an rpc.Context. It never
// fails: a missing, malformed or rejected token yields an anonymous caller.
type ContextFactory struct {
	verifier TokenVerifier
	logger   zerolog.Logger
}

func NewContextFactory(verifier TokenVerifier, logger zerolog.Logger) *ContextFactory {
	return &ContextFactory{verifier: verifier, logger: logger}
}

// ResolveToken returns the identity behind token or nil.
func (f *ContextFactory) ResolveToken(ctx context.Context, token string) *models.Identity {
	token = strings.TrimSpace(token)
	if token == "" || f.verifier == nil {
		return nil
	}
	identity, err := f.verifier.VerifyToken(ctx, token)
	if err != nil {
		f.logger.Debug().Err(err).Msg("token rejected, continuing anonymously")
		return nil
	}
	return identity
}

// Resolve reads the Authorization header once per request and caches the
// outcome in c.Locals.
func (f *ContextFactory) Resolve(c *fiber.Ctx) *models.Identity {
	if resolved, _ := c.Locals(resolvedKey).(bool); resolved {
		identity, _ := c.Locals(identityKey).(*models.Identity)
		return identity
	}

	var identity *models.Identity
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			identity = f.ResolveToken(c.UserContext(), parts[1])
		} else {
			f.logger.Debug().Str("path", c.Path()).Msg("malformed authorization header")
		}
	}
	f.store(c, identity)
	return identity
}

func (f *ContextFactory) store(c *fiber.Ctx, identity *models.Identity) {
	c.Locals(resolvedKey, true)
	c.Locals(identityKey, identity)
}

// Create builds the procedure context for c.
func (f *ContextFactory) Create(c *fiber.Ctx) *rpc.Context {
	requestID := RequestID(c)
	return &rpc.Context{
		Identity:  f.Resolve(c),
		RequestID: requestID,
		Logger:    f.logger.With().Str("request_id", requestID).Logger(),
	}
}

// Middleware resolves the caller up front so later handlers can use IdentityFrom.
func (f *ContextFactory) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		f.Resolve(c)
		return c.Next()
	}
}

// QueryToken accepts ?token= when no Authorization header is sent. Browsers
// cannot set headers on WebSocket handshakes.
func (f *ContextFactory) QueryToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			if token := c.Query("token"); token != "" {
				f.store(c, f.ResolveToken(c.UserContext(), token))
			}
		}
		return c.Next()
	}
}

func (f *ContextFactory) RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if f.Resolve(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}
		return c.Next()
	}
}

// IdentityFrom returns the identity resolved earlier in the chain.
func IdentityFrom(c *fiber.Ctx) (models.Identity, bool) {
	identity, _ := c.Locals(identityKey).(*models.Identity)
	if identity == nil {
		return models.Identity{}, false
	}
	return *identity, true
}

func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
