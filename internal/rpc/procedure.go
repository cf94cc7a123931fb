package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

type Kind int

const (
	KindQuery Kind = iota
	KindMutation
)

func (k Kind) String() string {
	if k == KindMutation {
		return "mutation"
	}
	return "query"
}

type Tier int

const (
	TierPublic Tier = iota
	TierProtected
)

func (t Tier) String() string {
	if t == TierProtected {
		return "protected"
	}
	return "public"
}

type invokeFunc func(ctx context.Context, rc *Context, input json.RawMessage) (any, error)

// Procedure binds an input schema, an authorization tier and a handler.
type Procedure struct {
	kind Kind
	tier Tier
	call invokeFunc
}

func (p *Procedure) Kind() Kind { return p.kind }
func (p *Procedure) Tier() Tier { return p.tier }

func PublicQuery[In, Out any](handler func(context.Context, *Context, In) (Out, error)) *Procedure {
	return newProcedure(KindQuery, TierPublic, handler)
}

func PublicMutation[In, Out any](handler func(context.Context, *Context, In) (Out, error)) *Procedure {
	return newProcedure(KindMutation, TierPublic, handler)
}

func ProtectedQuery[In, Out any](handler func(context.Context, *AuthedContext, In) (Out, error)) *Procedure {
	return newProcedure(KindQuery, TierProtected, authed(handler))
}

func ProtectedMutation[In, Out any](handler func(context.Context, *AuthedContext, In) (Out, error)) *Procedure {
	return newProcedure(KindMutation, TierProtected, authed(handler))
}

func authed[In, Out any](handler func(context.Context, *AuthedContext, In) (Out, error)) func(context.Context, *Context, In) (Out, error) {
	return func(ctx context.Context, rc *Context, in In) (Out, error) {
		return handler(ctx, &AuthedContext{Context: rc, User: *rc.Identity}, in)
	}
}

func newProcedure[In, Out any](kind Kind, tier Tier, handler func(context.Context, *Context, In) (Out, error)) *Procedure {
	return &Procedure{
		kind: kind,
		tier: tier,
		call: func(ctx context.Context, rc *Context, raw json.RawMessage) (any, error) {
			var in In
			if err := decodeInput(raw, &in); err != nil {
				return nil, err
			}
			if err := schema.Validate(&in); err != nil {
				return nil, validationError(err)
			}

			out, err := handler(ctx, rc, in)
			if err != nil {
				return nil, err
			}
			if err := schema.ValidateOutput(out); err != nil {
				return nil, Wrap(CodeInternal, "internal server error", fmt.Errorf("output validation: %w", err))
			}
			return out, nil
		},
	}
}

// Invoke runs the procedure. Protected procedures reject anonymous callers
// before the input is decoded. Panics and untyped errors become internal errors.
func (p *Procedure) Invoke(ctx context.Context, rc *Context, input json.RawMessage) (out any, err error) {
	if rc == nil {
		rc = Anonymous()
	}
	if p.tier == TierProtected && !rc.Authenticated() {
		return nil, Unauthorized()
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = Internal(fmt.Errorf("panic: %v", r))
		}
	}()

	out, err = p.call(ctx, rc, input)
	if err != nil {
		return nil, AsError(err)
	}
	return out, nil
}

func decodeInput(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return BadRequest("invalid input", schema.Violations{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("must be a %s", typeErr.Type),
			}})
		}
		return BadRequest("invalid input", schema.Violations{{Message: "input must be valid JSON"}})
	}
	return nil
}

func validationError(err error) error {
	var violations schema.Violations
	if errors.As(err, &violations) {
		return BadRequest("input failed validation", violations)
	}
	return Internal(err)
}
