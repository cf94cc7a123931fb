package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

func echoQuery() *Procedure {
	return PublicQuery(func(context.Context, *Context, schema.Empty) (string, error) {
		return "pong", nil
	})
}

func noopMutation() *Procedure {
	return PublicMutation(func(context.Context, *Context, schema.Empty) (bool, error) {
		return true, nil
	})
}

func TestRouterCallsRegisteredPath(t *testing.T) {
	router := NewRouter(map[string]Namespace{
		"system": {"ping": echoQuery()},
	})

	out, err := router.Call(context.Background(), Anonymous(), "system.ping", KindQuery, nil)

	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestRouterUnknownPathIsNotFound(t *testing.T) {
	router := NewRouter(map[string]Namespace{
		"system": {"ping": echoQuery()},
	})

	for _, path := range []string{"system.pong", "other.ping", "system", ""} {
		_, err := router.Call(context.Background(), Anonymous(), path, KindQuery, nil)
		assert.True(t, IsCode(err, CodeNotFound), path)
	}
}

func TestRouterRejectsMutationViaQuery(t *testing.T) {
	router := NewRouter(map[string]Namespace{
		"system": {"reset": noopMutation(), "ping": echoQuery()},
	})

	_, err := router.Call(context.Background(), Anonymous(), "system.reset", KindQuery, nil)
	assert.True(t, IsCode(err, CodeBadRequest))

	_, err = router.Call(context.Background(), Anonymous(), "system.reset", KindMutation, nil)
	assert.NoError(t, err)

	_, err = router.Call(context.Background(), Anonymous(), "system.ping", KindMutation, nil)
	assert.NoError(t, err)
}

func TestRouterPanicsOnInvalidNames(t *testing.T) {
	assert.Panics(t, func() {
		NewRouter(map[string]Namespace{"bad.name": {"ping": echoQuery()}})
	})
	assert.Panics(t, func() {
		NewRouter(map[string]Namespace{"system": {"": echoQuery()}})
	})
	assert.Panics(t, func() {
		NewRouter(map[string]Namespace{"system": {"ping": nil}})
	})
}

func TestRouterProceduresAreSorted(t *testing.T) {
	router := NewRouter(map[string]Namespace{
		"b": {"query": echoQuery()},
		"a": {"mutate": noopMutation(), "query": echoQuery()},
	})

	assert.Equal(t, []Descriptor{
		{Path: "a.mutate", Kind: "mutation", Tier: "public"},
		{Path: "a.query", Kind: "query", Tier: "public"},
		{Path: "b.query", Kind: "query", Tier: "public"},
	}, router.Procedures())
}
