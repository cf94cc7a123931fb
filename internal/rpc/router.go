package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// Namespace maps operation names to procedures.
type Namespace map[string]*Procedure

// Descriptor describes a registered procedure for catalogs and docs.
type Descriptor struct {
	Path string `json:"path" yaml:"path"`
	Kind string `json:"kind" yaml:"kind"`
	Tier string `json:"tier" yaml:"tier"`
}

// Router resolves "namespace.operation" paths. It is immutable once built.
type Router struct {
	procedures map[string]*Procedure
}

var segmentPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// NewRouter flattens namespaces into a lookup table. Invalid names or nil
// procedures panic since they can only come from wiring mistakes.
func NewRouter(namespaces map[string]Namespace) *Router {
	r := &Router{procedures: make(map[string]*Procedure)}
	for ns, procedures := range namespaces {
		if !segmentPattern.MatchString(ns) {
			panic(fmt.Sprintf("rpc: invalid namespace %q", ns))
		}
		for op, procedure := range procedures {
			if !segmentPattern.MatchString(op) {
				panic(fmt.Sprintf("rpc: invalid operation %q in namespace %q", op, ns))
			}
			if procedure == nil {
				panic(fmt.Sprintf("rpc: nil procedure %s.%s", ns, op))
			}
			r.procedures[ns+"."+op] = procedure
		}
	}
	return r
}

func (r *Router) Lookup(path string) (*Procedure, bool) {
	procedure, ok := r.procedures[path]
	return procedure, ok
}

// Call dispatches path. via is the kind implied by the transport: GET
// requests arrive as queries and cannot reach mutations.
func (r *Router) Call(ctx context.Context, rc *Context, path string, via Kind, input json.RawMessage) (any, error) {
	procedure, ok := r.procedures[path]
	if !ok {
		return nil, Errorf(CodeNotFound, "no procedure found on path %q", path)
	}
	if procedure.kind == KindMutation && via != KindMutation {
		return nil, Errorf(CodeBadRequest, "%s is a mutation and must be called with POST", path)
	}
	return procedure.Invoke(ctx, rc, input)
}

// Procedures lists every registered procedure sorted by path.
func (r *Router) Procedures() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.procedures))
	for path, procedure := range r.procedures {
		descriptors = append(descriptors, Descriptor{
			Path: path,
			Kind: procedure.kind.String(),
			Tier: procedure.tier.String(),
		})
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Path < descriptors[j].Path
	})
	return descriptors
}
