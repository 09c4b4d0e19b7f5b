// Package ops exposes the parse engine over a byte-oriented op boundary:
// named operations taking a JSON request envelope and returning a JSON
// response buffer. The response is a JSON-encoded string whose content is
// itself JSON (AST, dependency list or error message), so transports that
// only move opaque strings stay lossless.
package ops

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"ecmaparse/internal/analyzer"
	"ecmaparse/internal/engine"
)

var (
	// ErrUnknownOp reports a dispatch to a name nothing registered.
	ErrUnknownOp = errors.New("unknown op")
	// ErrDecode reports a request envelope that is not valid JSON for the op.
	ErrDecode = errors.New("decode request")
	// ErrSerialize reports a response value that could not be encoded.
	ErrSerialize = errors.New("serialize response")
)

// Handler runs one operation against a raw request envelope.
type Handler func(req []byte) ([]byte, error)

// Registry maps op names to handlers.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds name to h, replacing any previous binding.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Names lists the registered op names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named op. The returned buffer is the op's response;
// for a failed decode it still carries a structured {"error": ...} body
// alongside the non-nil error.
func (r *Registry) Dispatch(name string, req []byte) ([]byte, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return h(req)
}

// Default returns a registry with the three standard ops bound.
func Default() *Registry {
	r := NewRegistry()
	r.Register("parse", Parse)
	r.Register("parse_ts", ParseTS)
	r.Register("extract_dependencies", ExtractDependencies)
	return r
}

type parseRequest struct {
	Src string `json:"src"`
}

type dependenciesRequest struct {
	Src     string `json:"src"`
	Dynamic bool   `json:"dynamic"`
}

// respond double-encodes v: the inner marshal produces the payload JSON,
// the outer marshal wraps it as a JSON string.
func respond(v any) ([]byte, error) {
	inner, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	out, err := json.Marshal(string(inner))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return out, nil
}

// decodeFailure builds the structured error body for a bad envelope.
func decodeFailure(err error) ([]byte, error) {
	wrapped := fmt.Errorf("%w: %v", ErrDecode, err)
	body, merr := json.Marshal(map[string]string{"error": wrapped.Error()})
	if merr != nil {
		return nil, wrapped
	}
	return body, wrapped
}

// Parse handles the "parse" op: a {"src": ...} envelope parsed under the
// JavaScript grammar. On success the response carries the module AST; on a
// syntax failure it carries the joined diagnostic message string.
func Parse(req []byte) ([]byte, error) {
	var args parseRequest
	if err := json.Unmarshal(req, &args); err != nil {
		return decodeFailure(err)
	}
	ctx := engine.NewContext()
	mod, err := engine.Parse(ctx, "module.js", []byte(args.Src), engine.JavaScript())
	if err != nil {
		return respond(err.Error())
	}
	return respond(mod)
}

// ParseTS handles the "parse_ts" op: same envelope, TypeScript grammar with
// dynamic import enabled.
func ParseTS(req []byte) ([]byte, error) {
	var args parseRequest
	if err := json.Unmarshal(req, &args); err != nil {
		return decodeFailure(err)
	}
	ctx := engine.NewContext()
	mod, err := engine.Parse(ctx, "module.ts", []byte(args.Src), engine.TypeScript())
	if err != nil {
		return respond(err.Error())
	}
	return respond(mod)
}

// ExtractDependencies handles the "extract_dependencies" op: a
// {"src": ..., "dynamic": ...} envelope. Any parse failure collapses to the
// literal "parse_error" string; the response stays well-formed either way.
func ExtractDependencies(req []byte) ([]byte, error) {
	var args dependenciesRequest
	if err := json.Unmarshal(req, &args); err != nil {
		return decodeFailure(err)
	}
	deps, err := analyzer.Analyze(args.Src, args.Dynamic)
	if err != nil {
		return respond("parse_error")
	}
	return respond(deps)
}
