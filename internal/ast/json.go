package ast

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
)

// The JSON codec below is this module's "concrete syntax": pluthon-go is
// purely a programmatic AST builder, so the one on-disk form a caller
// actually needs is a serialised Term tree to feed pkg/cli's
// `compile <in.json>` command. There is no established term-tree wire
// format for this domain, so encoding/json with a "kind"-tagged envelope
// is the plain, idiomatic choice rather than a hand-rolled parser.
type jsonTerm struct {
	Kind string `json:"kind"`

	// Var
	Name string `json:"name,omitempty"`

	// Lambda
	Params []string  `json:"params,omitempty"`
	Body   *jsonTerm `json:"body,omitempty"`

	// Apply
	Fun  *jsonTerm   `json:"fun,omitempty"`
	Args []*jsonTerm `json:"args,omitempty"`

	// Force / Delay
	Inner *jsonTerm `json:"inner,omitempty"`

	// Let
	Bindings []jsonBinding `json:"bindings,omitempty"`

	// Ite
	Cond *jsonTerm `json:"cond,omitempty"`
	Then *jsonTerm `json:"then,omitempty"`
	Else *jsonTerm `json:"else,omitempty"`

	// BuiltIn
	Op string `json:"op,omitempty"`

	// EmptyList
	Sample *jsonConstant `json:"sample,omitempty"`

	// Constant
	Constant *jsonConstant `json:"constant,omitempty"`
}

type jsonBinding struct {
	Name  string    `json:"name"`
	Value *jsonTerm `json:"value"`
}

type jsonConstant struct {
	Kind string `json:"kind"`
	I    string `json:"int,omitempty"`
	Hex  string `json:"bytes,omitempty"`
	Str  string `json:"text,omitempty"`
	Bool bool   `json:"bool,omitempty"`
	Pair bool   `json:"pair,omitempty"`
}

func constantKindName(k ConstantKind) string {
	switch k {
	case KindInteger:
		return "integer"
	case KindByteString:
		return "bytestring"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindUnit:
		return "unit"
	default:
		return "raw"
	}
}

func marshalConstant(c *Constant) (*jsonConstant, error) {
	jc := &jsonConstant{Kind: constantKindName(c.Kind)}
	switch c.Kind {
	case KindInteger:
		jc.I = c.I.String()
	case KindByteString:
		jc.Hex = hex.EncodeToString(c.Bytes)
	case KindText:
		jc.Str = c.Str
	case KindBool:
		jc.Bool = c.Bool
	case KindUnit:
		jc.Pair = c.Pair
	default:
		return nil, fmt.Errorf("ast: cannot JSON-encode a KindRaw constant")
	}
	return jc, nil
}

func unmarshalConstant(jc *jsonConstant) (*Constant, error) {
	switch jc.Kind {
	case "integer":
		i, ok := new(big.Int).SetString(jc.I, 10)
		if !ok {
			return nil, fmt.Errorf("ast: invalid integer constant %q", jc.I)
		}
		return &Constant{Kind: KindInteger, I: i}, nil
	case "bytestring":
		b, err := hex.DecodeString(jc.Hex)
		if err != nil {
			return nil, fmt.Errorf("ast: invalid bytestring constant: %w", err)
		}
		return &Constant{Kind: KindByteString, Bytes: b}, nil
	case "text":
		return &Constant{Kind: KindText, Str: jc.Str}, nil
	case "bool":
		return &Constant{Kind: KindBool, Bool: jc.Bool}, nil
	case "unit":
		return &Constant{Kind: KindUnit, Pair: jc.Pair}, nil
	default:
		return nil, fmt.Errorf("ast: unsupported constant kind %q in source JSON", jc.Kind)
	}
}

func marshalTerm(t Term) (*jsonTerm, error) {
	switch n := t.(type) {
	case *Var:
		return &jsonTerm{Kind: "var", Name: n.Name}, nil

	case *Lambda:
		body, err := marshalTerm(n.Body)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "lambda", Params: n.Params, Body: body}, nil

	case *Apply:
		fun, err := marshalTerm(n.Fun)
		if err != nil {
			return nil, err
		}
		args := make([]*jsonTerm, len(n.Args))
		for i, a := range n.Args {
			args[i], err = marshalTerm(a)
			if err != nil {
				return nil, err
			}
		}
		return &jsonTerm{Kind: "apply", Fun: fun, Args: args}, nil

	case *Force:
		inner, err := marshalTerm(n.Inner)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "force", Inner: inner}, nil

	case *Delay:
		inner, err := marshalTerm(n.Inner)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "delay", Inner: inner}, nil

	case *Let:
		bindings := make([]jsonBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			v, err := marshalTerm(b.Value)
			if err != nil {
				return nil, err
			}
			bindings[i] = jsonBinding{Name: b.Name, Value: v}
		}
		body, err := marshalTerm(n.Body)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "let", Bindings: bindings, Body: body}, nil

	case *Ite:
		cond, err := marshalTerm(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := marshalTerm(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := marshalTerm(n.Else)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "ite", Cond: cond, Then: then, Else: els}, nil

	case *BuiltIn:
		return &jsonTerm{Kind: "builtin", Op: n.Op.String()}, nil

	case *Error:
		return &jsonTerm{Kind: "error"}, nil

	case *EmptyList:
		sample, err := marshalConstant(&n.Sample)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "emptylist", Sample: sample}, nil

	case *Constant:
		c, err := marshalConstant(n)
		if err != nil {
			return nil, err
		}
		return &jsonTerm{Kind: "constant", Constant: c}, nil

	case *Pattern:
		// Source JSON never carries a Pattern: it is only ever produced
		// by internal/sugar during tree construction, never read back.
		return nil, fmt.Errorf("ast: cannot JSON-encode a Pattern (%s); lower it first", n.Kind.Name())

	default:
		return nil, fmt.Errorf("ast: unhandled Term kind in JSON encoder")
	}
}

var builtinByName = func() map[string]BuiltinOp {
	m := make(map[string]BuiltinOp, len(builtinNames))
	for i, name := range builtinNames {
		m[name] = BuiltinOp(i)
	}
	return m
}()

func unmarshalTerm(n *jsonTerm) (Term, error) {
	if n == nil {
		return nil, fmt.Errorf("ast: missing term node")
	}
	switch n.Kind {
	case "var":
		return &Var{Name: n.Name}, nil

	case "lambda":
		body, err := unmarshalTerm(n.Body)
		if err != nil {
			return nil, err
		}
		return &Lambda{Params: n.Params, Body: body}, nil

	case "apply":
		fun, err := unmarshalTerm(n.Fun)
		if err != nil {
			return nil, err
		}
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i], err = unmarshalTerm(a)
			if err != nil {
				return nil, err
			}
		}
		return &Apply{Fun: fun, Args: args}, nil

	case "force":
		inner, err := unmarshalTerm(n.Inner)
		if err != nil {
			return nil, err
		}
		return &Force{Inner: inner}, nil

	case "delay":
		inner, err := unmarshalTerm(n.Inner)
		if err != nil {
			return nil, err
		}
		return &Delay{Inner: inner}, nil

	case "let":
		bindings := make([]Binding, len(n.Bindings))
		for i, b := range n.Bindings {
			v, err := unmarshalTerm(b.Value)
			if err != nil {
				return nil, err
			}
			bindings[i] = Binding{Name: b.Name, Value: v}
		}
		body, err := unmarshalTerm(n.Body)
		if err != nil {
			return nil, err
		}
		return &Let{Bindings: bindings, Body: body}, nil

	case "ite":
		cond, err := unmarshalTerm(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := unmarshalTerm(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := unmarshalTerm(n.Else)
		if err != nil {
			return nil, err
		}
		return &Ite{Cond: cond, Then: then, Else: els}, nil

	case "builtin":
		op, ok := builtinByName[n.Op]
		if !ok {
			return nil, fmt.Errorf("ast: unknown builtin %q in source JSON", n.Op)
		}
		return &BuiltIn{Op: op}, nil

	case "error":
		return &Error{}, nil

	case "emptylist":
		sample, err := unmarshalConstant(n.Sample)
		if err != nil {
			return nil, err
		}
		return &EmptyList{Sample: *sample}, nil

	case "constant":
		return unmarshalConstant(n.Constant)

	default:
		return nil, fmt.Errorf("ast: unknown term kind %q in source JSON", n.Kind)
	}
}

// MarshalJSON serialises prog as a kind-tagged Term tree.
func (p *Program) MarshalJSON() ([]byte, error) {
	body, err := marshalTerm(p.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Version [3]int    `json:"version"`
		Body    *jsonTerm `json:"body"`
	}{p.Version, body})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Program) UnmarshalJSON(data []byte) error {
	var raw struct {
		Version [3]int    `json:"version"`
		Body    *jsonTerm `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	body, err := unmarshalTerm(raw.Body)
	if err != nil {
		return err
	}
	p.Version = raw.Version
	p.Body = body
	return nil
}
