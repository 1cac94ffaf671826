package refmachine

import (
	"math/big"

	"github.com/OpShin/pluthon-go/internal/backend"
)

// Run evaluates a lowered Program from the empty environment, converting
// any divergence (an Error term forced, or a runtime type mismatch) into an
// error instead of propagating the panic refmachine uses internally.
func Run(prog *backend.Program) (result Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*DivergeError); ok {
				err = de
				return
			}
			panic(r)
		}
	}()
	return Eval(prog.Body, NewEnvironment()), nil
}

// Eval reduces t to a value in env. Application is call-by-value (Delay/Force
// is the only suspension mechanism this IR has), so Apply's argument is
// evaluated eagerly before the closure or builtin runs.
func Eval(t backend.Term, env *Environment) Object {
	switch n := t.(type) {
	case *backend.Variable:
		v, ok := env.Get(n.Name)
		if !ok {
			diverge("unbound variable %q", n.Name)
		}
		return v

	case *backend.Lambda:
		return &Closure{Param: n.Param, Body: n.Body, Env: env}

	case *backend.Apply:
		fn := Eval(n.Fun, env)
		arg := Eval(n.Arg, env)
		return apply(fn, arg)

	case *backend.Force:
		return forceValue(Eval(n.Term, env))

	case *backend.Delay:
		return &Delayed{Term: n.Term, Env: env}

	case *backend.ErrorTerm:
		diverge("evaluated Error")
		return nil

	case *backend.Builtin:
		return &PartialBuiltin{Fun: n.Fun}

	case *backend.Constant:
		return evalConstant(n)

	default:
		diverge("refmachine: unhandled backend term kind")
		return nil
	}
}

func forceValue(v Object) Object {
	switch t := v.(type) {
	case *Delayed:
		return Eval(t.Term, t.Env)
	case *PartialBuiltin:
		// Force on a builtin instantiates a type argument in real UPLC;
		// this evaluator carries no type level, so it is a no-op that
		// leaves the builtin ready for its next value argument.
		return t
	default:
		diverge("force of a non-delayed, non-builtin value (%s)", v.Type())
		return nil
	}
}

func apply(fn Object, arg Object) Object {
	switch f := fn.(type) {
	case *Closure:
		callEnv := NewEnclosedEnvironment(f.Env)
		callEnv.Set(f.Param, arg)
		return Eval(f.Body, callEnv)

	case *PartialBuiltin:
		args := make([]Object, len(f.Args)+1)
		copy(args, f.Args)
		args[len(f.Args)] = arg
		if len(args) < builtinArity(f.Fun) {
			return &PartialBuiltin{Fun: f.Fun, Args: args}
		}
		return dispatchBuiltin(f.Fun, args)

	default:
		diverge("applying a non-function value (%s)", fn.Type())
		return nil
	}
}

func evalConstant(c *backend.Constant) Object {
	switch c.Kind {
	case backend.ConstInteger:
		return &Integer{Value: new(big.Int).Set(c.I)}
	case backend.ConstByteString:
		return &ByteString{Value: append([]byte(nil), c.Bytes...)}
	case backend.ConstString:
		return &String{Value: c.Str}
	case backend.ConstBool:
		return &Bool{Value: c.Bool}
	case backend.ConstUnit:
		return &Unit{}
	default:
		diverge("refmachine: unsupported constant kind")
		return nil
	}
}
