package evaluator

import "math"

// Registry holds the variables and functions an expression may name. It is
// not safe to use a Registry concurrently; Clone gives each goroutine its
// own copy.
type Registry struct {
	vars  map[string]float64
	funcs map[string]Func
}

// RegistryOption is an option used when creating or cloning a registry.
type RegistryOption interface {
	regOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	funcopt struct {
		name string
		fn   Func
	}
)

func (varopt) regOption()  {}
func (varsopt) regOption() {}
func (funcopt) regOption() {}

// SetVar sets the value of a variable in the registry.
func SetVar(name string, val float64) RegistryOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the registry.
func SetVars(vars map[string]float64) RegistryOption {
	return varsopt(vars)
}

// SetFunc registers a function in the registry.
func SetFunc(name string, fn Func) RegistryOption {
	return funcopt{name, fn}
}

// NewRegistry creates a registry holding the default symbols and applies
// options to it. The defaults are the variables pi and e and the functions
// sin, cos, sqrt, and log.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := Registry{vars: defaultVars, funcs: defaultFuncs}
	return r.Clone(opts...)
}

// Clone creates a copy of a registry and applies options to it. The copy
// shares no state with the original: setting a variable or registering a
// function on one has no effect on the other.
func (r *Registry) Clone(opts ...RegistryOption) *Registry {
	n := Registry{
		vars:  make(map[string]float64, len(r.vars)),
		funcs: make(map[string]Func, len(r.funcs)),
	}
	for name, val := range r.vars {
		n.vars[name] = val
	}
	for name, fn := range r.funcs {
		n.funcs[name] = fn
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.vars[k] = v
			}
		case funcopt:
			n.funcs[opt.name] = opt.fn
		default:
			panic("evaluator: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable, silently replacing any previous value.
// Returns r for chaining.
func (r *Registry) Set(name string, val float64) *Registry {
	r.vars[name] = val
	return r
}

// Var returns the value of a variable. If there is no variable by that
// name, the error is a *SymbolError.
func (r *Registry) Var(name string) (float64, error) {
	val, ok := r.vars[name]
	if !ok {
		return 0, &SymbolError{Name: name}
	}
	return val, nil
}

// Register binds a function to a name, silently replacing any function
// already bound to it. Returns r for chaining. A registered function
// changes how expressions lex: its name becomes a Function token rather
// than a Variable token.
func (r *Registry) Register(name string, fn Func) *Registry {
	r.funcs[name] = fn
	return r
}

// Func returns the function registered under a name. If there is none, the
// error is a *SymbolError.
func (r *Registry) Func(name string) (Func, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, &SymbolError{Name: name, Func: true}
	}
	return fn, nil
}

// HasFunc reports whether a function is registered under name.
func (r *Registry) HasFunc(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Vars returns the names of all variables in the registry, sorted.
func (r *Registry) Vars() []string {
	names := make([]string, 0, len(r.vars))
	for name := range r.vars {
		names = append(names, name)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that
// has reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Func is a function of one variable callable from an expression.
type Func interface {
	// Apply evaluates the function at x.
	Apply(x float64) float64
}

type unary func(float64) float64

func (f unary) Apply(x float64) float64 {
	return f(x)
}

// Unary wraps a function of one variable into a Func:
//
//	reg.Register("abs", evaluator.Unary(math.Abs))
func Unary(f func(float64) float64) Func {
	return unary(f)
}

// defaultVars and defaultFuncs are the symbols every new registry starts
// with. pi and e are fixed ten-digit literals rather than the math package
// constants. sin and cos take their argument in degrees; log is the
// base-10 logarithm. None of the functions checks its domain: sqrt and log
// of a negative yield NaN, as their math package counterparts do.
var defaultVars = map[string]float64{
	"pi": 3.1415926535,
	"e":  2.7182818284,
}

var defaultFuncs = map[string]Func{
	"sin": Unary(func(x float64) float64 {
		return math.Sin(x * math.Pi / 180)
	}),
	"cos": Unary(func(x float64) float64 {
		return math.Cos(x * math.Pi / 180)
	}),
	"sqrt": Unary(math.Sqrt),
	"log":  Unary(math.Log10),
}
