package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShanizOgallo2/evaluator"
)

func TestRegistryDefaults(t *testing.T) {
	reg := evaluator.NewRegistry()
	v, err := reg.Var("pi")
	require.NoError(t, err)
	assert.Equal(t, 3.1415926535, v)
	v, err = reg.Var("e")
	require.NoError(t, err)
	assert.Equal(t, 2.7182818284, v)
	for _, name := range []string{"sin", "cos", "sqrt", "log"} {
		assert.True(t, reg.HasFunc(name), name)
	}
	assert.False(t, reg.HasFunc("tan"))
}

func TestRegistryOptions(t *testing.T) {
	reg := evaluator.NewRegistry(
		evaluator.SetVar("x", 1),
		evaluator.SetVars(map[string]float64{"y": 2, "z": 3}),
		evaluator.SetFunc("half", evaluator.Unary(func(x float64) float64 { return x / 2 })),
	)
	v, err := reg.Var("y")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	require.True(t, reg.HasFunc("half"))
	fn, err := reg.Func("half")
	require.NoError(t, err)
	assert.Equal(t, 8.0, fn.Apply(16))
}

func TestRegistryOverwrite(t *testing.T) {
	reg := evaluator.NewRegistry()
	reg.Set("pi", 3).Set("tau", 6)
	v, err := reg.Var("pi")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	v, err = reg.Var("tau")
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	reg.Register("sqrt", evaluator.Unary(func(x float64) float64 { return x }))
	fn, err := reg.Func("sqrt")
	require.NoError(t, err)
	assert.Equal(t, 16.0, fn.Apply(16))
}

func TestRegistryUndefined(t *testing.T) {
	reg := evaluator.NewRegistry()
	_, err := reg.Var("z")
	var serr *evaluator.SymbolError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "z", serr.Name)
	assert.False(t, serr.Func)
	assert.EqualError(t, err, `undefined variable: "z"`)

	_, err = reg.Func("cube")
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "cube", serr.Name)
	assert.True(t, serr.Func)
	assert.EqualError(t, err, `undefined function: "cube"`)
}

func TestRegistryVars(t *testing.T) {
	reg := evaluator.NewRegistry(evaluator.SetVar("x", 1))
	reg.Set("a", 2)
	assert.Equal(t, []string{"a", "e", "pi", "x"}, reg.Vars())
}

func TestRegistryClone(t *testing.T) {
	reg := evaluator.NewRegistry(evaluator.SetVar("x", 1))
	cl := reg.Clone(evaluator.SetVar("y", 3))
	cl.Set("x", 2)
	cl.Register("half", evaluator.Unary(func(x float64) float64 { return x / 2 }))

	v, err := reg.Var("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	_, err = reg.Var("y")
	assert.Error(t, err)
	assert.False(t, reg.HasFunc("half"))

	v, err = cl.Var("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = cl.Var("y")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.True(t, cl.HasFunc("half"))
}

func TestRegistrySession(t *testing.T) {
	// A registry keeps its bindings between evaluations.
	reg := evaluator.NewRegistry()
	v, err := reg.Eval("4^2")
	require.NoError(t, err)
	reg.Set("last", v)
	v, err = reg.Eval("sqrt(last)")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestRegistryClassification(t *testing.T) {
	// Registering a function changes how its name lexes.
	reg := evaluator.NewRegistry()
	toks := evaluator.Tokenize("twice(21)", reg)
	require.NotEmpty(t, toks)
	assert.Equal(t, evaluator.KindVariable, toks[0].Kind)

	reg.Register("twice", evaluator.Unary(func(x float64) float64 { return 2 * x }))
	toks = evaluator.Tokenize("twice(21)", reg)
	require.NotEmpty(t, toks)
	assert.Equal(t, evaluator.KindFunction, toks[0].Kind)

	v, err := reg.Eval("twice(21)")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestRegistryDegrees(t *testing.T) {
	// The trigonometric defaults take degrees, not radians.
	reg := evaluator.NewRegistry()
	v, err := reg.Eval("sin(30)")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)
	v, err = reg.Eval("cos(180)")
	require.NoError(t, err)
	assert.InDelta(t, -1, v, 1e-12)
	v, err = reg.Eval("sin(90)")
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)
}
