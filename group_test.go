// group_test.go — fan-in collection semantics.
package xgxfault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroup_EmptyProducesNothing(t *testing.T) {
	t.Parallel()

	var g Group
	g.Add(nil)
	g.AddError(nil)
	require.Equal(t, 0, g.Len())
	require.Nil(t, g.Wrap("validation failed"))
	require.Nil(t, g.Fault())
	require.Nil(t, g.Faults())
}

func TestGroup_WrapPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	a := New("field 'age' invalid")
	b := New("field 'name' invalid")

	var g Group
	g.Add(a)
	g.Add(b)

	f := g.Wrap("validation failed")
	require.NotNil(t, f)
	require.Equal(t, "validation failed", f.Message())
	got := f.Causes()
	require.Len(t, got, 2)
	require.Same(t, a, got[0])
	require.Same(t, b, got[1])
}

func TestGroup_SingleFaultStillGetsContext(t *testing.T) {
	t.Parallel()

	leaf := New("boom")
	var g Group
	g.Add(leaf)

	f := g.Wrap("operation failed")
	require.Len(t, f.Causes(), 1)
	require.Same(t, leaf, f.Causes()[0])
}

func TestGroup_FaultIdentityForSingle(t *testing.T) {
	t.Parallel()

	leaf := New("boom")
	var g Group
	g.Add(leaf)
	require.Same(t, leaf, g.Fault(), "single collected fault keeps its identity")

	g.Add(New("second"))
	agg := g.Fault()
	require.Equal(t, "", agg.Message())
	require.Len(t, agg.Causes(), 2)
}

func TestGroup_AddErrorBridges(t *testing.T) {
	t.Parallel()

	var g Group
	g.AddError(errors.New("dial tcp: refused"))
	g.Add(New("native"))

	f := g.Wrap("startup failed")
	require.Equal(t, "startup failed: dial tcp: refused; native", f.Error())
}

func TestGroup_ValidationScenario(t *testing.T) {
	t.Parallel()

	validate := func(id int, name string) *Fault {
		var g Group
		if id == 0 {
			g.Add(New("id must be non-zero").Attach(fieldName("id")))
		}
		if name == "" {
			g.Add(New("name must not be empty").Attach(fieldName("name")))
		}
		return g.Wrap("validation failed")
	}

	require.Nil(t, validate(1, "uwu"))

	f := validate(0, "")
	require.NotNil(t, f)
	require.Equal(t, []fieldName{"id", "name"}, Attachments[fieldName](f))
	require.Equal(t, "validation failed: id must be non-zero; name must not be empty", f.Error())
}
