// fault_test.go — verification of constructors, fluent API, and copy-on-write.
package xgxfault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type retry int

const (
	retryNo retry = iota
	retryYes
)

type fieldName string

func TestNew_CapturesCallerLocation(t *testing.T) {
	t.Parallel()

	f := New("boom")
	require.Equal(t, "boom", f.Message())
	require.True(t, strings.HasSuffix(f.Location().File, "fault_test.go"),
		"location file: %s", f.Location().File)
	require.Greater(t, f.Location().Line, 0)
	require.Empty(t, f.Causes())
	require.Nil(t, f.External())
}

func TestNewAt_UsesSuppliedLocation(t *testing.T) {
	t.Parallel()

	loc := Location{File: "io.go", Line: 7}
	f := NewAt("boom", loc)
	require.Equal(t, loc, f.Location())
	require.Equal(t, "io.go:7", f.Location().String())
}

func TestWrap_SingleCause(t *testing.T) {
	t.Parallel()

	leaf := New("disk full")
	w := Wrap("write failed", leaf)

	require.Equal(t, "write failed", w.Message())
	require.Len(t, w.Causes(), 1)
	require.Same(t, leaf, w.Causes()[0])

	t.Run("nil cause yields a leaf", func(t *testing.T) {
		f := Wrap("boom", nil)
		require.Empty(t, f.Causes())
	})
}

func TestWrapAll_FanIn(t *testing.T) {
	t.Parallel()

	a := New("field 'age' invalid")
	b := New("field 'name' invalid")
	w := WrapAll("validation failed", a, nil, b)

	got := w.Causes()
	require.Len(t, got, 2, "nil causes are skipped")
	require.Same(t, a, got[0])
	require.Same(t, b, got[1])

	t.Run("all nil yields a leaf", func(t *testing.T) {
		f := WrapAll("boom", nil, nil)
		require.Empty(t, f.Causes())
	})
}

func TestAttach_CopyOnWrite(t *testing.T) {
	t.Parallel()

	base := New("boom")
	with := base.Attach(retryNo)

	require.NotSame(t, base, with)
	require.Empty(t, Attachments[retry](base), "receiver must not be mutated")
	require.Equal(t, []retry{retryNo}, Attachments[retry](with))

	t.Run("nil value is a no-op", func(t *testing.T) {
		require.Same(t, base, base.Attach(nil))
	})

	t.Run("same kind twice keeps both in order", func(t *testing.T) {
		f := base.Attach(retryNo).Attach(retryYes)
		require.Equal(t, []retry{retryNo, retryYes}, Attachments[retry](f))
	})
}

func TestAttachOverride_ReplacesSameKind(t *testing.T) {
	t.Parallel()

	f := New("boom").
		AttachOverride(retryNo).
		AttachOverride('c').
		AttachOverride(retryYes)

	require.Equal(t, []retry{retryYes}, Attachments[retry](f))
	v, ok := Attachment[retry](f)
	require.True(t, ok)
	require.Equal(t, retryYes, v)

	t.Run("duplicates collapse to the overriding value", func(t *testing.T) {
		f := New("boom").Attach(retryNo).Attach(retryYes).AttachOverride(retryNo)
		require.Equal(t, []retry{retryNo}, Attachments[retry](f))
	})

	t.Run("other kinds keep their position", func(t *testing.T) {
		f := New("boom").Attach(fieldName("age")).Attach(retryNo).AttachOverride(retryYes)
		require.Equal(t, []fieldName{"age"}, Attachments[fieldName](f))
		require.Equal(t, []retry{retryYes}, Attachments[retry](f))
	})
}

func TestSealedCauseIsUnaffectedByLaterAttach(t *testing.T) {
	t.Parallel()

	leaf := New("disk full")
	tree := Wrap("write failed", leaf)

	// Attaching to the sealed leaf yields a new detached value; the tree the
	// leaf was sealed into must not observe it.
	detached := leaf.Attach(retryYes)
	require.NotSame(t, leaf, detached)
	require.False(t, Has[retry](tree))
	require.True(t, Has[retry](detached))
}

func TestContext_WrapsReceiver(t *testing.T) {
	t.Parallel()

	leaf := New("disk full")
	f := leaf.Context("write failed")
	require.Equal(t, "write failed", f.Message())
	require.Len(t, f.Causes(), 1)
	require.Same(t, leaf, f.Causes()[0])

	t.Run("nil receiver creates a leaf", func(t *testing.T) {
		var nilF *Fault
		f := nilF.Context("boom")
		require.NotNil(t, f)
		require.Equal(t, "boom", f.Message())
		require.Empty(t, f.Causes())
	})
}

func TestCauses_ReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	a := New("a")
	b := New("b")
	w := WrapAll("parent", a, b)

	got := w.Causes()
	got[0] = nil
	require.Same(t, a, w.Causes()[0], "mutating the returned slice must not affect the tree")
}

func TestUnwrap_ExposesCausesAndForeign(t *testing.T) {
	t.Parallel()

	t.Run("leaf has nothing to unwrap", func(t *testing.T) {
		require.Nil(t, New("boom").Unwrap())
	})

	t.Run("children in stored order", func(t *testing.T) {
		a := New("a")
		b := New("b")
		w := WrapAll("parent", a, b)
		got := w.Unwrap()
		require.Len(t, got, 2)
		require.Same(t, a, got[0])
		require.Same(t, b, got[1])
	})
}
