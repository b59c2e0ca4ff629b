package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickProtocol(t *testing.T) {
	var s Set
	a, b, c := VertexKey(0), VertexKey(1), VertexKey(2)

	s.Click(a, Modifiers{})
	assert.Equal(t, []Key{a}, s.Keys())

	s.Click(b, Modifiers{Shift: true})
	s.Click(b, Modifiers{Shift: true})
	assert.Equal(t, []Key{a, b}, s.Keys())

	s.Click(a, Modifiers{Ctrl: true})
	assert.Equal(t, []Key{b}, s.Keys())
	s.Click(c, Modifiers{Meta: true})
	assert.Equal(t, []Key{b, c}, s.Keys())

	// shift together with ctrl toggles rather than adds
	s.Click(c, Modifiers{Shift: true, Ctrl: true})
	assert.Equal(t, []Key{b}, s.Keys())

	s.Click(a, Modifiers{})
	assert.Equal(t, []Key{a}, s.Keys())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(a))
}

func TestModifiers(t *testing.T) {
	assert.True(t, Modifiers{}.None())
	assert.False(t, Modifiers{Meta: true}.None())
	assert.True(t, Modifiers{Shift: true}.Additive())
	assert.False(t, Modifiers{Shift: true, Meta: true}.Additive())
	assert.True(t, Modifiers{Shift: true, Meta: true}.Toggle())
}

func TestVerticesSharedOnce(t *testing.T) {
	var s Set
	s.Add(FaceKey([3]int{0, 1, 2}))
	s.Add(FaceKey([3]int{0, 2, 3}))
	assert.Equal(t, []int{0, 1, 2, 3}, s.Vertices())

	s.Replace(VertexKey(7))
	assert.Equal(t, []int{7}, s.Vertices())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "v4", VertexKey(4).String())
	assert.Equal(t, "f3-4-5", FaceKey([3]int{3, 4, 5}).String())
	assert.NotEqual(t, VertexKey(0), FaceKey([3]int{0, -1, -1}))

	m, err := ParseMode("Face")
	require.NoError(t, err)
	assert.Equal(t, Face, m)
	assert.Equal(t, "face", m.String())
	_, err = ParseMode("edge")
	assert.Error(t, err)
}
