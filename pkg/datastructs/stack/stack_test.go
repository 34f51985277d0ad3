package stack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{"one", 1, false},
		{"hundred", 100, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.capacity)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidCapacity))
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, s.Capacity())
			assert.True(t, s.IsEmpty())
			assert.False(t, s.IsFull())
			assert.Equal(t, 0, s.Len())
		})
	}
}

// =============================================================================
// Push / Pop Tests
// =============================================================================

func TestPushPop_LIFO(t *testing.T) {
	tests := []struct {
		name  string
		items []int
	}{
		{"single", []int{42}},
		{"ascending", []int{1, 2, 3, 4, 5}},
		{"with_negative_one", []int{-1, 7, -1}},
		{"zeros", []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(len(tt.items))
			require.NoError(t, err)

			for _, item := range tt.items {
				require.NoError(t, s.Push(item))
			}
			for i := len(tt.items) - 1; i >= 0; i-- {
				got, err := s.Pop()
				require.NoError(t, err)
				assert.Equal(t, tt.items[i], got)
			}
			assert.True(t, s.IsEmpty())
		})
	}
}

func TestPush_Full(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Push(i))
	}
	assert.True(t, s.IsFull())

	err = s.Push(4)
	assert.True(t, errors.Is(err, ErrStackFull))
	assert.Equal(t, 3, s.Len())

	// The rejected push must not have replaced the top.
	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top)
}

func TestPop_Empty(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, err := s.Pop()
		assert.True(t, errors.Is(err, ErrStackEmpty))
		assert.Equal(t, 0, v)
	}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestPop_NegativeOneIsData(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)
	require.NoError(t, s.Push(-1))

	v, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, -1, v)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrStackEmpty)
}

func TestPushPop_Interleaved(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	v, _ := s.Pop()
	assert.Equal(t, 2, v)
	require.NoError(t, s.Push(3))
	require.NoError(t, s.Push(4))
	require.NoError(t, s.Push(5))
	assert.True(t, s.IsFull())
	assert.ErrorIs(t, s.Push(6), ErrStackFull)

	for _, want := range []int{5, 4, 3, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

// =============================================================================
// Peek Tests
// =============================================================================

func TestPeek(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrStackEmpty)

	require.NoError(t, s.Push(9))
	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 1, s.Len(), "Peek must not remove")
}

// =============================================================================
// Reset / Release Tests
// =============================================================================

func TestReset(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}

	s.Reset()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 3, s.Capacity())

	// Full capacity is available again.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}
	assert.True(t, s.IsFull())
}

func TestRelease(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)
	require.NoError(t, s.Push(1))

	require.NoError(t, s.Release())

	assert.ErrorIs(t, s.Push(2), ErrReleased)
	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrReleased)
	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, s.Release(), ErrReleased)
}
