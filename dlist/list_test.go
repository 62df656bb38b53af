package dlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborio/arborio/dlist"
)

func TestPushFrontPushBack(t *testing.T) {
	l := dlist.New[int]()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Front().Value)
	assert.Equal(t, 3, l.Back().Value)

	var got []int
	l.Each(func(n *dlist.Node[int]) bool { got = append(got, n.Value); return true })
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIntrusiveLinkage(t *testing.T) {
	l := dlist.New[int]()
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	assert.Equal(t, b, a.Next())
	assert.Equal(t, a, b.Prev())
	assert.Equal(t, c, b.Next())
	assert.Nil(t, l.Front().Prev())
}

func TestRemove(t *testing.T) {
	l := dlist.New[int]()
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	l.Remove(b)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, c, a.Next())
	assert.Equal(t, a, c.Prev())

	l.Remove(a)
	l.Remove(c)
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
}

func TestEachStopsEarly(t *testing.T) {
	l := dlist.New[int]()
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	var visited []int
	l.Each(func(n *dlist.Node[int]) bool {
		visited = append(visited, n.Value)
		return n.Value < 2
	})
	assert.Equal(t, []int{0, 1, 2}, visited)
}
