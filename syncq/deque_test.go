package syncq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeque_Lanes(t *testing.T) {
	t.Parallel()

	d := newDeque[string]()
	d.pushBack("b1")
	d.pushFront("f1")
	d.pushBack("b2")
	d.pushFront("f2")
	assert.Equal(t, 4, d.len())

	assert.Equal(t, "f2", d.popFront())
	assert.Equal(t, "f1", d.popFront())
	assert.Equal(t, "b1", d.popFront())
	d.pushFront("f3")
	assert.Equal(t, []string{"f3", "b2"}, d.drain())
	assert.Equal(t, 0, d.len())
}

func TestDeque_PopReleasesFrontSlot(t *testing.T) {
	t.Parallel()

	d := newDeque[*int]()
	x := 1
	d.pushFront(&x)
	d.pushFront(&x)
	d.popFront()

	// the vacated slot in the backing array no longer pins the value
	assert.Nil(t, d.front[:2][1])
}

func TestDeque_RingGrowth(t *testing.T) {
	t.Parallel()

	d := newDeque[int]()
	for i := 0; i < 100; i++ {
		d.pushBack(i)
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, d.popFront())
	}
}
