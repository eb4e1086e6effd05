package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/str"
)

func TestViewCopyIsIndependent(t *testing.T) {
	buf := []byte("hello")
	v := str.View(buf)
	c := v.Copy()

	buf[0] = 'H'

	assert.Equal(t, "Hello", string(buf))
	assert.Equal(t, "hello", c.String())
}

func TestViewEmpty(t *testing.T) {
	assert.True(t, str.View("").Empty())
	assert.False(t, str.View("x").Empty())
}

func TestViewEqual(t *testing.T) {
	assert.True(t, str.View("a").Equal(str.View("a")))
	assert.False(t, str.View("a").Equal(str.View("b")))
}
