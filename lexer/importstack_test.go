package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/lexer"
)

func TestImportStackPushPopIsLIFO(t *testing.T) {
	stack := lexer.NewImportStack()
	stack.Push(lexer.NewSavedState("a.wai", 1, 1, 1, 1, nil))
	stack.Push(lexer.NewSavedState("b.wai", 2, 2, 1, 1, nil))

	assert.Equal(t, 2, stack.Len())
	top := stack.Pop()
	assert.Equal(t, "b.wai", top.Filename)
	assert.Equal(t, 1, stack.Len())
}

func TestImportStackContainsDetectsCycle(t *testing.T) {
	stack := lexer.NewImportStack()
	stack.Push(lexer.NewSavedState("a.wai", 1, 1, 1, 1, nil))

	assert.True(t, stack.Contains("a.wai"))
	assert.False(t, stack.Contains("b.wai"))
}

func TestImportStackPopOnEmptyReturnsNil(t *testing.T) {
	stack := lexer.NewImportStack()
	assert.Nil(t, stack.Pop())
}
