package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// should generate a typed get/set pair per field
func TestAccessorsGen(t *testing.T) {
	out := AccessorsGen("state", "Todo", []Field{
		{Name: "title", GoType: "string"},
		{Name: "count", GoType: "int"},
	})

	assert.Contains(t, out, "package state")
	assert.Contains(t, out, "type TodoState struct {")
	assert.Contains(t, out, "func NewTodoState(sys *observer.System) *TodoState {")
	assert.Contains(t, out, `observer.DefineReactive(rec, "title", "", nil, false)`)
	assert.Contains(t, out, `observer.DefineReactive(rec, "count", 0, nil, false)`)
	assert.Contains(t, out, "func (s *TodoState) Title() string {")
	assert.Contains(t, out, "func (s *TodoState) SetTitle(v string) {")
	assert.Contains(t, out, "func (s *TodoState) Count() int {")
	assert.Contains(t, out, "func (s *TodoState) SetCount(v int) {")
}

func TestZeroLiteral(t *testing.T) {
	assert.Equal(t, `""`, zeroLiteral("string"))
	assert.Equal(t, "0", zeroLiteral("float64"))
	assert.Equal(t, "false", zeroLiteral("bool"))
	assert.Equal(t, "nil", zeroLiteral("[]any"))
}
