package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		wantProperty  string
		wantContainer string
	}{
		{"bare name", "id", "id", ""},
		{"dotted", "user.address.city", "city", "user.address"},
		{"single dot", "data.id", "id", "data"},
		{"bracketed", "items[id]", "id", "items"},
		{"bracket first token only", "a[b][c]", "b", "a[c]"},
		{"trailing array marker", "data.tags[]", "tags", "data"},
		{"bare array marker", "tags[]", "tags", ""},
		{"dot wins over bracket", "list[x].name", "name", "list[x]"},
		{"unbalanced bracket", "items[", "items[", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property, container := Resolve(tt.path, Root)
			assert.Equal(t, tt.wantProperty, property)
			assert.Equal(t, tt.wantContainer, container)
		})
	}
}

func TestResolveDefaultContainer(t *testing.T) {
	property, container := Resolve("name", "body")
	assert.Equal(t, "name", property)
	assert.Equal(t, "body", container)

	// An explicit container ignores the default.
	property, container = Resolve("user.name", "body")
	assert.Equal(t, "name", property)
	assert.Equal(t, "user", container)
}

func TestIsNested(t *testing.T) {
	assert.False(t, IsNested("id"))
	assert.False(t, IsNested("tags[]"))
	assert.True(t, IsNested("data.id"))
	assert.True(t, IsNested("items[id]"))
}
