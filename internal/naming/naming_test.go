package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single uppercase letter", input: "A", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		// Separators
		{name: "spaces", input: "get user by id", want: "GetUserById"},
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "dots", input: "com.example.api", want: "ComExampleApi"},
		{name: "path-like", input: "/api/v1/users", want: "ApiV1Users"},
		{name: "punctuation", input: "Create (admin) user!", want: "CreateAdminUser"},
		{name: "only separators", input: " - ", want: ""},

		// Existing case is kept
		{name: "camelCase", input: "getUser", want: "GetUser"},
		{name: "acronym", input: "list HTTP routes", want: "ListHTTPRoutes"},

		// Unicode
		{name: "accented letters", input: "éditer profil", want: "ÉditerProfil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestIsComponentName(t *testing.T) {
	assert.True(t, isComponentName("GetUser"))
	assert.True(t, isComponentName("user.v2_get-all"))
	assert.False(t, isComponentName(""))
	assert.False(t, isComponentName("Get user"))
	assert.False(t, isComponentName("users/{id}"))
}

func TestComponentName(t *testing.T) {
	assert.Equal(t, "GetUser", ComponentName("GetUser"))
	assert.Equal(t, "get_user", ComponentName("get_user"))
	assert.Equal(t, "GetUserById", ComponentName("Get user by id"))
}
