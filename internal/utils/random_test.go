package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/validation"
)

func TestGenerateEmailLocalPart(t *testing.T) {
	local := GenerateEmailLocalPart("王伟")
	assert.True(t, strings.HasPrefix(local, "wangwei"), local)
	assert.LessOrEqual(t, len(local), len("wangwei")+3)
}

func TestGenerateRandomCourses(t *testing.T) {
	for i := 0; i < 20; i++ {
		parts := strings.Split(GenerateRandomCourses(), ",")
		require.NotEmpty(t, parts)
		for _, p := range parts {
			assert.Contains(t, courses, p)
		}
	}
}

func TestGenerateRandomEmployee_PassesValidation(t *testing.T) {
	validate, _, err := validation.New()
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		in := GenerateRandomEmployee("example.com")
		require.NoError(t, validate.Struct(in))
		assert.True(t, strings.HasSuffix(in.Email, "@example.com"))
		assert.Len(t, in.Phone, 11)
	}
}
