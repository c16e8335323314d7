package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharegov/internal/domain"
)

func TestResult_EmptyIsSuccess(t *testing.T) {
	var r Result
	assert.True(t, r.OK())
	assert.NoError(t, r.Err())
}

func TestResult_AggregatesAllFailures(t *testing.T) {
	var r Result
	r.Add(domain.CodeNonExistingUser, "admins", "user %q does not exist", "ghost")
	r.Add(domain.CodeInvalidAccessType, "defaultAccessTypes", "invalid access type %q", "bogus")

	assert.False(t, r.OK())

	err := r.Err()
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Failures, 2)
	assert.Equal(t, domain.CodeNonExistingUser, verr.Failures[0].Code)
	assert.Equal(t, `user "ghost" does not exist`, verr.Failures[0].Message)
	assert.Contains(t, err.Error(), "ghost")
	assert.Contains(t, err.Error(), "bogus")
}
