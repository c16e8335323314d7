package validation

import (
	"io"
	"log/slog"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharegov/internal/domain"
)

func newValidator(f *fakeProvider) *Validator {
	return New(f, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// failuresOf asserts err is an aggregated validation error and returns its
// failures.
func failuresOf(t *testing.T, err error) []domain.ValidationFailure {
	t.Helper()
	require.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Failures)
	return verr.Failures
}

func codesOf(failures []domain.ValidationFailure) []domain.ErrorCode {
	codes := make([]domain.ErrorCode, len(failures))
	for i, f := range failures {
		codes[i] = f.Code
	}
	return codes
}

func TestValidateAdmin_DirectUserMatch(t *testing.T) {
	f := newFakeProvider()
	v := newValidator(f)

	var r Result
	err := v.validateAdmin(context.Background(), "alice", "dataset", "ds1",
		[]domain.Principal{{Type: domain.PrincipalUser, Name: "alice"}}, &r)
	require.NoError(t, err)
	assert.True(t, r.OK())
}

func TestValidateAdmin_GroupMembership(t *testing.T) {
	f := newFakeProvider()
	f.userGroups["bob"] = map[string]bool{"finance": true}
	v := newValidator(f)

	var r Result
	err := v.validateAdmin(context.Background(), "bob", "dataset", "ds1",
		[]domain.Principal{{Type: domain.PrincipalGroup, Name: "finance"}}, &r)
	require.NoError(t, err)
	assert.True(t, r.OK())
}

func TestValidateAdmin_RoleMembership(t *testing.T) {
	f := newFakeProvider()
	f.userRoles["bob"] = map[string]bool{"steward": true}
	v := newValidator(f)

	var r Result
	err := v.validateAdmin(context.Background(), "bob", "dataset", "ds1",
		[]domain.Principal{{Type: domain.PrincipalRole, Name: "steward"}}, &r)
	require.NoError(t, err)
	assert.True(t, r.OK())
}

func TestValidateAdmin_NoMatch(t *testing.T) {
	f := newFakeProvider()
	v := newValidator(f)

	var r Result
	err := v.validateAdmin(context.Background(), "bob", "dataset", "ds1",
		[]domain.Principal{
			{Type: domain.PrincipalUser, Name: "alice"},
			{Type: domain.PrincipalGroup, Name: "finance"},
			{Type: domain.PrincipalRole, Name: "steward"},
		}, &r)
	require.NoError(t, err)

	failures := r.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, domain.CodeNotAdmin, failures[0].Code)
	assert.Contains(t, failures[0].Message, "bob")
	assert.Contains(t, failures[0].Message, "ds1")
}

func TestValidateAdmin_EmptyAdminList(t *testing.T) {
	f := newFakeProvider()
	v := newValidator(f)

	var r Result
	err := v.validateAdmin(context.Background(), "bob", "project", "p1", nil, &r)
	require.NoError(t, err)
	require.Len(t, r.Failures(), 1)
	assert.Equal(t, domain.CodeNotAdmin, r.Failures()[0].Code)
}

func TestValidatePrincipals_UnresolvedReferences(t *testing.T) {
	f := newFakeProvider()
	f.users["alice"] = 1
	v := newValidator(f)

	var r Result
	err := v.validatePrincipals(context.Background(), []domain.Principal{
		{Type: domain.PrincipalUser, Name: "alice"},
		{Type: domain.PrincipalUser, Name: "ghost"},
		{Type: domain.PrincipalGroup, Name: "nogroup"},
		{Type: domain.PrincipalRole, Name: "norole"},
	}, "admins", &r)
	require.NoError(t, err)

	failures := r.Failures()
	require.Len(t, failures, 3)
	assert.Equal(t, []domain.ErrorCode{
		domain.CodeNonExistingUser,
		domain.CodeNonExistingGroup,
		domain.CodeNonExistingRole,
	}, codesOf(failures))
	for _, fl := range failures {
		assert.Equal(t, "admins", fl.Field)
	}
}

func TestValidateACL_UnresolvedKeys(t *testing.T) {
	f := newFakeProvider()
	f.users["alice"] = 1
	f.groups["finance"] = 1
	v := newValidator(f)

	var r Result
	err := v.validateACL(context.Background(), &domain.ACL{
		Users:  map[string]string{"alice": "ADMIN", "ghost": "VIEW"},
		Groups: map[string]string{"finance": "VIEW"},
		Roles:  map[string]string{"norole": "VIEW"},
	}, "acl", &r)
	require.NoError(t, err)

	failures := r.Failures()
	require.Len(t, failures, 2)
	for _, fl := range failures {
		assert.Equal(t, "acl", fl.Field)
	}
}

func TestValidateACL_Nil(t *testing.T) {
	v := newValidator(newFakeProvider())

	var r Result
	require.NoError(t, v.validateACL(context.Background(), nil, "acl", &r))
	assert.True(t, r.OK())
}

func TestCallerRequired(t *testing.T) {
	f := newFakeProvider()
	f.datasets[9] = &domain.Dataset{ID: 9, Name: "ds1"}
	v := newValidator(f)

	err := v.ValidateDatasetUpdate(context.Background(), &domain.Dataset{Name: "ds1"}, f.datasets[9])
	require.Error(t, err)
	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)
}
