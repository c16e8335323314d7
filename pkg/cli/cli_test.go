package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sharegov/internal/db"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gdsctl")
}

func TestAuthTokenCommand(t *testing.T) {
	out, err := runCommand(t, "auth", "token", "--principal", "analyst1", "--secret", "s3cret", "--admin")
	require.NoError(t, err)

	token, parseErr := jwt.Parse(out[:len(out)-1], func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, parseErr)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "analyst1", claims["sub"])
	assert.Equal(t, true, claims["admin"])
}

func TestAuthTokenRequiresPrincipal(t *testing.T) {
	_, err := runCommand(t, "auth", "token")
	require.Error(t, err)
}

func TestSeedRequiresSource(t *testing.T) {
	_, err := runCommand(t, "seed")
	require.Error(t, err)
}

func TestApplySeed(t *testing.T) {
	w, _ := db.OpenTestSQLite(t)
	ctx := context.Background()

	const doc = `
users:
  - name: alice
    admin: true
    groups: [analysts]
    roles: [steward]
  - name: bob
services:
  - name: hive
    admins: [bob]
    accessTypes: [select, update]
    maskTypes: [MASK]
zones:
  - name: sales
    admins: [alice]
`
	var sf seedFile
	require.NoError(t, yaml.Unmarshal([]byte(doc), &sf))
	require.NoError(t, applySeed(ctx, w, &sf))
	// Re-applying is a no-op.
	require.NoError(t, applySeed(ctx, w, &sf))

	var users, groups, accessTypes, zoneAdmins int
	require.NoError(t, w.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&users))
	require.NoError(t, w.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&groups))
	require.NoError(t, w.QueryRowContext(ctx, `SELECT COUNT(*) FROM service_access_types`).Scan(&accessTypes))
	require.NoError(t, w.QueryRowContext(ctx, `SELECT COUNT(*) FROM zone_admins`).Scan(&zoneAdmins))
	assert.Equal(t, 2, users)
	assert.Equal(t, 1, groups)
	assert.Equal(t, 2, accessTypes)
	assert.Equal(t, 1, zoneAdmins)

	var isAdmin int
	require.NoError(t, w.QueryRowContext(ctx, `SELECT is_admin FROM users WHERE name = 'alice'`).Scan(&isAdmin))
	assert.Equal(t, 1, isAdmin)
}
