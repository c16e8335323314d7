package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharegov/internal/config"
	"sharegov/internal/db"
	"sharegov/internal/domain"
)

func TestSeedDemo_Idempotent(t *testing.T) {
	w, _ := db.OpenTestSQLite(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, w, log))
	require.NoError(t, SeedDemo(ctx, w, log))

	var users int
	require.NoError(t, w.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&users))
	assert.Equal(t, 4, users)
}

func TestNew_WiresServices(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	require.NoError(t, SeedDemo(ctx, w, log))

	a := New(Deps{Cfg: &config.Config{}, WriteDB: w, ReadDB: r, Logger: log})
	require.NotNil(t, a.Services)

	adminCtx := domain.WithPrincipal(ctx, domain.ContextPrincipal{Name: "root", IsAdmin: true})
	ds, err := a.Services.Datasets.Create(adminCtx, &domain.Dataset{
		Name:   "smoke",
		Admins: []domain.Principal{{Type: domain.PrincipalUser, Name: "analyst1"}},
	})
	require.NoError(t, err)
	assert.NotZero(t, ds.ID)
}
