package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharegov/internal/db"
	"sharegov/internal/domain"
)

func mustExec(t *testing.T, w *sql.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := w.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}

// seedSecurity loads a small identity model: alice in group analysts and
// role stewards, bob with no memberships, service hive with zone sales.
func seedSecurity(t *testing.T, w *sql.DB) {
	t.Helper()
	mustExec(t, w, `INSERT INTO users (name) VALUES ('alice'), ('bob')`)
	mustExec(t, w, `INSERT INTO groups (name) VALUES ('analysts')`)
	mustExec(t, w, `INSERT INTO roles (name) VALUES ('stewards')`)
	mustExec(t, w, `INSERT INTO user_groups SELECT u.id, g.id FROM users u, groups g WHERE u.name = 'alice' AND g.name = 'analysts'`)
	mustExec(t, w, `INSERT INTO user_roles SELECT u.id, r.id FROM users u, roles r WHERE u.name = 'alice' AND r.name = 'stewards'`)
	mustExec(t, w, `INSERT INTO services (name) VALUES ('hive')`)
	mustExec(t, w, `INSERT INTO zones (name) VALUES ('sales')`)
	mustExec(t, w, `INSERT INTO service_admins SELECT s.id, u.id FROM services s, users u WHERE s.name = 'hive' AND u.name = 'bob'`)
	mustExec(t, w, `INSERT INTO zone_admins SELECT z.id, u.id FROM zones z, users u WHERE z.name = 'sales' AND u.name = 'alice'`)
	mustExec(t, w, `INSERT INTO service_access_types SELECT id, 'select' FROM services WHERE name = 'hive'`)
	mustExec(t, w, `INSERT INTO service_access_types SELECT id, 'update' FROM services WHERE name = 'hive'`)
	mustExec(t, w, `INSERT INTO service_mask_types SELECT id, 'MASK' FROM services WHERE name = 'hive'`)
}

func TestSecurityRepo(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	seedSecurity(t, w)
	repo := NewSecurityRepo(r)
	ctx := context.Background()

	id, ok, err := repo.UserIDByName(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotZero(t, id)

	_, ok, err = repo.UserIDByName(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	groups, err := repo.GroupsForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"analysts": true}, groups)

	roles, err := repo.RolesForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"stewards": true}, roles)

	groups, err = repo.GroupsForUser(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, groups)

	isAdmin, err := repo.IsServiceAdmin(ctx, "bob", "hive")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = repo.IsServiceAdmin(ctx, "alice", "hive")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = repo.IsZoneAdmin(ctx, "alice", "sales")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	accessTypes, err := repo.AccessTypes(ctx, "hive")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"select": true, "update": true}, accessTypes)

	maskTypes, err := repo.MaskTypes(ctx, "hive")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"MASK": true}, maskTypes)
}

func TestDatasetRepo_CRUD(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	repo := NewDatasetRepo(w, r)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Dataset{
		Name:        "sales-2026",
		Description: "sales data",
		Admins:      []domain.Principal{{Type: domain.PrincipalUser, Name: "alice"}},
		ACL:         &domain.ACL{Users: map[string]string{"bob": "viewer"}},
		TermsOfUse:  "internal only",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByName(ctx, "sales-2026")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Admins, 1)
	assert.Equal(t, "alice", got.Admins[0].Name)
	require.NotNil(t, got.ACL)
	assert.Equal(t, "viewer", got.ACL.Users["bob"])

	got.Description = "updated"
	got.ACL = nil
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)
	assert.Nil(t, updated.ACL)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.Create(ctx, &domain.Dataset{Name: "sales-2026"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, repo.Delete(ctx, created.ID))

	var notFound *domain.NotFoundError
	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorAs(t, err, &notFound)
	err = repo.Delete(ctx, created.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestDataShareRepo_RoundTrip(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	repo := NewDataShareRepo(w, r)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.DataShare{
		Name:               "share1",
		Service:            "hive",
		Zone:               "sales",
		Admins:             []domain.Principal{{Type: domain.PrincipalGroup, Name: "analysts"}},
		DefaultAccessTypes: []string{"select"},
		DefaultMasks: map[string]domain.MaskInfo{
			"ssn": {MaskType: "MASK_NULL"},
		},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hive", got.Service)
	assert.Equal(t, "sales", got.Zone)
	assert.Equal(t, []string{"select"}, got.DefaultAccessTypes)
	assert.Equal(t, "MASK_NULL", got.DefaultMasks["ssn"].MaskType)
	require.Len(t, got.Admins, 1)
	assert.Equal(t, domain.PrincipalGroup, got.Admins[0].Type)
}

func TestSharedResourceRepo(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	shares := NewDataShareRepo(w, r)
	repo := NewSharedResourceRepo(w, r)
	ctx := context.Background()

	share, err := shares.Create(ctx, &domain.DataShare{Name: "share1", Service: "hive"})
	require.NoError(t, err)

	res, err := repo.Create(ctx, &domain.SharedResource{DataShareID: share.ID, Name: "db.table1"})
	require.NoError(t, err)

	id, ok, err := repo.IDByName(ctx, share.ID, "db.table1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, res.ID, id)

	_, ok, err = repo.IDByName(ctx, share.ID, "db.table2")
	require.NoError(t, err)
	assert.False(t, ok)

	// Same name under the same share conflicts.
	_, err = repo.Create(ctx, &domain.SharedResource{DataShareID: share.ID, Name: "db.table1"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	list, err := repo.ListForDataShare(ctx, share.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDataShareInDatasetRepo(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	shares := NewDataShareRepo(w, r)
	datasets := NewDatasetRepo(w, r)
	repo := NewDataShareInDatasetRepo(w, r)
	ctx := context.Background()

	share, err := shares.Create(ctx, &domain.DataShare{Name: "share1", Service: "hive"})
	require.NoError(t, err)
	ds, err := datasets.Create(ctx, &domain.Dataset{Name: "ds1"})
	require.NoError(t, err)

	link, err := repo.Create(ctx, &domain.DataShareInDataset{
		DataShareID: share.ID,
		DatasetID:   ds.ID,
		Status:      domain.ShareStatusRequested,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ShareStatusRequested, link.Status)

	link.Status = domain.ShareStatusGranted
	updated, err := repo.Update(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, domain.ShareStatusGranted, updated.Status)

	// The share/dataset pair is unique.
	_, err = repo.Create(ctx, &domain.DataShareInDataset{
		DataShareID: share.ID,
		DatasetID:   ds.ID,
		Status:      domain.ShareStatusNone,
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, repo.Delete(ctx, link.ID))
}

func TestProvider(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	seedSecurity(t, w)
	datasets := NewDatasetRepo(w, r)
	provider := NewProvider(w, r)
	ctx := context.Background()

	ds, err := datasets.Create(ctx, &domain.Dataset{Name: "ds1"})
	require.NoError(t, err)

	id, ok, err := provider.DatasetIDByName(ctx, "ds1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ds.ID, id)

	_, ok, err = provider.DatasetIDByName(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := provider.DatasetByID(ctx, ds.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ds1", got.Name)

	// Absent entities come back nil without an error.
	got, err = provider.DatasetByID(ctx, ds.ID+100)
	require.NoError(t, err)
	assert.Nil(t, got)

	groups, err := provider.GroupsForUser(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, groups["analysts"])
}

func TestAuditRepo(t *testing.T) {
	w, r := db.OpenTestSQLite(t)
	repo := NewAuditRepo(w, r)
	ctx := context.Background()

	for _, action := range []string{"dataset.create", "dataset.delete"} {
		err := repo.Insert(ctx, &domain.AuditEntry{
			ID:            uuid.NewString(),
			PrincipalName: "alice",
			Action:        action,
			ObjectType:    "dataset",
			ObjectName:    "ds1",
			Status:        "ok",
		})
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
