package validation

import (
	"context"

	"sharegov/internal/domain"
)

// fakeProvider is an in-memory domain.DataProvider for validator tests.
// Fixtures are registered directly on the maps; lookups never error.
type fakeProvider struct {
	datasets        map[int64]*domain.Dataset
	projects        map[int64]*domain.Project
	shares          map[int64]*domain.DataShare
	sharedResources map[int64]*domain.SharedResource

	users    map[string]int64
	groups   map[string]int64
	roles    map[string]int64
	services map[string]int64
	zones    map[string]int64

	userGroups    map[string]map[string]bool
	userRoles     map[string]map[string]bool
	serviceAdmins map[string]map[string]bool // user -> service names
	zoneAdmins    map[string]map[string]bool // user -> zone names
	accessTypes   map[string]map[string]bool // service -> valid names
	maskTypes     map[string]map[string]bool // service -> valid names
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		datasets:        map[int64]*domain.Dataset{},
		projects:        map[int64]*domain.Project{},
		shares:          map[int64]*domain.DataShare{},
		sharedResources: map[int64]*domain.SharedResource{},
		users:           map[string]int64{},
		groups:          map[string]int64{},
		roles:           map[string]int64{},
		services:        map[string]int64{},
		zones:           map[string]int64{},
		userGroups:      map[string]map[string]bool{},
		userRoles:       map[string]map[string]bool{},
		serviceAdmins:   map[string]map[string]bool{},
		zoneAdmins:      map[string]map[string]bool{},
		accessTypes:     map[string]map[string]bool{},
		maskTypes:       map[string]map[string]bool{},
	}
}

func (f *fakeProvider) DatasetIDByName(_ context.Context, name string) (int64, bool, error) {
	for id, ds := range f.datasets {
		if ds.Name == name {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeProvider) ProjectIDByName(_ context.Context, name string) (int64, bool, error) {
	for id, p := range f.projects {
		if p.Name == name {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeProvider) DataShareIDByName(_ context.Context, name string) (int64, bool, error) {
	for id, sh := range f.shares {
		if sh.Name == name {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeProvider) SharedResourceIDByName(_ context.Context, dataShareID int64, name string) (int64, bool, error) {
	for id, res := range f.sharedResources {
		if res.DataShareID == dataShareID && res.Name == name {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeProvider) DatasetByID(_ context.Context, id int64) (*domain.Dataset, error) {
	return f.datasets[id], nil
}

func (f *fakeProvider) ProjectByID(_ context.Context, id int64) (*domain.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProvider) DataShareByID(_ context.Context, id int64) (*domain.DataShare, error) {
	return f.shares[id], nil
}

func lookupName(m map[string]int64, name string) (int64, bool, error) {
	id, ok := m[name]
	return id, ok, nil
}

func (f *fakeProvider) UserIDByName(_ context.Context, name string) (int64, bool, error) {
	return lookupName(f.users, name)
}

func (f *fakeProvider) GroupIDByName(_ context.Context, name string) (int64, bool, error) {
	return lookupName(f.groups, name)
}

func (f *fakeProvider) RoleIDByName(_ context.Context, name string) (int64, bool, error) {
	return lookupName(f.roles, name)
}

func (f *fakeProvider) ServiceIDByName(_ context.Context, name string) (int64, bool, error) {
	return lookupName(f.services, name)
}

func (f *fakeProvider) ZoneIDByName(_ context.Context, name string) (int64, bool, error) {
	return lookupName(f.zones, name)
}

func (f *fakeProvider) GroupsForUser(_ context.Context, userName string) (map[string]bool, error) {
	return f.userGroups[userName], nil
}

func (f *fakeProvider) RolesForUser(_ context.Context, userName string) (map[string]bool, error) {
	return f.userRoles[userName], nil
}

func (f *fakeProvider) IsServiceAdmin(_ context.Context, userName, serviceName string) (bool, error) {
	return f.serviceAdmins[userName][serviceName], nil
}

func (f *fakeProvider) IsZoneAdmin(_ context.Context, userName, zoneName string) (bool, error) {
	return f.zoneAdmins[userName][zoneName], nil
}

func (f *fakeProvider) AccessTypes(_ context.Context, serviceName string) (map[string]bool, error) {
	return f.accessTypes[serviceName], nil
}

func (f *fakeProvider) MaskTypes(_ context.Context, serviceName string) (map[string]bool, error) {
	return f.maskTypes[serviceName], nil
}

// adminCtx returns a context with a platform-admin caller.
func adminCtx() context.Context {
	return domain.WithPrincipal(context.Background(), domain.ContextPrincipal{Name: "admin-user", IsAdmin: true})
}

// userCtx returns a context with a regular caller of the given name.
func userCtx(name string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.ContextPrincipal{Name: name})
}
