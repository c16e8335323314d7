// Package validation implements the authorization-and-consistency checks
// that gate every create, update, and delete of sharing metadata: datasets,
// projects, data shares, shared resources, and the links between them.
//
// The validator never mutates anything. It reads through a
// domain.DataProvider, accumulates every detected problem into a Result,
// and returns a single *domain.ValidationError listing all of them.
// Callers run the validator before committing the owning transaction.
package validation

import (
	"context"
	"fmt"
	"log/slog"

	"sharegov/internal/domain"
)

// Validator validates sharing-metadata mutations. It is stateless across
// calls; concurrent use is safe as long as the provider's lookups are.
type Validator struct {
	provider domain.DataProvider
	log      *slog.Logger
}

// New creates a Validator backed by the given data provider.
func New(provider domain.DataProvider, log *slog.Logger) *Validator {
	if log == nil {
		log = slog.Default()
	}
	return &Validator{provider: provider, log: log}
}

// caller returns the acting identity from the request context.
func (v *Validator) caller(ctx context.Context) (domain.ContextPrincipal, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return domain.ContextPrincipal{}, domain.ErrAccessDenied("authentication required")
	}
	return p, nil
}

// validatePrincipals verifies that every referenced user, group, and role
// exists. Each unresolved reference records one failure against fieldName.
func (v *Validator) validatePrincipals(ctx context.Context, principals []domain.Principal, fieldName string, r *Result) error {
	for _, p := range principals {
		switch p.Type {
		case domain.PrincipalUser:
			if err := v.validateUser(ctx, p.Name, fieldName, r); err != nil {
				return err
			}
		case domain.PrincipalGroup:
			if err := v.validateGroup(ctx, p.Name, fieldName, r); err != nil {
				return err
			}
		case domain.PrincipalRole:
			if err := v.validateRole(ctx, p.Name, fieldName, r); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown principal type %q", p.Type)
		}
	}
	return nil
}

// validateACL verifies that every user, group, and role named in the ACL
// exists. Permission values are not interpreted here.
func (v *Validator) validateACL(ctx context.Context, acl *domain.ACL, fieldName string, r *Result) error {
	if acl == nil {
		return nil
	}
	for userName := range acl.Users {
		if err := v.validateUser(ctx, userName, fieldName, r); err != nil {
			return err
		}
	}
	for groupName := range acl.Groups {
		if err := v.validateGroup(ctx, groupName, fieldName, r); err != nil {
			return err
		}
	}
	for roleName := range acl.Roles {
		if err := v.validateRole(ctx, roleName, fieldName, r); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateUser(ctx context.Context, userName, fieldName string, r *Result) error {
	_, ok, err := v.provider.UserIDByName(ctx, userName)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", userName, err)
	}
	if !ok {
		r.Add(domain.CodeNonExistingUser, fieldName, "user %q does not exist", userName)
	}
	return nil
}

func (v *Validator) validateGroup(ctx context.Context, groupName, fieldName string, r *Result) error {
	_, ok, err := v.provider.GroupIDByName(ctx, groupName)
	if err != nil {
		return fmt.Errorf("lookup group %q: %w", groupName, err)
	}
	if !ok {
		r.Add(domain.CodeNonExistingGroup, fieldName, "group %q does not exist", groupName)
	}
	return nil
}

func (v *Validator) validateRole(ctx context.Context, roleName, fieldName string, r *Result) error {
	_, ok, err := v.provider.RoleIDByName(ctx, roleName)
	if err != nil {
		return fmt.Errorf("lookup role %q: %w", roleName, err)
	}
	if !ok {
		r.Add(domain.CodeNonExistingRole, fieldName, "role %q does not exist", roleName)
	}
	return nil
}

// validateAdmin checks that userName qualifies as an admin of the object:
// a direct USER match, membership in a GROUP admin's group, or holding a
// ROLE admin's role. Group and role memberships are resolved at most once
// per call; role resolution requires groups to be resolved first. Records
// one NOT_ADMIN failure when no admin entry matches.
//
// Callers must apply the platform-admin bypass before invoking this.
func (v *Validator) validateAdmin(ctx context.Context, userName, objType, objName string, admins []domain.Principal, r *Result) error {
	var (
		isAdmin bool
		groups  map[string]bool
		roles   map[string]bool
	)

	resolveGroups := func() error {
		if groups != nil {
			return nil
		}
		g, err := v.provider.GroupsForUser(ctx, userName)
		if err != nil {
			return fmt.Errorf("resolve groups for %q: %w", userName, err)
		}
		if g == nil {
			g = map[string]bool{}
		}
		groups = g
		return nil
	}

	for _, admin := range admins {
		switch admin.Type {
		case domain.PrincipalUser:
			isAdmin = admin.Name == userName
		case domain.PrincipalGroup:
			if err := resolveGroups(); err != nil {
				return err
			}
			isAdmin = groups[admin.Name]
		case domain.PrincipalRole:
			if roles == nil {
				// Role resolution depends on group context.
				if err := resolveGroups(); err != nil {
					return err
				}
				rs, err := v.provider.RolesForUser(ctx, userName)
				if err != nil {
					return fmt.Errorf("resolve roles for %q: %w", userName, err)
				}
				if rs == nil {
					rs = map[string]bool{}
				}
				roles = rs
			}
			isAdmin = roles[admin.Name]
		default:
			return fmt.Errorf("unknown principal type %q", admin.Type)
		}

		if isAdmin {
			break
		}
	}

	if !isAdmin {
		r.Add(domain.CodeNotAdmin, "", "user %q is not an admin of %s %q", userName, objType, objName)
	}
	return nil
}

// validateDataShareAdmin checks data-share admin authority: platform-admin,
// service-admin for the share's service, zone-admin for its zone, or
// membership in the share's admin list, in that order.
func (v *Validator) validateDataShareAdmin(ctx context.Context, caller domain.ContextPrincipal, share *domain.DataShare, r *Result) error {
	if caller.IsAdmin {
		return nil
	}
	ok, err := v.provider.IsServiceAdmin(ctx, caller.Name, share.Service)
	if err != nil {
		return fmt.Errorf("check service admin for %q: %w", share.Service, err)
	}
	if ok {
		return nil
	}
	if share.Zone != "" {
		ok, err = v.provider.IsZoneAdmin(ctx, caller.Name, share.Zone)
		if err != nil {
			return fmt.Errorf("check zone admin for %q: %w", share.Zone, err)
		}
		if ok {
			return nil
		}
	}
	return v.validateAdmin(ctx, caller.Name, "datashare", share.Name, share.Admins, r)
}

// validateServiceZoneAdmin checks that the caller may manage shares for the
// named service, optionally scoped to a security zone. The service name is
// mandatory; platform-admin and service-admin satisfy the check outright,
// otherwise a present zone must exist and the caller must administer it.
func (v *Validator) validateServiceZoneAdmin(ctx context.Context, caller domain.ContextPrincipal, serviceName, zoneName string, r *Result) error {
	if serviceName == "" {
		r.Add(domain.CodeServiceNameMissing, "service", "service name must be specified")
		return nil
	}

	_, ok, err := v.provider.ServiceIDByName(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("lookup service %q: %w", serviceName, err)
	}
	if !ok {
		r.Add(domain.CodeNonExistingService, "service", "service %q does not exist", serviceName)
		return nil
	}

	isServiceAdmin := caller.IsAdmin
	if !isServiceAdmin {
		isServiceAdmin, err = v.provider.IsServiceAdmin(ctx, caller.Name, serviceName)
		if err != nil {
			return fmt.Errorf("check service admin for %q: %w", serviceName, err)
		}
	}
	if isServiceAdmin {
		return nil
	}

	if zoneName == "" {
		r.Add(domain.CodeNotServiceAdmin, "service", "user %q is not an admin of service %q", caller.Name, serviceName)
		return nil
	}

	_, ok, err = v.provider.ZoneIDByName(ctx, zoneName)
	if err != nil {
		return fmt.Errorf("lookup zone %q: %w", zoneName, err)
	}
	if !ok {
		r.Add(domain.CodeNonExistingZone, "zone", "security zone %q does not exist", zoneName)
		return nil
	}

	isZoneAdmin, err := v.provider.IsZoneAdmin(ctx, caller.Name, zoneName)
	if err != nil {
		return fmt.Errorf("check zone admin for %q: %w", zoneName, err)
	}
	if !isZoneAdmin {
		r.Add(domain.CodeNotServiceOrZoneAdmin, "service", "user %q is not an admin of service %q or zone %q", caller.Name, serviceName, zoneName)
	}
	return nil
}

// validateAccessTypes verifies every access-type name against the set of
// valid names for the service, looked up once per call.
func (v *Validator) validateAccessTypes(ctx context.Context, serviceName, fieldName string, accessTypes []string, r *Result) error {
	if len(accessTypes) == 0 {
		return nil
	}
	valid, err := v.provider.AccessTypes(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("lookup access types for %q: %w", serviceName, err)
	}
	for _, accessType := range accessTypes {
		if !valid[accessType] {
			r.Add(domain.CodeInvalidAccessType, fieldName, "invalid access type %q", accessType)
		}
	}
	return nil
}

// validateMaskTypes verifies every mask-type name against the set of valid
// names for the service, looked up once per call.
func (v *Validator) validateMaskTypes(ctx context.Context, serviceName, fieldName string, masks map[string]domain.MaskInfo, r *Result) error {
	if len(masks) == 0 {
		return nil
	}
	valid, err := v.provider.MaskTypes(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("lookup mask types for %q: %w", serviceName, err)
	}
	for _, mask := range masks {
		if !valid[mask.MaskType] {
			r.Add(domain.CodeInvalidMaskType, fieldName, "invalid mask type %q", mask.MaskType)
		}
	}
	return nil
}
