package validation

import (
	"context"
	"fmt"

	"sharegov/internal/domain"
)

// ValidateProjectCreate checks a new project: its name must not already be
// taken, and every admin principal and ACL entry must resolve.
func (v *Validator) ValidateProjectCreate(ctx context.Context, p *domain.Project) error {
	v.log.DebugContext(ctx, "validating project create", "name", p.Name)

	var r Result

	id, ok, err := v.provider.ProjectIDByName(ctx, p.Name)
	if err != nil {
		return fmt.Errorf("lookup project %q: %w", p.Name, err)
	}
	if ok {
		r.Add(domain.CodeProjectNameConflict, "name", "project with name %q already exists (id=%d)", p.Name, id)
	}

	if err := v.validatePrincipals(ctx, p.Admins, "admins", &r); err != nil {
		return err
	}
	if err := v.validateACL(ctx, p.ACL, "acl", &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateProjectUpdate checks an update against the existing record. The
// caller must be a platform-admin or an admin of the existing project.
func (v *Validator) ValidateProjectUpdate(ctx context.Context, p, existing *domain.Project) error {
	v.log.DebugContext(ctx, "validating project update", "name", p.Name)

	var r Result

	if existing == nil {
		r.Add(domain.CodeProjectNameNotFound, "name", "project %q does not exist", p.Name)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin {
		if err := v.validateAdmin(ctx, caller.Name, "project", existing.Name, existing.Admins, &r); err != nil {
			return err
		}
	}

	if err := v.validatePrincipals(ctx, p.Admins, "admins", &r); err != nil {
		return err
	}
	if err := v.validateACL(ctx, p.ACL, "acl", &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateProjectDelete checks a delete of the existing record. The caller
// must be a platform-admin or an admin of the project.
func (v *Validator) ValidateProjectDelete(ctx context.Context, id int64, existing *domain.Project) error {
	v.log.DebugContext(ctx, "validating project delete", "id", id)

	var r Result

	if existing == nil {
		r.Add(domain.CodeProjectIDNotFound, "id", "project with id %d does not exist", id)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin {
		if err := v.validateAdmin(ctx, caller.Name, "project", existing.Name, existing.Admins, &r); err != nil {
			return err
		}
	}

	return r.Err()
}
