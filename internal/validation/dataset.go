package validation

import (
	"context"
	"fmt"

	"sharegov/internal/domain"
)

// ValidateDatasetCreate checks a new dataset: its name must not already be
// taken, and every admin principal and ACL entry must resolve.
func (v *Validator) ValidateDatasetCreate(ctx context.Context, ds *domain.Dataset) error {
	v.log.DebugContext(ctx, "validating dataset create", "name", ds.Name)

	var r Result

	id, ok, err := v.provider.DatasetIDByName(ctx, ds.Name)
	if err != nil {
		return fmt.Errorf("lookup dataset %q: %w", ds.Name, err)
	}
	if ok {
		r.Add(domain.CodeDatasetNameConflict, "name", "dataset with name %q already exists (id=%d)", ds.Name, id)
	}

	if err := v.validatePrincipals(ctx, ds.Admins, "admins", &r); err != nil {
		return err
	}
	if err := v.validateACL(ctx, ds.ACL, "acl", &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateDatasetUpdate checks an update against the existing record. The
// caller must be a platform-admin or an admin of the existing dataset.
func (v *Validator) ValidateDatasetUpdate(ctx context.Context, ds, existing *domain.Dataset) error {
	v.log.DebugContext(ctx, "validating dataset update", "name", ds.Name)

	var r Result

	if existing == nil {
		r.Add(domain.CodeDatasetNameNotFound, "name", "dataset %q does not exist", ds.Name)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin {
		if err := v.validateAdmin(ctx, caller.Name, "dataset", existing.Name, existing.Admins, &r); err != nil {
			return err
		}
	}

	if err := v.validatePrincipals(ctx, ds.Admins, "admins", &r); err != nil {
		return err
	}
	if err := v.validateACL(ctx, ds.ACL, "acl", &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateDatasetDelete checks a delete of the existing record. The caller
// must be a platform-admin or an admin of the dataset.
func (v *Validator) ValidateDatasetDelete(ctx context.Context, id int64, existing *domain.Dataset) error {
	v.log.DebugContext(ctx, "validating dataset delete", "id", id)

	var r Result

	if existing == nil {
		r.Add(domain.CodeDatasetIDNotFound, "id", "dataset with id %d does not exist", id)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin {
		if err := v.validateAdmin(ctx, caller.Name, "dataset", existing.Name, existing.Admins, &r); err != nil {
			return err
		}
	}

	return r.Err()
}
