package validation

import (
	"context"
	"fmt"

	"sharegov/internal/domain"
)

// ValidateDataShareCreate checks a new data share. Creation requires
// service/zone admin authority on the backing service, a free name, and
// valid admins, default access types, and default masks. All checks run
// and accumulate; an early failure does not suppress later ones.
func (v *Validator) ValidateDataShareCreate(ctx context.Context, sh *domain.DataShare) error {
	v.log.DebugContext(ctx, "validating data share create", "name", sh.Name, "service", sh.Service)

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}

	var r Result

	id, ok, err := v.provider.DataShareIDByName(ctx, sh.Name)
	if err != nil {
		return fmt.Errorf("lookup data share %q: %w", sh.Name, err)
	}
	if ok {
		r.Add(domain.CodeDataShareNameConflict, "name", "data share with name %q already exists (id=%d)", sh.Name, id)
	}

	if err := v.validateServiceZoneAdmin(ctx, caller, sh.Service, sh.Zone, &r); err != nil {
		return err
	}
	if err := v.validatePrincipals(ctx, sh.Admins, "admins", &r); err != nil {
		return err
	}
	if err := v.validateAccessTypes(ctx, sh.Service, "defaultAccessTypes", sh.DefaultAccessTypes, &r); err != nil {
		return err
	}
	if err := v.validateMaskTypes(ctx, sh.Service, "defaultMasks", sh.DefaultMasks, &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateDataShareUpdate checks an update against the existing record.
// The caller must be a platform-admin or an admin of the existing share;
// incoming admins, access types, and masks must all be valid.
func (v *Validator) ValidateDataShareUpdate(ctx context.Context, sh, existing *domain.DataShare) error {
	v.log.DebugContext(ctx, "validating data share update", "name", sh.Name)

	var r Result

	if existing == nil {
		r.Add(domain.CodeDataShareNameNotFound, "name", "data share %q does not exist", sh.Name)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin {
		if err := v.validateAdmin(ctx, caller.Name, "datashare", existing.Name, existing.Admins, &r); err != nil {
			return err
		}
	}

	if err := v.validatePrincipals(ctx, sh.Admins, "admins", &r); err != nil {
		return err
	}
	if err := v.validateAccessTypes(ctx, sh.Service, "defaultAccessTypes", sh.DefaultAccessTypes, &r); err != nil {
		return err
	}
	if err := v.validateMaskTypes(ctx, sh.Service, "defaultMasks", sh.DefaultMasks, &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateDataShareDelete checks a delete of the existing record. The
// caller must be a platform-admin or an admin of the share.
func (v *Validator) ValidateDataShareDelete(ctx context.Context, id int64, existing *domain.DataShare) error {
	v.log.DebugContext(ctx, "validating data share delete", "id", id)

	var r Result

	if existing == nil {
		r.Add(domain.CodeDataShareIDNotFound, "id", "data share with id %d does not exist", id)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin {
		if err := v.validateAdmin(ctx, caller.Name, "datashare", existing.Name, existing.Admins, &r); err != nil {
			return err
		}
	}

	return r.Err()
}
