package validation

import (
	"context"
	"fmt"

	"sharegov/internal/domain"
)

// ValidateSharedResourceCreate checks a new shared resource. The owning
// data share must exist, the name must be free within it, and the caller
// must hold data-share admin authority (unless the name conflict already
// failed the create).
func (v *Validator) ValidateSharedResourceCreate(ctx context.Context, res *domain.SharedResource) error {
	v.log.DebugContext(ctx, "validating shared resource create", "name", res.Name, "dataShareId", res.DataShareID)

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}

	var r Result

	share, err := v.provider.DataShareByID(ctx, res.DataShareID)
	if err != nil {
		return fmt.Errorf("lookup data share %d: %w", res.DataShareID, err)
	}
	if share == nil {
		r.Add(domain.CodeDataShareIDNotFound, "dataShareId", "data share with id %d does not exist", res.DataShareID)
		return r.Err()
	}

	id, ok, err := v.provider.SharedResourceIDByName(ctx, res.DataShareID, res.Name)
	if err != nil {
		return fmt.Errorf("lookup shared resource %q: %w", res.Name, err)
	}
	if ok {
		r.Add(domain.CodeSharedResourceNameConflict, "name",
			"shared resource %q already exists in data share %q (id=%d)", res.Name, share.Name, id)
	} else if err := v.validateDataShareAdmin(ctx, caller, share, &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateSharedResourceUpdate checks an update against the existing
// record. Authority is checked against the resource's owning data share,
// not the resource itself.
func (v *Validator) ValidateSharedResourceUpdate(ctx context.Context, res, existing *domain.SharedResource) error {
	v.log.DebugContext(ctx, "validating shared resource update", "id", res.ID)

	var r Result

	if existing == nil {
		r.Add(domain.CodeSharedResourceIDNotFound, "id", "shared resource with id %d does not exist", res.ID)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}

	share, err := v.provider.DataShareByID(ctx, res.DataShareID)
	if err != nil {
		return fmt.Errorf("lookup data share %d: %w", res.DataShareID, err)
	}
	if share == nil {
		r.Add(domain.CodeDataShareIDNotFound, "dataShareId", "data share with id %d does not exist", res.DataShareID)
	} else if err := v.validateDataShareAdmin(ctx, caller, share, &r); err != nil {
		return err
	}

	return r.Err()
}

// ValidateSharedResourceDelete checks a delete of the existing record.
// Authority is checked against the owning data share.
func (v *Validator) ValidateSharedResourceDelete(ctx context.Context, id int64, existing *domain.SharedResource) error {
	v.log.DebugContext(ctx, "validating shared resource delete", "id", id)

	var r Result

	if existing == nil {
		r.Add(domain.CodeSharedResourceIDNotFound, "id", "shared resource with id %d does not exist", id)
		return r.Err()
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return err
	}

	share, err := v.provider.DataShareByID(ctx, existing.DataShareID)
	if err != nil {
		return fmt.Errorf("lookup data share %d: %w", existing.DataShareID, err)
	}
	if share == nil {
		r.Add(domain.CodeDataShareIDNotFound, "dataShareId", "data share with id %d does not exist", existing.DataShareID)
	} else if err := v.validateDataShareAdmin(ctx, caller, share, &r); err != nil {
		return err
	}

	return r.Err()
}
