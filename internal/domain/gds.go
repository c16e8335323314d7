package domain

import (
	"fmt"
	"time"
)

// PrincipalType discriminates the kind of identity a Principal refers to.
type PrincipalType string

const (
	PrincipalUser  PrincipalType = "USER"
	PrincipalGroup PrincipalType = "GROUP"
	PrincipalRole  PrincipalType = "ROLE"
)

// ParsePrincipalType converts a string to a PrincipalType.
func ParsePrincipalType(s string) (PrincipalType, error) {
	switch PrincipalType(s) {
	case PrincipalUser, PrincipalGroup, PrincipalRole:
		return PrincipalType(s), nil
	}
	return "", ErrValidation("unknown principal type %q", s)
}

// Principal is a reference to a user, group, or role by name.
type Principal struct {
	Type PrincipalType `json:"type"`
	Name string        `json:"name"`
}

// ACL grants access to users, groups, and roles independent of admin
// status. Keys are principal names, values are permission labels.
type ACL struct {
	Users  map[string]string `json:"users,omitempty"`
	Groups map[string]string `json:"groups,omitempty"`
	Roles  map[string]string `json:"roles,omitempty"`
}

// Dataset is a named grouping of data shares with its own admins and ACL.
type Dataset struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Admins      []Principal `json:"admins,omitempty"`
	ACL         *ACL        `json:"acl,omitempty"`
	TermsOfUse  string      `json:"termsOfUse,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

// Project is a named grouping of datasets. Structurally identical to
// Dataset but a distinct namespace.
type Project struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Admins      []Principal `json:"admins,omitempty"`
	ACL         *ACL        `json:"acl,omitempty"`
	TermsOfUse  string      `json:"termsOfUse,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

// MaskInfo describes how a column value is masked by default when accessed
// through a data share.
type MaskInfo struct {
	MaskType    string `json:"maskType"`
	MaskedValue string `json:"maskedValue,omitempty"`
}

// DataShare is a named, service/zone-scoped unit of shareable access.
type DataShare struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description,omitempty"`
	Service            string              `json:"service"`
	Zone               string              `json:"zone,omitempty"`
	Admins             []Principal         `json:"admins,omitempty"`
	DefaultAccessTypes []string            `json:"defaultAccessTypes,omitempty"`
	DefaultMasks       map[string]MaskInfo `json:"defaultMasks,omitempty"`
	CreatedAt          time.Time           `json:"createdAt,omitzero"`
	UpdatedAt          time.Time           `json:"updatedAt,omitzero"`
}

// SharedResource is a concrete resource offered under a DataShare. Its name
// is unique within the owning data share.
type SharedResource struct {
	ID          int64     `json:"id"`
	DataShareID int64     `json:"dataShareId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// ShareStatus is the approval-workflow state of a data share's membership
// in a dataset.
type ShareStatus string

const (
	ShareStatusNone      ShareStatus = "NONE"
	ShareStatusRequested ShareStatus = "REQUESTED"
	ShareStatusGranted   ShareStatus = "GRANTED"
	ShareStatusAccepted  ShareStatus = "ACCEPTED"
)

// ParseShareStatus converts a string to a ShareStatus.
func ParseShareStatus(s string) (ShareStatus, error) {
	switch ShareStatus(s) {
	case ShareStatusNone, ShareStatusRequested, ShareStatusGranted, ShareStatusAccepted:
		return ShareStatus(s), nil
	}
	return "", ErrValidation("unknown share status %q", s)
}

func (s ShareStatus) String() string { return string(s) }

// DataShareInDataset links a DataShare to a Dataset and tracks the
// approval-workflow status of that link. DataShareID and DatasetID are
// immutable after creation.
type DataShareInDataset struct {
	ID          int64       `json:"id"`
	DataShareID int64       `json:"dataShareId"`
	DatasetID   int64       `json:"datasetId"`
	Status      ShareStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

// DatasetInProject links a Dataset to a Project. DatasetID and ProjectID
// are immutable after creation.
type DatasetInProject struct {
	ID        int64     `json:"id"`
	DatasetID int64     `json:"datasetId"`
	ProjectID int64     `json:"projectId"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// AuditEntry records one mutating operation against the sharing metadata.
type AuditEntry struct {
	ID            string    `json:"id"`
	PrincipalName string    `json:"principalName"`
	Action        string    `json:"action"`
	ObjectType    string    `json:"objectType"`
	ObjectName    string    `json:"objectName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

func (p Principal) String() string {
	return fmt.Sprintf("%s:%s", p.Type, p.Name)
}
