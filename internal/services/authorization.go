package services

import (
	"fmt"
	"strings"

	apperrors "fixed-deposit-core/internal/errors"
)

const (
	RoleBankOfficer = "bank_officer"
	RoleAdmin       = "admin"
)

// Capability names an action guarded by role.
type Capability string

const (
	CapabilityOpenAccount       Capability = "account:open"
	CapabilityCloseAccount      Capability = "account:close"
	CapabilityManageLifecycle   Capability = "account:lifecycle"
	CapabilityRecordTransaction Capability = "transaction:record"
)

// capabilityRoles lists the roles that grant each capability. An empty list
// means any authenticated caller.
var capabilityRoles = map[Capability][]string{
	CapabilityOpenAccount:       {RoleBankOfficer, RoleAdmin},
	CapabilityCloseAccount:      {RoleBankOfficer, RoleAdmin},
	CapabilityManageLifecycle:   {RoleBankOfficer, RoleAdmin},
	CapabilityRecordTransaction: {},
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	Username string
	Roles    []string
}

// HasRole matches role ignoring case, a ROLE_ prefix and underscores, so
// "ROLE_BANKOFFICER", "BANK_OFFICER" and "bank_officer" are the same role.
func (c Caller) HasRole(role string) bool {
	want := normalizeRole(role)
	for _, r := range c.Roles {
		if normalizeRole(r) == want {
			return true
		}
	}
	return false
}

func normalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	r = strings.TrimPrefix(r, "role_")
	return strings.ReplaceAll(r, "_", "")
}

// AuthorizationResult is the outcome of a capability check.
type AuthorizationResult struct {
	Allowed bool
	Reason  string
	Code    apperrors.ErrorCode
}

// Err converts a denial into an Unauthorized AppError.
func (r AuthorizationResult) Err() error {
	if r.Allowed {
		return nil
	}
	return apperrors.New(r.Code, r.Reason)
}

// Authorize decides whether caller may exercise capability.
func Authorize(caller Caller, capability Capability) AuthorizationResult {
	if strings.TrimSpace(caller.Username) == "" {
		return AuthorizationResult{
			Reason: "User not authenticated",
			Code:   apperrors.AuthNotAuthenticated,
		}
	}

	roles, ok := capabilityRoles[capability]
	if !ok {
		return AuthorizationResult{
			Reason: fmt.Sprintf("Unknown capability: %s", capability),
			Code:   apperrors.AuthInsufficientPermission,
		}
	}
	if len(roles) == 0 {
		return AuthorizationResult{Allowed: true}
	}

	for _, role := range roles {
		if caller.HasRole(role) {
			return AuthorizationResult{Allowed: true}
		}
	}

	return AuthorizationResult{
		Reason: "User does not have required role (BANK_OFFICER or ADMIN)",
		Code:   apperrors.AuthInsufficientPermission,
	}
}
