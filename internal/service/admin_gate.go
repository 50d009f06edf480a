package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"ecolearn/internal/cache"
	"ecolearn/internal/model"
	"ecolearn/internal/repository"
)

var (
	ErrUnrecognizedOrgType = errors.New("unrecognized organization type")
	// ErrRoleLookupFailed names the failure the gate downgrades to a plain
	// denial; it is logged, never returned to callers.
	ErrRoleLookupFailed = errors.New("role lookup failed")
)

// GateState is where a request stands in the admin access sequence.
type GateState string

const (
	GateUnauthenticated GateState = "unauthenticated"
	GateAuthenticated   GateState = "authenticated"  // signed in, portal not acknowledged
	GateRoleChecked     GateState = "role-checked"   // portal acknowledged, role resolved
)

// GateStatus is the resolved admin-gate position for one request.
type GateStatus struct {
	State   GateState     `json:"state"`
	OrgType model.OrgType `json:"orgType,omitempty"`
	Admin   bool          `json:"admin"`
}

// AdminGate enforces the admin access sequence on the server: an
// authenticated identity, an explicit portal acknowledgement, then a role
// lookup. Access requires role "admin" and a recognized organization type.
// The acknowledgement must come from the dedicated portal entry action;
// nothing here creates it implicitly.
type AdminGate struct {
	users    repository.UserRepo
	sessions cache.AdminSessionCache
	logger   *zerolog.Logger
	now      func() time.Time
}

// NewAdminGate creates a new admin gate
func NewAdminGate(users repository.UserRepo, sessions cache.AdminSessionCache, logger *zerolog.Logger) *AdminGate {
	return &AdminGate{
		users:    users,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// AcknowledgePortal records the explicit portal entry action with the
// declared organization type. It never grants anything by itself.
func (g *AdminGate) AcknowledgePortal(ctx context.Context, userID string, orgType model.OrgType) error {
	if !model.RecognizedOrgTypes[orgType] {
		return ErrUnrecognizedOrgType
	}
	return g.sessions.Set(ctx, &cache.AdminSession{
		UserID:  userID,
		OrgType: orgType,
		AckedAt: g.now().UTC(),
	})
}

// LeavePortal drops the acknowledgement, returning the user to the
// authenticated-only state.
func (g *AdminGate) LeavePortal(ctx context.Context, userID string) error {
	return g.sessions.Delete(ctx, userID)
}

// Evaluate resolves the gate for one request. Errors during the role lookup
// resolve conservatively to a non-admin result rather than an error page.
func (g *AdminGate) Evaluate(ctx context.Context, userID string) GateStatus {
	if userID == "" {
		return GateStatus{State: GateUnauthenticated}
	}

	sess, err := g.sessions.Get(ctx, userID)
	if err != nil {
		// Can't prove the portal was acknowledged; require re-entry.
		g.logger.Warn().Err(err).Str("userId", userID).Msg("admin session lookup failed")
		return GateStatus{State: GateAuthenticated}
	}
	if sess == nil {
		return GateStatus{State: GateAuthenticated}
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		// Fail closed: a broken or missing role record denies access.
		g.logger.Warn().Err(err).Str("userId", userID).Msg("role lookup failed, denying admin access")
		return GateStatus{State: GateRoleChecked, OrgType: sess.OrgType, Admin: false}
	}

	admin := user.Role == model.RoleAdmin && model.RecognizedOrgTypes[user.OrgType]
	return GateStatus{State: GateRoleChecked, OrgType: user.OrgType, Admin: admin}
}
