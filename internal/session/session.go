// Package session holds the current actor's role and issues the admin
// capability consumed by role-gated operations.
//
// This is explicitly a UI-visibility toggle, not an access-control
// boundary: the credentials live client-side and anyone with the data
// directory can flip the persisted role. A real admin boundary would
// need a server, which this application does not have.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"nazhan-shop/internal/config"
	"nazhan-shop/internal/logger"
	"nazhan-shop/internal/store"
	"nazhan-shop/internal/ui"
)

const storageKey = "role"

// Login attempts use the strict tier: admin credential checks are the
// only brute-forceable surface in the app.
const (
	loginLimit = rate.Limit(2)
	loginBurst = 5
)

const capabilityTTL = 24 * time.Hour

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Credentials struct {
	Username string
	Password string
}

type capabilityClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the single actor's role state. One instance per running
// session; not goroutine-safe.
type Session struct {
	store  store.Store
	notify ui.Notifier
	render ui.ViewRenderer

	adminUser string
	adminHash string
	secret    []byte
	limiter   *rate.Limiter

	role       Role
	capability string
}

// New restores the persisted role. Absent or unrecognized values default
// to customer. A restored admin role does not restore the capability:
// role-gated operations require a fresh login per process.
func New(st store.Store, cfg *config.Config, notify ui.Notifier, render ui.ViewRenderer) *Session {
	if notify == nil {
		notify = ui.NopNotifier{}
	}
	if render == nil {
		render = ui.NopRenderer{}
	}

	s := &Session{
		store:     st,
		notify:    notify,
		render:    render,
		adminUser: cfg.AdminUsername,
		adminHash: cfg.AdminPasswordHash,
		secret:    []byte(cfg.SessionSecret),
		limiter:   rate.NewLimiter(loginLimit, loginBurst),
		role:      RoleCustomer,
	}

	var stored string
	if st.Get(storageKey, &stored) {
		switch Role(stored) {
		case RoleCustomer, RoleAdmin:
			s.role = Role(stored)
		default:
			logger.L().Warn("unrecognized stored role, defaulting to customer",
				zap.String("role", stored))
		}
	}
	return s
}

// Login switches the session to the given role. The admin role requires
// matching credentials; a mismatch changes nothing.
func (s *Session) Login(ctx context.Context, role Role, creds Credentials) error {
	switch role {
	case RoleCustomer:
		// No credentials: customer is the unauthenticated default.
	case RoleAdmin:
		if !s.limiter.Allow() {
			s.notify.Notify("Too many login attempts, slow down", ui.SeverityWarning)
			return ErrTooManyAttempts
		}
		if creds.Username != s.adminUser ||
			bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(creds.Password)) != nil {
			logger.FromCtx(ctx).Warn("admin login rejected", zap.String("username", creds.Username))
			s.notify.Notify("Incorrect admin credentials", ui.SeverityError)
			return ErrBadCredentials
		}

		token, err := s.issueCapability()
		if err != nil {
			return err
		}
		s.capability = token
	default:
		return ErrInvalidRole
	}

	s.role = role
	if err := s.store.Set(storageKey, string(role)); err != nil {
		logger.FromCtx(ctx).Warn("role not persisted", zap.Error(err))
	}

	s.render.Render(ui.ViewAdminAuth)
	s.notify.Notify("Logged in", ui.SeveritySuccess)
	return nil
}

// Logout resets the session to customer by removing the persisted key.
func (s *Session) Logout(ctx context.Context) {
	s.role = RoleCustomer
	s.capability = ""

	if err := s.store.Remove(storageKey); err != nil {
		logger.FromCtx(ctx).Warn("role not removed", zap.Error(err))
	}

	s.render.Render(ui.ViewAdminAuth)
	s.notify.Notify("Logged out", ui.SeverityInfo)
}

// Current returns the session's role, defaulting to customer.
func (s *Session) Current() Role {
	return s.role
}

// Capability returns the admin capability issued by the last successful
// admin login, or "" when there is none.
func (s *Session) Capability() string {
	return s.capability
}

// VerifyAdmin checks that capability is a live admin capability issued
// by this session's secret.
func (s *Session) VerifyAdmin(capability string) error {
	if capability == "" {
		return ErrNotAdmin
	}

	token, err := jwt.ParseWithClaims(
		capability,
		&capabilityClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return ErrNotAdmin
	}

	claims, ok := token.Claims.(*capabilityClaims)
	if !ok || !token.Valid || claims.Role != string(RoleAdmin) {
		return ErrNotAdmin
	}
	return nil
}

func (s *Session) issueCapability() (string, error) {
	claims := capabilityClaims{
		Role: string(RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(capabilityTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
