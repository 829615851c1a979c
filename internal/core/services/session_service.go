package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/ports"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
	"github.com/finwealth4all/enoughfi-client/internal/platform/logging"
	"github.com/finwealth4all/enoughfi-client/internal/tokenstore"
)

// ScreenState is the top-level screen the client should show.
type ScreenState string

const (
	Unauthenticated    ScreenState = "UNAUTHENTICATED"
	Restoring          ScreenState = "RESTORING"
	OnboardingRequired ScreenState = "ONBOARDING_REQUIRED"
	Ready              ScreenState = "READY"
)

// SessionService owns the process-wide session: bearer token, current user,
// account list and the lazily loaded FIRE snapshot. It is the single writer
// of the token; the request layer reads it through the TokenSource interface.
type SessionService struct {
	store         *tokenstore.Store
	authAPI       ports.AuthAPIFacade
	accountAPI    ports.AccountAPIFacade
	onboardingAPI ports.OnboardingAPIFacade
	fireAPI       ports.FireAPIFacade
	now           func() time.Time

	mu       sync.Mutex
	state    ScreenState
	token    string
	user     *domain.User
	accounts []domain.Account
	snapshot *domain.FireSnapshot

	// Snapshot fetches are fire-and-forget; the generation counter stops a
	// stale completion from overwriting a newer user-triggered refresh.
	snapshotGen     uint64
	snapshotApplied uint64
}

// NewSessionService wires the session over the API facades and token store.
func NewSessionService(store *tokenstore.Store, auth ports.AuthAPIFacade, accounts ports.AccountAPIFacade, onboarding ports.OnboardingAPIFacade, fire ports.FireAPIFacade) *SessionService {
	return &SessionService{
		store:         store,
		authAPI:       auth,
		accountAPI:    accounts,
		onboardingAPI: onboarding,
		fireAPI:       fire,
		now:           time.Now,
		state:         Unauthenticated,
	}
}

// Token implements the request layer's TokenSource.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns the current screen state.
func (s *SessionService) State() ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the current user, nil when unauthenticated.
func (s *SessionService) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Accounts returns the cached account list.
func (s *SessionService) Accounts() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts
}

// Snapshot returns the cached FIRE snapshot, nil until a fetch lands.
func (s *SessionService) Snapshot() *domain.FireSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Bootstrap restores the session from the persisted token and decides the
// first screen. A missing, expired or rejected token lands on
// Unauthenticated without surfacing an error; that is an expected logout.
func (s *SessionService) Bootstrap(ctx context.Context) (ScreenState, error) {
	logger := logging.FromCtx(ctx)

	token, err := s.store.Load()
	if err != nil {
		logger.Warn("Failed to read persisted token", slog.String("error", err.Error()))
	}
	if token == "" {
		return s.setState(Unauthenticated), nil
	}
	if tokenstore.Expired(token, s.now()) {
		logger.Info("Persisted token expired, discarding")
		_ = s.store.Clear()
		return s.setState(Unauthenticated), nil
	}

	s.mu.Lock()
	s.token = token
	s.state = Restoring
	s.mu.Unlock()

	user, err := s.authAPI.Me(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Restoring, err
		}
		logger.Info("Session restore failed, discarding token", slog.String("error", err.Error()))
		s.teardown()
		return Unauthenticated, nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return s.afterAuth(ctx, OnboardingRequired)
}

// Login authenticates with credentials and runs the account+onboarding check.
func (s *SessionService) Login(ctx context.Context, email, password string) (ScreenState, error) {
	resp, err := s.authAPI.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.State(), err
	}
	return s.adopt(ctx, resp, OnboardingRequired)
}

// Register creates an account and starts its first session. New users have
// no profile, so an onboarding fetch failure still routes to the wizard.
func (s *SessionService) Register(ctx context.Context, name, email, password string) (ScreenState, error) {
	resp, err := s.authAPI.Register(ctx, dto.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return s.State(), err
	}
	return s.adopt(ctx, resp, OnboardingRequired)
}

// DemoLogin starts a demo session. Demo users get the main app even when the
// onboarding check cannot be answered.
func (s *SessionService) DemoLogin(ctx context.Context) (ScreenState, error) {
	resp, err := s.authAPI.DemoLogin(ctx)
	if err != nil {
		return s.State(), err
	}
	return s.adopt(ctx, resp, Ready)
}

// adopt stores a fresh auth response (token persisted first) and proceeds
// with the shared post-auth check.
func (s *SessionService) adopt(ctx context.Context, resp *dto.AuthResponse, onboardingFallback ScreenState) (ScreenState, error) {
	if err := s.store.Save(resp.Token); err != nil {
		logging.FromCtx(ctx).Warn("Failed to persist token", slog.String("error", err.Error()))
	}
	s.mu.Lock()
	s.token = resp.Token
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	return s.afterAuth(ctx, onboardingFallback)
}

// afterAuth fetches the account list and onboarding completeness
// concurrently, waits for both, and decides the terminal screen. The
// snapshot fetch kicked off on Ready is detached and must never block or
// revert the transition.
func (s *SessionService) afterAuth(ctx context.Context, onboardingFallback ScreenState) (ScreenState, error) {
	logger := logging.FromCtx(ctx)

	type accountsResult struct {
		accounts []domain.Account
		err      error
	}
	type onboardingResult struct {
		status *dto.OnboardingStatus
		err    error
	}

	accountsCh := make(chan accountsResult, 1)
	onboardingCh := make(chan onboardingResult, 1)
	go func() {
		accounts, err := s.accountAPI.ListAccounts(ctx)
		accountsCh <- accountsResult{accounts, err}
	}()
	go func() {
		status, err := s.onboardingAPI.GetOnboarding(ctx)
		onboardingCh <- onboardingResult{status, err}
	}()
	accountsRes := <-accountsCh
	onboardingRes := <-onboardingCh

	if err := ctx.Err(); err != nil {
		return s.State(), err
	}

	if accountsRes.err != nil {
		// Not fatal; the main app can refresh accounts later.
		logger.Warn("Failed to fetch accounts after auth", slog.String("error", accountsRes.err.Error()))
	} else {
		s.mu.Lock()
		s.accounts = accountsRes.accounts
		s.mu.Unlock()
	}

	if onboardingRes.err != nil {
		logger.Warn("Failed to fetch onboarding status", slog.String("error", onboardingRes.err.Error()))
		if onboardingFallback == Ready {
			s.startSnapshotFetch(ctx)
		}
		return s.setState(onboardingFallback), nil
	}

	if !onboardingRes.status.Complete {
		return s.setState(OnboardingRequired), nil
	}

	s.startSnapshotFetch(ctx)
	return s.setState(Ready), nil
}

// MarkOnboarded transitions to Ready after the wizard completes or is
// skipped, refreshing accounts and kicking off a snapshot fetch.
func (s *SessionService) MarkOnboarded(ctx context.Context) ScreenState {
	if accounts, err := s.accountAPI.ListAccounts(ctx); err == nil {
		s.mu.Lock()
		s.accounts = accounts
		s.mu.Unlock()
	}
	s.startSnapshotFetch(ctx)
	return s.setState(Ready)
}

// RefreshAccounts re-fetches the account list into the session cache.
func (s *SessionService) RefreshAccounts(ctx context.Context) error {
	accounts, err := s.accountAPI.ListAccounts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()
	return nil
}

// RefreshSnapshot fetches the FIRE snapshot synchronously, used for
// user-triggered refreshes.
func (s *SessionService) RefreshSnapshot(ctx context.Context) (*domain.FireSnapshot, error) {
	s.mu.Lock()
	s.snapshotGen++
	gen := s.snapshotGen
	s.mu.Unlock()

	snapshot, err := s.fireAPI.FireSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.applySnapshot(gen, snapshot)
	return snapshot, nil
}

// startSnapshotFetch is the detached best-effort fetch triggered on Ready.
// Failure is logged and otherwise invisible.
func (s *SessionService) startSnapshotFetch(ctx context.Context) {
	s.mu.Lock()
	s.snapshotGen++
	gen := s.snapshotGen
	s.mu.Unlock()

	logger := logging.FromCtx(ctx)
	go func() {
		snapshot, err := s.fireAPI.FireSnapshot(context.WithoutCancel(ctx))
		if err != nil {
			logger.Debug("Background snapshot fetch failed", slog.String("error", err.Error()))
			return
		}
		s.applySnapshot(gen, snapshot)
	}()
}

func (s *SessionService) applySnapshot(gen uint64, snapshot *domain.FireSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.snapshotApplied {
		return // a newer fetch already landed
	}
	s.snapshotApplied = gen
	s.snapshot = snapshot
}

// Logout clears all session state synchronously. The persisted token goes
// first so no in-flight retry can pick it back up.
func (s *SessionService) Logout() {
	s.teardown()
}

func (s *SessionService) teardown() {
	_ = s.store.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.accounts = nil
	s.snapshot = nil
	// Invalidate any snapshot fetch still in flight so its completion is
	// dropped instead of repopulating a logged-out session.
	s.snapshotGen++
	s.snapshotApplied = s.snapshotGen
	s.state = Unauthenticated
}

func (s *SessionService) setState(state ScreenState) ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return state
}
