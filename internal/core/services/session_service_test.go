package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/apperrors"
	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/services"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
	"github.com/finwealth4all/enoughfi-client/internal/tokenstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	store          *tokenstore.Store
	mockAuth       *MockAuthAPI
	mockAccounts   *MockAccountAPI
	mockOnboarding *MockOnboardingAPI
	mockFire       *MockFireAPI
	service        *services.SessionService
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.store = tokenstore.New(filepath.Join(suite.T().TempDir(), "token"))
	suite.mockAuth = new(MockAuthAPI)
	suite.mockAccounts = new(MockAccountAPI)
	suite.mockOnboarding = new(MockOnboardingAPI)
	suite.mockFire = new(MockFireAPI)
	suite.service = services.NewSessionService(
		suite.store, suite.mockAuth, suite.mockAccounts, suite.mockOnboarding, suite.mockFire)
}

func (suite *SessionServiceTestSuite) authResponse() *dto.AuthResponse {
	return &dto.AuthResponse{
		User:  domain.User{UserID: "u-1", Name: "Priya", Email: "priya@example.com"},
		Token: "fresh-token",
	}
}

func (suite *SessionServiceTestSuite) expectAccounts() {
	suite.mockAccounts.On("ListAccounts", mock.Anything).
		Return([]domain.Account{{AccountID: "a-1", Name: "Bank"}}, nil).Once()
}

func (suite *SessionServiceTestSuite) expectOnboarding(complete bool) {
	suite.mockOnboarding.On("GetOnboarding", mock.Anything).
		Return(&dto.OnboardingStatus{Complete: complete}, nil).Once()
}

func signedToken(suite *SessionServiceTestSuite, exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	suite.Require().NoError(err)
	return token
}

func (suite *SessionServiceTestSuite) TestBootstrap_NoTokenLandsUnauthenticated() {
	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.Unauthenticated, state)
	suite.mockAuth.AssertNotCalled(suite.T(), "Me", mock.Anything)
}

func (suite *SessionServiceTestSuite) TestBootstrap_ExpiredTokenDiscardedWithoutNetwork() {
	suite.Require().NoError(suite.store.Save(signedToken(suite, time.Now().Add(-time.Hour))))

	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.Unauthenticated, state)
	suite.mockAuth.AssertNotCalled(suite.T(), "Me", mock.Anything)

	persisted, err := suite.store.Load()
	suite.Require().NoError(err)
	suite.Empty(persisted)
}

func (suite *SessionServiceTestSuite) TestBootstrap_RejectedTokenDiscardedSilently() {
	suite.Require().NoError(suite.store.Save(signedToken(suite, time.Now().Add(time.Hour))))
	suite.mockAuth.On("Me", mock.Anything).
		Return(nil, apperrors.NewHTTPError(401, "token revoked")).Once()

	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err, "an invalid session is an expected logout, not an error")
	suite.Equal(services.Unauthenticated, state)
	suite.Empty(suite.service.Token())

	persisted, err := suite.store.Load()
	suite.Require().NoError(err)
	suite.Empty(persisted)
}

func (suite *SessionServiceTestSuite) TestBootstrap_IncompleteOnboardingRoutesToWizard() {
	suite.Require().NoError(suite.store.Save(signedToken(suite, time.Now().Add(time.Hour))))
	suite.mockAuth.On("Me", mock.Anything).Return(&domain.User{UserID: "u-1"}, nil).Once()
	suite.expectAccounts()
	suite.expectOnboarding(false)

	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.OnboardingRequired, state)
	suite.mockFire.AssertNotCalled(suite.T(), "FireSnapshot", mock.Anything)
}

func (suite *SessionServiceTestSuite) TestBootstrap_CompleteOnboardingGoesReadyAndFetchesSnapshot() {
	suite.Require().NoError(suite.store.Save(signedToken(suite, time.Now().Add(time.Hour))))
	suite.mockAuth.On("Me", mock.Anything).Return(&domain.User{UserID: "u-1"}, nil).Once()
	suite.expectAccounts()
	suite.expectOnboarding(true)
	snapshot := &domain.FireSnapshot{HasProfile: true, FireProgress: 42}
	suite.mockFire.On("FireSnapshot", mock.Anything).Return(snapshot, nil).Once()

	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.Ready, state)
	suite.Len(suite.service.Accounts(), 1)
	suite.Require().Eventually(func() bool {
		return suite.service.Snapshot() != nil
	}, time.Second, 5*time.Millisecond)
	suite.Equal(snapshot, suite.service.Snapshot())
}

func (suite *SessionServiceTestSuite) TestBootstrap_SnapshotFailureDoesNotRevertReady() {
	suite.Require().NoError(suite.store.Save(signedToken(suite, time.Now().Add(time.Hour))))
	suite.mockAuth.On("Me", mock.Anything).Return(&domain.User{UserID: "u-1"}, nil).Once()
	suite.expectAccounts()
	suite.expectOnboarding(true)
	fetched := make(chan struct{})
	suite.mockFire.On("FireSnapshot", mock.Anything).
		Run(func(mock.Arguments) { close(fetched) }).
		Return(nil, assert.AnError).Once()

	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.Ready, state)
	select {
	case <-fetched:
	case <-time.After(time.Second):
		suite.FailNow("snapshot fetch never started")
	}
	suite.Equal(services.Ready, suite.service.State())
	suite.Nil(suite.service.Snapshot())
}

func (suite *SessionServiceTestSuite) TestBootstrap_AccountFailureTolerated() {
	suite.Require().NoError(suite.store.Save(signedToken(suite, time.Now().Add(time.Hour))))
	suite.mockAuth.On("Me", mock.Anything).Return(&domain.User{UserID: "u-1"}, nil).Once()
	suite.mockAccounts.On("ListAccounts", mock.Anything).Return(nil, assert.AnError).Once()
	suite.expectOnboarding(false)

	state, err := suite.service.Bootstrap(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.OnboardingRequired, state)
	suite.Empty(suite.service.Accounts())
}

func (suite *SessionServiceTestSuite) TestLogin_PersistsTokenBeforeDependentFetches() {
	suite.mockAuth.On("Login", mock.Anything, dto.LoginRequest{Email: "priya@example.com", Password: "pw"}).
		Return(suite.authResponse(), nil).Once()
	suite.expectAccounts()
	suite.expectOnboarding(false)

	state, err := suite.service.Login(context.Background(), "priya@example.com", "pw")

	suite.Require().NoError(err)
	suite.Equal(services.OnboardingRequired, state)
	suite.Equal("fresh-token", suite.service.Token())

	persisted, err := suite.store.Load()
	suite.Require().NoError(err)
	suite.Equal("fresh-token", persisted)
}

func (suite *SessionServiceTestSuite) TestLogin_BadCredentialsLeaveStateUntouched() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewHTTPError(401, "invalid credentials")).Once()

	state, err := suite.service.Login(context.Background(), "priya@example.com", "wrong")

	suite.Require().Error(err)
	suite.Equal(services.Unauthenticated, state)
	suite.Empty(suite.service.Token())
}

func (suite *SessionServiceTestSuite) TestLogin_OnboardingCheckFailureFallsBackToWizard() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything).Return(suite.authResponse(), nil).Once()
	suite.expectAccounts()
	suite.mockOnboarding.On("GetOnboarding", mock.Anything).Return(nil, assert.AnError).Once()

	state, err := suite.service.Login(context.Background(), "priya@example.com", "pw")

	suite.Require().NoError(err)
	suite.Equal(services.OnboardingRequired, state)
	suite.mockFire.AssertNotCalled(suite.T(), "FireSnapshot", mock.Anything)
}

func (suite *SessionServiceTestSuite) TestDemoLogin_OnboardingCheckFailureFallsBackToReady() {
	resp := suite.authResponse()
	resp.User.IsDemo = true
	suite.mockAuth.On("DemoLogin", mock.Anything).Return(resp, nil).Once()
	suite.expectAccounts()
	suite.mockOnboarding.On("GetOnboarding", mock.Anything).Return(nil, assert.AnError).Once()
	fetched := make(chan struct{})
	suite.mockFire.On("FireSnapshot", mock.Anything).
		Run(func(mock.Arguments) { close(fetched) }).
		Return(&domain.FireSnapshot{HasProfile: true}, nil).Once()

	state, err := suite.service.DemoLogin(context.Background())

	suite.Require().NoError(err)
	suite.Equal(services.Ready, state)
	select {
	case <-fetched:
	case <-time.After(time.Second):
		suite.FailNow("snapshot fetch never started")
	}
}

func (suite *SessionServiceTestSuite) TestMarkOnboarded_GoesReadyWithFreshData() {
	suite.expectAccounts()
	suite.mockFire.On("FireSnapshot", mock.Anything).
		Return(&domain.FireSnapshot{HasProfile: true}, nil).Once()

	state := suite.service.MarkOnboarded(context.Background())

	suite.Equal(services.Ready, state)
	suite.Require().Eventually(func() bool {
		return suite.service.Snapshot() != nil
	}, time.Second, 5*time.Millisecond)
}

func (suite *SessionServiceTestSuite) TestRefreshSnapshot_SynchronousAndCached() {
	snapshot := &domain.FireSnapshot{HasProfile: true, FireProgress: 61}
	suite.mockFire.On("FireSnapshot", mock.Anything).Return(snapshot, nil).Once()

	got, err := suite.service.RefreshSnapshot(context.Background())

	suite.Require().NoError(err)
	suite.Equal(snapshot, got)
	suite.Equal(snapshot, suite.service.Snapshot())
}

func (suite *SessionServiceTestSuite) TestLogout_ClearsEverything() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything).Return(suite.authResponse(), nil).Once()
	suite.expectAccounts()
	suite.expectOnboarding(false)
	_, err := suite.service.Login(context.Background(), "priya@example.com", "pw")
	suite.Require().NoError(err)

	suite.service.Logout()

	suite.Equal(services.Unauthenticated, suite.service.State())
	suite.Empty(suite.service.Token())
	suite.Nil(suite.service.User())
	suite.Empty(suite.service.Accounts())

	persisted, err := suite.store.Load()
	suite.Require().NoError(err)
	suite.Empty(persisted)
}

func (suite *SessionServiceTestSuite) TestLogout_DropsInFlightSnapshotFetch() {
	resp := suite.authResponse()
	suite.mockAuth.On("Login", mock.Anything, mock.Anything).Return(resp, nil).Once()
	suite.expectAccounts()
	suite.expectOnboarding(true)

	release := make(chan struct{})
	suite.mockFire.On("FireSnapshot", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&domain.FireSnapshot{HasProfile: true, FireProgress: 42}, nil).Once()

	state, err := suite.service.Login(context.Background(), "priya@example.com", "pw")
	suite.Require().NoError(err)
	suite.Require().Equal(services.Ready, state)

	// Log out while the snapshot fetch is still blocked, then let it land.
	suite.service.Logout()
	close(release)

	suite.Never(func() bool {
		return suite.service.Snapshot() != nil
	}, 200*time.Millisecond, 10*time.Millisecond)
	suite.Equal(services.Unauthenticated, suite.service.State())
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
