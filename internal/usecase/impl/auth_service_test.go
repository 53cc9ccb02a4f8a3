package impl

import (
	"context"
	"testing"
	"time"

	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/repository"
	"parkospace/internal/domain/service"
	mockRepo "parkospace/internal/mocks/repository"
	mockSvc "parkospace/internal/mocks/service"
	"parkospace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	ownerRepo    *mockRepo.MockOwnerRepository
	otpProvider  *mockSvc.MockOTPProvider
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		ownerRepo:    mockRepo.NewMockOwnerRepository(t),
		otpProvider:  mockSvc.NewMockOTPProvider(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		OTPProvider:  fx.otpProvider,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// expectTransaction runs the transactional callback against the mocked repository factory.
func (fx authServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewOwnerRepository().Return(fx.ownerRepo)
}

func TestAuthService_SendOTP(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.otpProvider.EXPECT().Generate(ctx, "owner@example.com").Return(nil)

	err := fx.service.SendOTP(ctx, "  owner@example.com ", "9000000001")
	assert.NoError(t, err)
}

func TestAuthService_SendOTP_Errors(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.SendOTP(context.Background(), " ", "9000000001")
		assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
		assert.Equal(t, "Email is required for OTP", domainerrors.ErrEmailRequired.Message())
	})

	t.Run("provider refused", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.otpProvider.EXPECT().Generate(ctx, "owner@example.com").Return(service.ErrOTPNotSent)

		err := fx.service.SendOTP(ctx, "owner@example.com", "")
		assert.ErrorIs(t, err, domainerrors.ErrOTPRequestFailed)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.otpProvider.EXPECT().Generate(ctx, "owner@example.com").Return(errors.New("dial tcp: connection refused"))

		err := fx.service.SendOTP(ctx, "owner@example.com", "")
		assert.ErrorIs(t, err, domainerrors.ErrOTPServiceUnavailable)
	})
}

func TestAuthService_VerifyOwner_NewOwner(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.otpProvider.EXPECT().Verify(ctx, "owner@example.com", "123456").Return(nil)
	fx.expectTransaction(ctx)
	fx.ownerRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(nil, repository.ErrOwnerNotFound)
	fx.ownerRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(o *entity.Owner) bool {
			return o.Phone == "9000000001" && o.Email == "owner@example.com" && o.Name == "Asha" && !o.JoinedAt.IsZero()
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken("9000000001").Return("signed-token", nil)

	session, err := fx.service.VerifyOwner(ctx, &usecase.VerifyOwnerInput{
		Phone: "9000000001",
		Email: "owner@example.com",
		Code:  "123456",
		Name:  "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, "9000000001", session.Owner.Phone)
}

func TestAuthService_VerifyOwner_ExistingOwnerRefreshesEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	existing := &entity.Owner{Phone: "9000000001", Name: "Asha", Email: "old@example.com", JoinedAt: joined}

	fx.otpProvider.EXPECT().Verify(ctx, "new@example.com", "123456").Return(nil)
	fx.expectTransaction(ctx)
	fx.ownerRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(existing, nil)
	fx.ownerRepo.EXPECT().Save(ctx, existing).Return(nil)
	fx.tokenService.EXPECT().GenerateToken("9000000001").Return("signed-token", nil)

	session, err := fx.service.VerifyOwner(ctx, &usecase.VerifyOwnerInput{
		Phone: "9000000001",
		Email: "new@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", session.Owner.Email)
	assert.Equal(t, "Asha", session.Owner.Name)
	assert.Equal(t, joined, session.Owner.JoinedAt)
}

func TestAuthService_VerifyOwner_Errors(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.VerifyOwner(context.Background(), &usecase.VerifyOwnerInput{Phone: "9000000001", Email: "owner@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrOTPMissing)
	})

	t.Run("missing phone", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.VerifyOwner(context.Background(), &usecase.VerifyOwnerInput{Email: "owner@example.com", Code: "1"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("wrong code", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.otpProvider.EXPECT().Verify(ctx, "owner@example.com", "000000").Return(service.ErrOTPRejected)

		_, err := fx.service.VerifyOwner(ctx, &usecase.VerifyOwnerInput{Phone: "9000000001", Email: "owner@example.com", Code: "000000"})
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.otpProvider.EXPECT().Verify(ctx, "owner@example.com", "123456").Return(errors.New("timeout"))

		_, err := fx.service.VerifyOwner(ctx, &usecase.VerifyOwnerInput{Phone: "9000000001", Email: "owner@example.com", Code: "123456"})
		assert.ErrorIs(t, err, domainerrors.ErrOTPServiceUnavailable)
	})

	t.Run("save fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.otpProvider.EXPECT().Verify(ctx, "owner@example.com", "123456").Return(nil)
		fx.expectTransaction(ctx)
		fx.ownerRepo.EXPECT().FindByPhone(ctx, "9000000001").Return(nil, repository.ErrOwnerNotFound)
		fx.ownerRepo.EXPECT().Save(ctx, mock.Anything).Return(errors.New("disk full"))

		session, err := fx.service.VerifyOwner(ctx, &usecase.VerifyOwnerInput{Phone: "9000000001", Email: "owner@example.com", Code: "123456"})
		assert.Nil(t, session)
		assert.Contains(t, err.Error(), "failed to save owner")
	})
}
