package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "parkospace/internal/delivery/context"
	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/repository"
	"parkospace/internal/domain/service"
	"parkospace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	txManager    repository.TransactionManager
	otpProvider  service.OTPProvider
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OTPProvider  service.OTPProvider
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		otpProvider:  params.OTPProvider,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOTP asks the OTP provider to email a code.
func (srv *authService) SendOTP(ctx context.Context, email, phone string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domainerrors.ErrEmailRequired
	}

	if err := srv.otpProvider.Generate(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to send OTP", slog.String("email", email), slog.String("phone", phone), slog.Any("error", err))
		if errors.Is(err, service.ErrOTPNotSent) {
			return domainerrors.ErrOTPRequestFailed
		}

		return domainerrors.ErrOTPServiceUnavailable.WithDetails(err.Error())
	}

	return nil
}

// VerifyOwner checks the code, then creates the owner or refreshes its email, and issues a session token.
func (srv *authService) VerifyOwner(ctx context.Context, input *usecase.VerifyOwnerInput) (*entity.OwnerSession, error) {
	email := strings.TrimSpace(input.Email)
	code := strings.TrimSpace(input.Code)
	phone := strings.TrimSpace(input.Phone)
	if email == "" || code == "" {
		return nil, domainerrors.ErrOTPMissing
	}
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone is required")
	}

	if err := srv.otpProvider.Verify(ctx, email, code); err != nil {
		if errors.Is(err, service.ErrOTPRejected) {
			return nil, domainerrors.ErrOTPInvalid
		}
		srv.log(ctx).Error("OTP verification failed", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrOTPServiceUnavailable.WithDetails(err.Error())
	}

	var owner *entity.Owner
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ownerRepo := repoFactory.NewOwnerRepository()

		existing, err := ownerRepo.FindByPhone(ctx, phone)
		switch {
		case errors.Is(err, repository.ErrOwnerNotFound):
			owner = &entity.Owner{
				Phone:    phone,
				Name:     strings.TrimSpace(input.Name),
				Email:    email,
				JoinedAt: srv.now().UTC(),
			}
		case err != nil:
			return errors.Wrap(err, "failed to find owner")
		default:
			existing.Email = email
			owner = existing
		}

		return ownerRepo.Save(ctx, owner)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save owner", slog.String("phone", phone), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save owner")
	}

	token, err := srv.tokenService.GenerateToken(owner.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Owner verified", slog.String("phone", owner.Phone))

	return &entity.OwnerSession{Owner: *owner, Token: token}, nil
}
