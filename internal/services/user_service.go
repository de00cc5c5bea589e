package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/apperr"
	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/mailer"
	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/otp"
	"github.com/openhired/jobboard/internal/password"
	"github.com/openhired/jobboard/internal/repository"
	"github.com/openhired/jobboard/internal/token"
)

const dobLayout = "2006-01-02"

// UserService owns the account lifecycle: signup, email confirmation,
// sign-in, profile mutation, and the password reset flows.
type UserService struct {
	users  repository.UserRepository
	mail   mailer.Sender
	tokens *token.Issuer
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, mail mailer.Sender, tokens *token.Issuer, logger *zap.Logger) *UserService {
	return &UserService{users: users, mail: mail, tokens: tokens, logger: logger}
}

// Signup creates an unconfirmed account and emails a 6-digit passcode
// valid for ten minutes.
func (s *UserService) Signup(ctx context.Context, req dtos.SignupRequest) (*models.User, error) {
	if taken, err := s.users.EmailTaken(ctx, req.Email, 0); err != nil {
		return nil, apperr.Internal(err)
	} else if taken {
		return nil, apperr.Conflict("email_taken", "Email is already registered.")
	}
	if taken, err := s.users.UsernameTaken(ctx, req.Username, 0); err != nil {
		return nil, apperr.Internal(err)
	} else if taken {
		return nil, apperr.Conflict("username_taken", "Username is already registered.")
	}
	if taken, err := s.users.MobileTaken(ctx, req.MobileNumber, 0); err != nil {
		return nil, apperr.Internal(err)
	} else if taken {
		return nil, apperr.Conflict("mobile_taken", "Mobile number is already registered.")
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return nil, apperr.Validation("validation_failed", "dob must be YYYY-MM-DD.")
	}
	code, expiry, err := otp.Generate(otp.ConfirmTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hash,
		RecoveryEmail: req.RecoveryEmail,
		DOB:           dob,
		MobileNumber:  req.MobileNumber,
		Role:          models.Role(req.Role),
		Status:        models.StatusOffline,
		OTPCode:       code,
		OTPExpiry:     &expiry,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	subject, body := mailer.OTPBody(code)
	notify(s.logger, s.mail, user.Email, subject, body)
	return user, nil
}

// ConfirmEmail consumes an unexpired passcode for the given address.
// A confirmed account has its passcode fields cleared, so replaying
// the same code fails.
func (s *UserService) ConfirmEmail(ctx context.Context, req dtos.ConfirmEmailRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Validation("invalid_otp", "Invalid or expired passcode.")
		}
		return apperr.Internal(err)
	}
	if !otp.Matches(user.OTPCode, user.OTPExpiry, req.OTP) {
		return apperr.Validation("invalid_otp", "Invalid or expired passcode.")
	}

	user.Confirmed = true
	user.OTPCode = ""
	user.OTPExpiry = nil
	if err := s.users.Save(ctx, user); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// SignIn authenticates by email, recovery email, or mobile number and
// returns a bearer token. All failures look identical to the caller,
// including an existing but unconfirmed account.
func (s *UserService) SignIn(ctx context.Context, req dtos.SigninRequest) (string, error) {
	invalid := apperr.Unauthenticated("invalid_credentials", "Invalid credentials.")

	user, err := s.users.FindByIdentifier(ctx, req.Email, req.RecoveryEmail, req.MobileNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", invalid
		}
		return "", apperr.Internal(err)
	}
	if !user.Confirmed {
		return "", invalid
	}
	ok, err := password.Verify(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return "", invalid
	}

	user.Status = models.StatusOnline
	if err := s.users.Save(ctx, user); err != nil {
		return "", apperr.Internal(err)
	}

	signed, err := s.tokens.Sign(user.ID)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return signed, nil
}

// Update applies a partial profile change, re-checking uniqueness when
// the email or mobile number moves.
func (s *UserService) Update(ctx context.Context, userID uint, req dtos.UpdateAccountRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user_not_found", "User not found.")
		}
		return nil, apperr.Internal(err)
	}

	if req.Email != "" && req.Email != user.Email {
		if taken, err := s.users.EmailTaken(ctx, req.Email, userID); err != nil {
			return nil, apperr.Internal(err)
		} else if taken {
			return nil, apperr.Conflict("email_taken", "Email is already in use.")
		}
		user.Email = req.Email
	}
	if req.MobileNumber != "" && req.MobileNumber != user.MobileNumber {
		if taken, err := s.users.MobileTaken(ctx, req.MobileNumber, userID); err != nil {
			return nil, apperr.Internal(err)
		} else if taken {
			return nil, apperr.Conflict("mobile_taken", "Mobile number is already in use.")
		}
		user.MobileNumber = req.MobileNumber
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.RecoveryEmail != "" {
		user.RecoveryEmail = req.RecoveryEmail
	}
	if req.DOB != "" {
		dob, err := time.Parse(dobLayout, req.DOB)
		if err != nil {
			return nil, apperr.Validation("validation_failed", "dob must be YYYY-MM-DD.")
		}
		user.DOB = dob
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// UpdatePassword rotates the credential after verifying the current one
// and emails a confirmation notice.
func (s *UserService) UpdatePassword(ctx context.Context, userID uint, req dtos.UpdatePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("user_not_found", "User not found.")
		}
		return apperr.Internal(err)
	}

	ok, err := password.Verify(req.CurrentPassword, user.PasswordHash)
	if err != nil || !ok {
		return apperr.Validation("invalid_credentials", "Current password is incorrect.")
	}
	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	user.PasswordHash = hash
	if err := s.users.Save(ctx, user); err != nil {
		return apperr.Internal(err)
	}

	subject, body := mailer.PasswordChangedBody()
	notify(s.logger, s.mail, user.Email, subject, body)
	return nil
}

// DeleteAccount removes the caller's own record.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("user_not_found", "User not found.")
		}
		return apperr.Internal(err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user_not_found", "User not found.")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// RequestPasswordReset issues a fresh passcode valid for fifteen
// minutes and emails it.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("user_not_found", "User not found.")
		}
		return apperr.Internal(err)
	}

	code, expiry, err := otp.Generate(otp.ResetTTL)
	if err != nil {
		return apperr.Internal(err)
	}
	user.OTPCode = code
	user.OTPExpiry = &expiry
	if err := s.users.Save(ctx, user); err != nil {
		return apperr.Internal(err)
	}

	subject, body := mailer.ResetOTPBody(code)
	notify(s.logger, s.mail, user.Email, subject, body)
	return nil
}

// ResetPassword consumes the passcode issued for exactly this email.
// A code issued to one account can never reset another.
func (s *UserService) ResetPassword(ctx context.Context, req dtos.ResetPasswordRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("user_not_found", "User not found.")
		}
		return apperr.Internal(err)
	}
	if !otp.Matches(user.OTPCode, user.OTPExpiry, req.OTP) {
		return apperr.Validation("invalid_otp", "Invalid or expired passcode.")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	user.PasswordHash = hash
	user.OTPCode = ""
	user.OTPExpiry = nil
	if err := s.users.Save(ctx, user); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// AccountsByRecoveryEmail lists accounts sharing a recovery address.
func (s *UserService) AccountsByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	users, err := s.users.FindByRecoveryEmail(ctx, recoveryEmail)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("not_found", "No accounts found for the specified recovery email.")
	}
	return users, nil
}
