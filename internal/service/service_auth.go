package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/internal/validators"
	"github.com/mkarev/go-school-admin/models"
)

// authService is the concrete implementation of AuthService.
// It handles bootstrap admin registration, credential verification, and JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks inbound request bodies before any hashing or
	// repository call happens.
	validator validators.Validator

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterAdmin creates a bootstrap admin account.
//
// The endpoint behind it is unauthenticated, so every call is logged at warn
// level with the requested email for later audit. The password is hashed with
// bcrypt before the repository call; the plaintext never leaves this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if name, email or password is missing/malformed.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid admin registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	log.Warn().Str("email", req.Email).Msg("unrestricted bootstrap admin registration requested")

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		SchoolID:     req.SchoolID,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("admin creation ended with error")
		return models.User{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by (lower-cased) email and compares the supplied
// password against the stored bcrypt hash. An unknown email and a wrong
// password both come back as ErrWrongPassword so the two failure modes stay
// indistinguishable to the caller.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword if the account does not exist or the password does
//     not match.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(foundUser.PasswordHash, req.Password) {
		log.Info().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration. The only
// identity claim is the user id in "sub"; the role is re-read from the
// database on every authenticated request.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
