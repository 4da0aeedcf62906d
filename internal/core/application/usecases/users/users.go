// Package users contains account registration and login.
package users

import (
	"context"
	"fmt"
	"log/slog"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/schema"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	// EmailPattern is deliberately loose: one "@" and a dotted domain.
	EmailPattern      = `^[^@\s]+@[^@\s]+\.[^@\s]+$`
	MinPasswordLength = 8
	// MaxPasswordBytes is bcrypt's input limit.
	MaxPasswordBytes = 72

	invalidCredentials = "invalid email or password"
)

// CredentialsInput is the payload of register and login.
type CredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned by register and login.
type Session struct {
	User  *user.User
	Token string
}

// CredentialsSchema validates CredentialsInput payloads.
func CredentialsSchema() *schema.Shape[CredentialsInput] {
	return schema.NewShape[CredentialsInput](
		schema.Closed(openapi3.NewObjectSchema().
			WithProperty("email", openapi3.NewStringSchema().WithPattern(EmailPattern)).
			WithProperty("password", openapi3.NewStringSchema().
				WithMinLength(MinPasswordLength).
				WithMaxLength(MaxPasswordBytes)).
			WithRequired([]string{"email", "password"})),
		schema.WithMessage("email", "email is invalid"),
		schema.WithMessage("password", fmt.Sprintf("password must have between %d and %d characters", MinPasswordLength, MaxPasswordBytes)),
	)
}

// RegisterHandler creates an account and signs the user in.
// The email lookup and the insert share one transaction.
type RegisterHandler struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewRegisterHandler(uowFactory ports.UnitOfWorkFactory, hasher ports.PasswordHasher, tokens ports.TokenIssuer) RegisterHandler {
	return RegisterHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens}
}

func (h RegisterHandler) Handle(ctx context.Context, _ usecase.Identity, input CredentialsInput) (Session, error) {
	if err := checkPasswordBytes(input.Password); err != nil {
		return Session{}, err
	}
	email := user.NormalizeEmail(input.Email)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Session{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		return Session{}, errs.NewConflictError("email already registered")
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		return Session{}, err
	}

	account, err := user.NewUser(kernel.NewUUID(), email, hash)
	if err != nil {
		return Session{}, err
	}

	if err = repo.Create(ctx, account); err != nil {
		return Session{}, fmt.Errorf("store user: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, fmt.Errorf("commit transaction: %w", err)
	}

	token, err := h.tokens.Issue(account.ID())
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{User: account, Token: token}, nil
}

// checkPasswordBytes catches multi-byte passwords that pass the schema's
// character count but exceed bcrypt's byte limit.
func checkPasswordBytes(password string) error {
	if len(password) <= MaxPasswordBytes {
		return nil
	}
	return errs.NewInvalidInputError(
		fmt.Sprintf("password must not exceed %d bytes", MaxPasswordBytes),
		errs.FieldViolation{Field: "password", Message: fmt.Sprintf("password must not exceed %d bytes", MaxPasswordBytes)},
	)
}

// LoginHandler checks credentials and issues a token.
// Unknown emails and wrong passwords produce the same error.
type LoginHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewLoginHandler(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) LoginHandler {
	return LoginHandler{users: users, hasher: hasher, tokens: tokens}
}

func (h LoginHandler) Handle(ctx context.Context, _ usecase.Identity, input CredentialsInput) (Session, error) {
	account, err := h.users.GetByEmail(ctx, user.NormalizeEmail(input.Email))
	if err != nil {
		return Session{}, fmt.Errorf("get user by email: %w", err)
	}
	if account == nil {
		return Session{}, errs.NewUnauthorizedError(invalidCredentials)
	}

	ok, err := h.hasher.Verify(account.PasswordHash(), input.Password)
	if err != nil {
		return Session{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return Session{}, errs.NewUnauthorizedError(invalidCredentials)
	}

	token, err := h.tokens.Issue(account.ID())
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{User: account, Token: token}, nil
}

// Runners bundles the account use cases for inbound adapters.
type Runners struct {
	Register *usecase.Runner[CredentialsInput, Session]
	Login    *usecase.Runner[CredentialsInput, Session]
}

func NewRunners(
	uowFactory ports.UnitOfWorkFactory,
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger *slog.Logger,
) (Runners, error) {
	register, err := usecase.NewRunner(usecase.Config[CredentialsInput, Session]{
		Name:          "users.register",
		Schema:        CredentialsSchema(),
		FallbackKind:  errs.CreateFailed,
		FallbackLabel: "failed to create user",
		Action:        NewRegisterHandler(uowFactory, hasher, tokens).Handle,
		Logger:        logger,
	})
	if err != nil {
		return Runners{}, err
	}

	login, err := usecase.NewRunner(usecase.Config[CredentialsInput, Session]{
		Name:          "users.login",
		Schema:        CredentialsSchema(),
		FallbackKind:  errs.LoginFailed,
		FallbackLabel: "failed to log in",
		Action:        NewLoginHandler(users, hasher, tokens).Handle,
		Logger:        logger,
	})
	if err != nil {
		return Runners{}, err
	}

	return Runners{Register: register, Login: login}, nil
}
