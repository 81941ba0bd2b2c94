package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// AuthService is the storefront's local sign-in. Users live in one shared
// list; the signed-in user is remembered per session. Passwords are stored
// and compared as entered.
type AuthService struct {
	users storage.Store

	// serializes read-modify-write of the users list within this process
	mu sync.Mutex
}

func NewAuthService(shared storage.Store) *AuthService {
	return &AuthService{users: shared}
}

// Users returns every registered user.
func (a *AuthService) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := storage.LoadJSON(ctx, a.users, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register appends a user to the shared list without signing anyone in.
func (a *AuthService) Register(ctx context.Context, u models.User) error {
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if u.Email == "" || u.Password == "" || u.Name == "" {
		return ErrMissingFields
	}
	if !ValidEmail(u.Email) {
		return ErrInvalidEmail
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.Users(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	return storage.SaveJSON(ctx, a.users, storage.KeyUsers, append(users, u))
}

// Signup registers a user and signs them into the session.
func (a *AuthService) Signup(ctx context.Context, session storage.Store, req models.SignupRequest) (models.User, error) {
	if req.Password != req.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	u := models.User{Email: req.Email, Password: req.Password, Name: req.Name}
	if err := a.Register(ctx, u); err != nil {
		return models.User{}, err
	}
	log.Printf("[auth.signup] registered %s", strings.TrimSpace(req.Email))
	return a.Login(ctx, session, models.LoginRequest{Email: req.Email, Password: req.Password})
}

// Login signs the session in when email and password match a user.
func (a *AuthService) Login(ctx context.Context, session storage.Store, req models.LoginRequest) (models.User, error) {
	users, err := a.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	email := strings.TrimSpace(req.Email)
	for _, u := range users {
		if u.Email == email && u.Password == req.Password {
			if err := storage.SaveJSON(ctx, session, storage.KeyCurrentUser, u); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout forgets the session's signed-in user.
func (a *AuthService) Logout(ctx context.Context, session storage.Store) error {
	return session.Delete(ctx, storage.KeyCurrentUser)
}

// Current returns the session's signed-in user, or nil.
func (a *AuthService) Current(ctx context.Context, session storage.Store) (*models.User, error) {
	var u models.User
	ok, err := storage.LoadJSON(ctx, session, storage.KeyCurrentUser, &u)
	if err != nil || !ok || u.Email == "" {
		return nil, err
	}
	return &u, nil
}
