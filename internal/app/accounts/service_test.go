package accounts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(action, message, requestID string, details map[string]interface{})             {}
func (nopLogger) Debug(action, message, requestID string, details map[string]interface{})            {}
func (nopLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {}

type fakeUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateKey
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.users {
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id int, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Active = active
	return nil
}

func TestCreateUserHashesPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), nopLogger{})

	user, err := service.CreateUser(context.Background(), interfaces.CreateUserCommand{
		Name:     "Maria",
		Email:    "  Maria@Bar.COM ",
		Password: "segredo123",
		Role:     "gerente",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	if user.Email != "maria@bar.com" {
		t.Errorf("email = %q, want normalized lowercase", user.Email)
	}
	if user.PasswordHash == "segredo123" {
		t.Error("password stored in plaintext")
	}
	if !strings.HasPrefix(user.PasswordHash, "$2") {
		t.Errorf("hash %q is not bcrypt", user.PasswordHash)
	}
}

func TestCreateUserShortPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), nopLogger{})

	_, err := service.CreateUser(context.Background(), interfaces.CreateUserCommand{
		Name:     "Maria",
		Email:    "maria@bar.com",
		Password: "abc",
		Role:     "gerente",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateUser() error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	service := NewService(newFakeUserRepo(), nopLogger{})

	cmd := interfaces.CreateUserCommand{
		Name:     "Maria",
		Email:    "maria@bar.com",
		Password: "segredo123",
		Role:     "gerente",
	}
	if _, err := service.CreateUser(context.Background(), cmd); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if _, err := service.CreateUser(context.Background(), cmd); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Errorf("duplicate CreateUser() error = %v, want %v", err, domain.ErrDuplicateKey)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, nopLogger{})

	created, err := service.CreateUser(context.Background(), interfaces.CreateUserCommand{
		Name:     "Maria",
		Email:    "maria@bar.com",
		Password: "segredo123",
		Role:     "gerente",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Authenticate(context.Background(), "Maria@Bar.com", "segredo123")
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if user.ID != created.ID {
			t.Errorf("authenticated user id = %d, want %d", user.ID, created.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "maria@bar.com", "errada")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Authenticate() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "ninguem@bar.com", "segredo123")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Authenticate() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		if err := service.DeactivateUser(context.Background(), created.ID); err != nil {
			t.Fatalf("DeactivateUser() error = %v", err)
		}
		_, err := service.Authenticate(context.Background(), "maria@bar.com", "segredo123")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Authenticate() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, nopLogger{})

	created, err := service.CreateUser(context.Background(), interfaces.CreateUserCommand{
		Name:     "Maria",
		Email:    "maria@bar.com",
		Password: "segredo123",
		Role:     "gerente",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	oldHash := created.PasswordHash

	updated, err := service.UpdateUser(context.Background(), created.ID, interfaces.CreateUserCommand{
		Password: "novasenha",
	})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.PasswordHash == oldHash {
		t.Error("password hash unchanged after update")
	}

	if _, err := service.Authenticate(context.Background(), "maria@bar.com", "novasenha"); err != nil {
		t.Errorf("Authenticate() with new password error = %v", err)
	}
}
