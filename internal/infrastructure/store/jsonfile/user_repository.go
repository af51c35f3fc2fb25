package jsonfile

import (
	"context"
	"time"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// userRecord is the on-disk user shape. Unlike domain.User it serializes
// the password hash, since the file is the system of record.
type userRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// UserRepository stores users as a JSON array in a single file.
type UserRepository struct {
	path string
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

func (r *UserRepository) readAll() ([]userRecord, error) {
	var records []userRecord
	if _, err := readInto(r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	records, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Email == email {
			return toDomainUser(&records[i]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	records, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return toDomainUser(&records[i]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	records, err := r.readAll()
	if err != nil {
		return nil, err
	}

	// Email uniqueness is enforced at creation time only.
	for i := range records {
		if records[i].Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	records = append(records, toRecord(user))
	if err := writeJSON(r.path, records); err != nil {
		return nil, err
	}

	created := *user
	return &created, nil
}

func (r *UserRepository) ListAll(_ context.Context) ([]domain.User, error) {
	records, err := r.readAll()
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(records))
	for i := range records {
		users = append(users, *toDomainUser(&records[i]))
	}
	return users, nil
}

// Save overwrites the whole file with the given user set.
func (r *UserRepository) Save(_ context.Context, users []domain.User) error {
	records := make([]userRecord, 0, len(users))
	for i := range users {
		records = append(records, toRecord(&users[i]))
	}
	return writeJSON(r.path, records)
}

func toRecord(u *domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toDomainUser(rec *userRecord) *domain.User {
	return &domain.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Password:  rec.Password,
		Roles:     rec.Roles,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
