package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/infrastructure/postgres"
)

func testUser() *entity.User {
	now := time.Now()
	return &entity.User{
		ID:           "u-1",
		Email:        "priya@voyagetech.example",
		Username:     "priya.n",
		PasswordHash: "x",
		Role:         "csm",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestUserCreateDuplicateEmailConstraint(t *testing.T) {
	q := &stubQuerier{execErr: uniqueViolation("users_email_key")}
	repo := postgres.NewUserRepository(q)

	err := repo.Create(testUser())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreateDuplicateUsernameConstraint(t *testing.T) {
	q := &stubQuerier{execErr: uniqueViolation("users_username_key")}
	repo := postgres.NewUserRepository(q)

	err := repo.Create(testUser())
	assert.ErrorIs(t, err, domain.ErrDuplicate, "a taken username must not surface as a taken email")
}

func TestUserUpdateDuplicateUsernameConstraint(t *testing.T) {
	q := &stubQuerier{execErr: uniqueViolation("users_username_key")}
	repo := postgres.NewUserRepository(q)

	err := repo.Update(testUser())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
