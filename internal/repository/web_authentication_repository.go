package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// WebAuthenticationRepository управляет учётными данными веб-интерфейса
type WebAuthenticationRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewWebAuthenticationRepository создаёт новый репозиторий
func NewWebAuthenticationRepository(pool *pgxpool.Pool, logger *zap.Logger) *WebAuthenticationRepository {
	return &WebAuthenticationRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// GetByLogin получает учётные данные по логину (без учёта регистра)
func (r *WebAuthenticationRepository) GetByLogin(ctx context.Context, login string) (*model.WebAuthentication, error) {
	query := `
		SELECT id, student_id, login, password_salt, password_hash
		FROM web_authentications
		WHERE login = $1
	`

	auth := &model.WebAuthentication{}
	err := r.QueryRow(ctx, query, strings.ToLower(login)).Scan(
		&auth.ID,
		&auth.StudentID,
		&auth.Login,
		&auth.PasswordSalt,
		&auth.PasswordHash,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get web authentication by login: %w", err)
	}

	return auth, nil
}
