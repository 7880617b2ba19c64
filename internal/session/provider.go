package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	supabase "github.com/nedpals/supabase-go"
	"github.com/rs/zerolog"
)

var ErrUnauthorized = errors.New("errUnauthorized")

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// User — текущий пользователь консоли.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Provider резолвит access-токен Supabase в пользователя и признак
// администратора. Признак хранится в таблице hr_admins, а не в токене:
// флаг нужен только для закрытия экранов, в ядро он не входит.
type Provider struct {
	client *supabase.Client
	pool   PgxPoolIface
	log    zerolog.Logger
}

func NewProvider(supabaseURL, supabaseKey string, pool PgxPoolIface, log zerolog.Logger) *Provider {
	return &Provider{
		client: supabase.CreateClient(supabaseURL, supabaseKey),
		pool:   pool,
		log:    log.With().Str("component", "session").Logger(),
	}
}

// CurrentUser проверяет токен через Supabase Auth и дополняет результат
// ролью из hr_admins.
func (p *Provider) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, ErrUnauthorized
	}

	authUser, err := p.client.Auth.User(ctx, accessToken)
	if err != nil {
		p.log.Warn().Err(err).Msg("supabase auth rejected token")
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	isAdmin, err := p.isAdmin(ctx, authUser.ID)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:      authUser.ID,
		Email:   authUser.Email,
		IsAdmin: isAdmin,
	}, nil
}

func (p *Provider) isAdmin(ctx context.Context, userID string) (bool, error) {
	query := `
SELECT 1
FROM hr_admins
WHERE user_id = $1
LIMIT 1;
`
	row := p.pool.QueryRow(ctx, query, userID)

	var x int
	err := row.Scan(&x)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("row.Scan: %w", err)
	}

	return true, nil
}
