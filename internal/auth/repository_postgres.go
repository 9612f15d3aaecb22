package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAccountRepository stores accounts in Postgres with the
// nested stats and plan as JSONB columns.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(account *Account) error {
	ctx := context.Background()

	var exists int
	err := r.db.QueryRow(ctx,
		`SELECT 1 FROM accounts WHERE email=$1 LIMIT 1`,
		account.Email,
	).Scan(&exists)
	if err == nil {
		return ErrDuplicateEmail
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("check email: %w", err)
	}

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.Normalize()

	stats, plan, err := encodeNested(account)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO accounts
			(id, name, email, password, age, weight, height, goal,
			 daily_calorie_goal, water_goal, avatar_url, today_stats, meal_plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		account.ID, account.Name, account.Email, account.Password,
		account.Age, account.Weight, account.Height, account.Goal,
		account.DailyCalorieGoal, account.WaterGoal, account.AvatarURL,
		stats, plan,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *PostgresAccountRepository) FindByEmail(email string) (*Account, error) {
	return r.findBy(`email=$1`, email)
}

func (r *PostgresAccountRepository) FindByID(id string) (*Account, error) {
	return r.findBy(`id=$1`, id)
}

func (r *PostgresAccountRepository) findBy(where string, arg any) (*Account, error) {
	row := r.db.QueryRow(context.Background(), `
		SELECT id, name, email, password, age, weight, height, goal,
		       daily_calorie_goal, water_goal, avatar_url, today_stats, meal_plan
		FROM accounts WHERE `+where, arg)

	account := &Account{}
	var stats, plan []byte
	err := row.Scan(
		&account.ID, &account.Name, &account.Email, &account.Password,
		&account.Age, &account.Weight, &account.Height, &account.Goal,
		&account.DailyCalorieGoal, &account.WaterGoal, &account.AvatarURL,
		&stats, &plan,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}

	if err := json.Unmarshal(stats, &account.TodayStats); err != nil {
		return nil, fmt.Errorf("%w: today_stats for %s", ErrCorruptStore, account.ID)
	}
	if err := json.Unmarshal(plan, &account.CurrentMealPlan); err != nil {
		return nil, fmt.Errorf("%w: meal_plan for %s", ErrCorruptStore, account.ID)
	}
	account.Normalize()
	return account, nil
}

func (r *PostgresAccountRepository) Update(account *Account) error {
	stats, plan, err := encodeNested(account)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(context.Background(), `
		UPDATE accounts SET
			name=$2, age=$3, weight=$4, height=$5, goal=$6,
			daily_calorie_goal=$7, water_goal=$8, avatar_url=$9,
			today_stats=$10, meal_plan=$11
		WHERE id=$1
	`,
		account.ID, account.Name, account.Age, account.Weight,
		account.Height, account.Goal, account.DailyCalorieGoal,
		account.WaterGoal, account.AvatarURL, stats, plan,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func encodeNested(account *Account) (stats, plan []byte, err error) {
	stats, err = json.Marshal(account.TodayStats)
	if err != nil {
		return nil, nil, fmt.Errorf("encode today_stats: %w", err)
	}
	plan, err = json.Marshal(account.CurrentMealPlan)
	if err != nil {
		return nil, nil, fmt.Errorf("encode meal_plan: %w", err)
	}
	return stats, plan, nil
}
