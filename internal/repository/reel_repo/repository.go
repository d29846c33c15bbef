package reel_repo

import (
	"context"
	"database/sql"
	"errors"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "reel_game_state"
	colUserID     = "user_id"
	colTotalSpins = "total_spins"
	colTotalBet   = "total_bet"
	colTotalWon   = "total_won"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewReelRepository(dbc *pgxpool.Pool) repository.ReelRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateReelState - создает запись состояния игры для пользователя, если ее еще нет
func (r *repo) CreateReelState(ctx context.Context, id int) error {
	// Формируем запрос на вставку, если записи не существует
	query := sq.Insert(table).
		Columns(colUserID, colTotalSpins, colTotalBet, colTotalWon).
		Values(id, 0, 0, 0).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetPlayStats - получение накопленной статистики игр пользователя.
// Возвращает нули, если записи нет
func (r *repo) GetPlayStats(ctx context.Context, id int) (model.PlayStats, error) {
	// Формируем запрос
	query := sq.Select(colTotalSpins, colTotalBet, colTotalWon).
		From(table).
		Where(sq.Eq{colUserID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.PlayStats{}, err
	}

	var stats model.PlayStats
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&stats.TotalSpins, &stats.TotalBet, &stats.TotalWon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PlayStats{}, nil
		}
		return model.PlayStats{}, err
	}

	return stats, nil
}

// RecordSpin - прибавляет спин к накопленной статистике пользователя.
// Запись должна существовать (создается через CreateReelState)
func (r *repo) RecordSpin(ctx context.Context, id int, bet, prize int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalSpins, sq.Expr(colTotalSpins+" + 1")).
		Set(colTotalBet, sq.Expr(colTotalBet+" + ?", bet)).
		Set(colTotalWon, sq.Expr(colTotalWon+" + ?", prize)).
		Where(sq.Eq{colUserID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return errors.New("reel game state not found")
	}
	return nil
}
