package pg

import (
	"context"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/state"
	"breakout_bot/internal/modules/state/pg/statesql"
	"breakout_bot/pkg/db"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// Store — pg-реализация state.Store поверх таблицы bot_state.
// Read-modify-write идёт через SELECT ... FOR UPDATE в транзакции.
type Store struct {
	db  *db.PgTxManager
	sql *statesql.Queries
}

func New(manager *db.PgTxManager) *Store {
	return &Store{
		db:  manager,
		sql: statesql.New(),
	}
}

func (s *Store) get(ctx context.Context, key string, out any) error {
	raw, err := s.sql.Get(ctx, s.db.Conn(), key)
	if errors.Is(err, pgx.ErrNoRows) {
		return state.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "bot_state get")
	}
	return sonic.Unmarshal(raw, out)
}

func (s *Store) set(ctx context.Context, key string, val any) error {
	raw, err := sonic.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "bot_state marshal")
	}
	return s.sql.Upsert(ctx, s.db.Conn(), &statesql.UpsertParams{Key: key, Data: raw})
}

func (s *Store) Position(ctx context.Context, symbol string) (*models.PositionRecord, error) {
	var rec models.PositionRecord
	if err := s.get(ctx, state.TradeKey(symbol), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) SetPosition(ctx context.Context, symbol string, rec *models.PositionRecord) error {
	return s.set(ctx, state.TradeKey(symbol), rec)
}

func (s *Store) UpdatePosition(ctx context.Context, symbol string, apply func(*models.PositionRecord)) (*models.PositionRecord, error) {
	var rec models.PositionRecord

	err := s.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		raw, err := s.sql.GetForUpdate(ctxTx, tx, state.TradeKey(symbol))
		if errors.Is(err, pgx.ErrNoRows) {
			return state.ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "bot_state lock")
		}
		if err := sonic.Unmarshal(raw, &rec); err != nil {
			return errors.Wrap(err, "bot_state unmarshal")
		}

		apply(&rec)

		out, err := sonic.Marshal(&rec)
		if err != nil {
			return errors.Wrap(err, "bot_state marshal")
		}
		return s.sql.Upsert(ctxTx, tx, &statesql.UpsertParams{Key: state.TradeKey(symbol), Data: out})
	})
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return nil, state.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *Store) Positions(ctx context.Context) ([]*models.PositionRecord, error) {
	rows, err := s.sql.ListBySuffix(ctx, s.db.Conn(), "-TRADE")
	if err != nil {
		return nil, errors.Wrap(err, "bot_state list")
	}
	res := make([]*models.PositionRecord, 0, len(rows))
	for _, raw := range rows {
		var rec models.PositionRecord
		if err := sonic.Unmarshal(raw, &rec); err != nil {
			return nil, errors.Wrap(err, "bot_state unmarshal")
		}
		res = append(res, &rec)
	}
	return res, nil
}

func (s *Store) Candle(ctx context.Context, symbol string) (*models.DayCandle, error) {
	var c models.DayCandle
	if err := s.get(ctx, state.CandleKey(symbol), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) SetCandle(ctx context.Context, symbol string, c *models.DayCandle) error {
	return s.set(ctx, state.CandleKey(symbol), c)
}
