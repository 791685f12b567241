package repository

import (
	"context"
	"errors"
	"time"

	"github.com/veralabs/intentswap/src/logger"
	"github.com/veralabs/intentswap/src/swap/domain"
	"gorm.io/gorm"
)

var _ domain.QuoteRepository = (*PostgresSwapRepo)(nil)
var _ domain.SwapRepository = (*PostgresSwapRepo)(nil)

// ---------- MODELS ----------

type IssuedQuote struct {
	ID               string `gorm:"primarykey"`
	CorrelationID    string `gorm:"index"`
	DepositAddress   string `gorm:"index"`
	OriginAsset      string
	DestinationAsset string
	AmountIn         string
	AmountOut        string
	SwapType         string
	TemplateUsed     string
	Deadline         time.Time
	CreatedAt        time.Time
}

type Swap struct {
	DepositAddress   string `gorm:"primarykey"`
	CorrelationID    string `gorm:"index"`
	Status           string `gorm:"index"`
	OriginAsset      string
	DestinationAsset string
	AmountIn         string
	DepositTxHash    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ---------- REPO ----------

type PostgresSwapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresSwapRepo(db *gorm.DB, log *logger.Logger) *PostgresSwapRepo {
	if err := db.AutoMigrate(&IssuedQuote{}, &Swap{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &PostgresSwapRepo{db: db, log: log}
}

// ---------- QUOTES ----------

func (r *PostgresSwapRepo) SaveQuote(ctx context.Context, q *domain.IssuedQuote) error {
	model := IssuedQuote{
		ID:               q.ID,
		CorrelationID:    q.CorrelationID,
		DepositAddress:   q.DepositAddress,
		OriginAsset:      q.OriginAsset,
		DestinationAsset: q.DestinationAsset,
		AmountIn:         q.AmountIn,
		AmountOut:        q.AmountOut,
		SwapType:         string(q.SwapType),
		TemplateUsed:     q.TemplateUsed,
		Deadline:         q.Deadline,
		CreatedAt:        q.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Errorf("failed to save quote: %v", err)
		return err
	}
	return nil
}

func (r *PostgresSwapRepo) GetQuoteByDepositAddress(ctx context.Context, depositAddress string) (*domain.IssuedQuote, error) {
	var q IssuedQuote
	err := r.db.WithContext(ctx).
		Where("deposit_address = ?", depositAddress).
		Order("created_at DESC").
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Errorf("failed to get quote by deposit address: %v", err)
		return nil, err
	}
	return r.toDomainQuote(&q), nil
}

// ---------- SWAPS ----------

func (r *PostgresSwapRepo) SaveSwap(ctx context.Context, s *domain.Swap) (*domain.Swap, error) {
	model := Swap{
		DepositAddress:   s.DepositAddress,
		CorrelationID:    s.CorrelationID,
		Status:           string(s.Status),
		OriginAsset:      s.OriginAsset,
		DestinationAsset: s.DestinationAsset,
		AmountIn:         s.AmountIn,
		DepositTxHash:    s.DepositTxHash,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Errorf("failed to save swap: %v", err)
		return nil, err
	}
	return r.GetByDepositAddress(ctx, model.DepositAddress)
}

func (r *PostgresSwapRepo) GetByDepositAddress(ctx context.Context, depositAddress string) (*domain.Swap, error) {
	var s Swap
	err := r.db.WithContext(ctx).First(&s, "deposit_address = ?", depositAddress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Errorf("failed to get swap by deposit address: %v", err)
		return nil, err
	}
	return r.toDomainSwap(&s), nil
}

func (r *PostgresSwapRepo) UpdateStatus(ctx context.Context, depositAddress string, status domain.SwapStatus, txHash *string) error {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	if txHash != nil {
		updates["deposit_tx_hash"] = *txHash
	}
	err := r.db.WithContext(ctx).
		Model(&Swap{}).
		Where("deposit_address = ?", depositAddress).
		Updates(updates).Error
	if err != nil {
		r.log.Errorf("failed to update swap status: %v", err)
	}
	return err
}

func (r *PostgresSwapRepo) ListUnfinished(ctx context.Context) ([]*domain.Swap, error) {
	var models []Swap
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{
			string(domain.SwapComplete),
			string(domain.SwapFailed),
			string(domain.SwapRefunded),
		}).
		Find(&models).Error
	if err != nil {
		r.log.Errorf("failed to list unfinished swaps: %v", err)
		return nil, err
	}

	out := make([]*domain.Swap, 0, len(models))
	for i := range models {
		out = append(out, r.toDomainSwap(&models[i]))
	}
	return out, nil
}

// ---------- HELPERS ----------

func (r *PostgresSwapRepo) toDomainQuote(q *IssuedQuote) *domain.IssuedQuote {
	return &domain.IssuedQuote{
		ID:               q.ID,
		CorrelationID:    q.CorrelationID,
		DepositAddress:   q.DepositAddress,
		OriginAsset:      q.OriginAsset,
		DestinationAsset: q.DestinationAsset,
		AmountIn:         q.AmountIn,
		AmountOut:        q.AmountOut,
		SwapType:         domain.SwapType(q.SwapType),
		TemplateUsed:     q.TemplateUsed,
		Deadline:         q.Deadline,
		CreatedAt:        q.CreatedAt,
	}
}

func (r *PostgresSwapRepo) toDomainSwap(s *Swap) *domain.Swap {
	return &domain.Swap{
		DepositAddress:   s.DepositAddress,
		CorrelationID:    s.CorrelationID,
		Status:           domain.SwapStatus(s.Status),
		OriginAsset:      s.OriginAsset,
		DestinationAsset: s.DestinationAsset,
		AmountIn:         s.AmountIn,
		DepositTxHash:    s.DepositTxHash,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
