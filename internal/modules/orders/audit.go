package orders

import (
	"context"
	"strings"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	FieldOrderStatus   = "order_status"
	FieldPaymentStatus = "payment_status"
)

// OrderEvent records a status change this client dispatched to the backend.
type OrderEvent struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID      int64     `gorm:"not null;index:ix_order_events_order_id" json:"orderId"`
	OrderNumber  string    `gorm:"type:varchar(64);not null" json:"orderNumber"`
	Channel      string    `gorm:"type:varchar(16);not null" json:"channel"`
	Field        string    `gorm:"type:varchar(32);not null" json:"field"`
	FromStatus   string    `gorm:"type:varchar(32);not null" json:"fromStatus"`
	ToStatus     string    `gorm:"type:varchar(32);not null" json:"toStatus"`
	ActorAccount string    `gorm:"type:varchar(32);not null" json:"actorAccount"`
	Note         *string   `gorm:"type:varchar(255)" json:"note,omitempty"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
}

func (OrderEvent) TableName() string { return "order_events" }

type RecordInput struct {
	Order        Order
	Field        string
	From         string
	To           string
	ActorAccount string
	Note         string
}

type AuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepo { return &AuditRepo{db: db} }

// OpenAuditDB connects to MySQL; parseTime is forced on so datetime columns
// scan into time.Time.
func OpenAuditDB(dsn string) (*gorm.DB, error) {
	cfg, err := drv.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ParseTime = true
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}
	return gorm.Open(mysql.Open(cfg.FormatDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func (r *AuditRepo) Record(ctx context.Context, in RecordInput) (OrderEvent, error) {
	ch := in.Order.Channel
	if ch == "" {
		ch = ChannelOnline
	}
	var notePtr *string
	if n := strings.TrimSpace(in.Note); n != "" {
		notePtr = &n
	}
	ev := OrderEvent{
		ID:           uuid.NewString(),
		OrderID:      in.Order.ID,
		OrderNumber:  in.Order.OrderNumber,
		Channel:      string(ch),
		Field:        in.Field,
		FromStatus:   in.From,
		ToStatus:     in.To,
		ActorAccount: in.ActorAccount,
		Note:         notePtr,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return OrderEvent{}, err
	}
	return ev, nil
}

func (r *AuditRepo) ListByOrder(ctx context.Context, orderID int64, ch Channel) ([]OrderEvent, error) {
	var out []OrderEvent
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND channel = ?", orderID, string(ch)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *AuditRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&OrderEvent{})
}
