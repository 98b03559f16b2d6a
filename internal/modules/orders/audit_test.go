package orders

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (*AuditRepo, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewAuditRepo(db), mock
}

func TestAuditRepo_Record(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `order_events`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ev, err := repo.Record(context.Background(), RecordInput{
		Order:        Order{ID: 42, OrderNumber: "ORD-1", Channel: ChannelInStore},
		Field:        FieldOrderStatus,
		From:         "PENDING",
		To:           "CANCELLED",
		ActorAccount: "UE-7",
		Note:         "  customer left  ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "IN_STORE", ev.Channel)
	require.NotNil(t, ev.Note)
	assert.Equal(t, "customer left", *ev.Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Record_DefaultsChannelAndDropsEmptyNote(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `order_events`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ev, err := repo.Record(context.Background(), RecordInput{
		Order: Order{ID: 1},
		Field: FieldPaymentStatus,
		From:  "PENDING",
		To:    "PAID",
	})

	require.NoError(t, err)
	assert.Equal(t, "ONLINE", ev.Channel)
	assert.Nil(t, ev.Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_ListByOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	at := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "order_id", "order_number", "channel", "field", "from_status", "to_status", "actor_account", "note", "created_at"}).
		AddRow("ev-2", 42, "ORD-1", "ONLINE", "order_status", "PROCESSING", "SHIPPED", "UE-7", nil, at.Add(time.Hour)).
		AddRow("ev-1", 42, "ORD-1", "ONLINE", "order_status", "PENDING", "PROCESSING", "UE-7", nil, at)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `order_events` WHERE order_id = ? AND channel = ? ORDER BY created_at DESC")).
		WithArgs(int64(42), "ONLINE").
		WillReturnRows(rows)

	out, err := repo.ListByOrder(context.Background(), 42, ChannelOnline)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "SHIPPED", out[0].ToStatus)
	assert.Equal(t, at, out[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
