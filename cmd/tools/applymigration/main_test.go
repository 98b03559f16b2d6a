package main

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	drv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestExec_ToleratesExistingIndex(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectExec("CREATE INDEX ix_order_events_order_channel").
		WillReturnError(&drv.MySQLError{Number: errDupKeyName, Message: "Duplicate key name"})
	mock.ExpectExec("CREATE INDEX ix_order_events_actor").
		WillReturnError(&drv.MySQLError{Number: 1146, Message: "Table doesn't exist"})

	assert.NoError(t, exec(db, indexes[0]))
	assert.Error(t, exec(db, indexes[1]))
	assert.NoError(t, mock.ExpectationsWereMet())
}
