package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "checkin_id", "room_charge", "service_charge", "total_amount"}).
		AddRow(1, 4, 100.0, 50.0, 150.0)
}

func TestInvoiceCreateDefaultsTotalToChargesSum(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewInvoiceService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `invoices`").
		WithArgs(uint(4), 100.0, 50.0, 150.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `invoices`").
		WillReturnRows(invoiceRow())
	mock.ExpectQuery("SELECT (.+) FROM `checkins`").
		WillReturnRows(emptyRows("id"))

	inv, err := svc.Create(CreateInvoiceInput{
		CheckinID:     4,
		RoomCharge:    100,
		ServiceCharge: 50,
	})
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, 150.0, inv.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceCreateExplicitTotalWins(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewInvoiceService(db)

	total := 120.0
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `invoices`").
		WithArgs(uint(4), 100.0, 50.0, 120.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `invoices`").
		WillReturnRows(invoiceRow())
	mock.ExpectQuery("SELECT (.+) FROM `checkins`").
		WillReturnRows(emptyRows("id"))

	_, err := svc.Create(CreateInvoiceInput{
		CheckinID:     4,
		RoomCharge:    100,
		ServiceCharge: 50,
		TotalAmount:   &total,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
