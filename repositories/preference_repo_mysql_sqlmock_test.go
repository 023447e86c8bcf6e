package repositories

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// helper: new GORM DB using a sqlmock connection with MySQL dialect.
func newMySQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	// Important: pass existing *sql.DB to gorm's mysql driver
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // we don't need to ping real server
	})

	gdb, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, sqlDB
}

func TestPreferenceRepository_Get(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewPreferenceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "key", "value"}).
		AddRow(1, 42, "rambutanmode", "1")

	// map conditions come out sorted by column name, mysql-quoted here
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `preferences` WHERE `key` = ? AND `user_id` = ? ORDER BY `preferences`.`id` LIMIT ?",
	)).WithArgs("rambutanmode", 42, sqlmock.AnyArg()).
		WillReturnRows(rows)

	val, err := repo.Get(42, "rambutanmode")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get_NotFound(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewPreferenceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `preferences` WHERE `key` = ? AND `user_id` = ? ORDER BY `preferences`.`id` LIMIT ?",
	)).WithArgs("rambutanmode", 42, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "key", "value"})) // empty

	_, err := repo.Get(42, "rambutanmode")
	assert.True(t, IsNotFound(err)) // callers treat this as "default", not failure
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Set_Upsert(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewPreferenceRepository(db)

	// GORM ON CONFLICT clause renders as ON DUPLICATE KEY UPDATE on mysql.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO `preferences` (`user_id`,`key`,`value`) VALUES (?,?,?) ON DUPLICATE KEY UPDATE `value`=VALUES(`value`)",
	)).WithArgs(42, "rambutanmode", "1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Set(42, "rambutanmode", "1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Delete_AbsentIsFine(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewPreferenceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM `preferences` WHERE `key` = ? AND `user_id` = ?",
	)).WithArgs("rambutanmode-enabled-at", 42).
		WillReturnResult(sqlmock.NewResult(0, 0)) // nothing there; still no error
	mock.ExpectCommit()

	err := repo.Delete(42, "rambutanmode-enabled-at")
	assert.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
