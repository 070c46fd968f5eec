package checks

import (
	"testing"

	"book-manager/feature/catalog/catalogtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_MigratedSQLite(t *testing.T) {
	store := catalogtest.NewStore(t)

	report, err := CheckSchema(store.DB())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", report.Driver)
	assert.True(t, report.Matched, "%+v", report.Tables)
	assert.Len(t, report.Tables, 4)
	for table, tbl := range report.Tables {
		assert.Equal(t, "ok", tbl.Status, table)
	}
}

func TestCheckSchema_MissingTable(t *testing.T) {
	store := catalogtest.NewStore(t)
	require.NoError(t, store.DB().Migrator().DropTable("book_authors"))

	report, err := CheckSchema(store.DB())
	require.NoError(t, err)

	assert.False(t, report.Matched)
	tbl := report.Tables["book_authors"]
	assert.Equal(t, "missing", tbl.Status)
	assert.ElementsMatch(t, []string{"book_id", "author_id"}, tbl.MissingColumns)
}

func TestCheckSchema_MySQLMismatch(t *testing.T) {
	db, mock := catalogtest.NewMockDB(t)

	expectTable := func(table string, rows *sqlmock.Rows) {
		mock.ExpectQuery("SHOW COLUMNS FROM `" + table + "`").WillReturnRows(rows)
	}
	cols := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	}

	expectTable("publishers", cols().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("publisher_name", "varchar(255)", "NO", "", nil, ""))
	expectTable("authors", cols().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("first_name", "text", "NO", "", nil, "").
		AddRow("last_name", "varchar(100)", "NO", "", nil, ""))
	expectTable("books", cols().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("title", "varchar(255)", "NO", "", nil, ""))
	expectTable("book_authors", cols().
		AddRow("book_id", "bigint unsigned", "NO", "PRI", nil, "").
		AddRow("author_id", "bigint unsigned", "NO", "PRI", nil, ""))

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["publishers"].Status)
	assert.Equal(t, []string{"first_name: expected varchar(100), got text"}, report.Tables["authors"].TypeMismatches)
	assert.ElementsMatch(t, []string{"publishing_date", "category", "publisher_id"}, report.Tables["books"].MissingColumns)
	assert.Equal(t, "ok", report.Tables["book_authors"].Status)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "first_name", parseGormColumn("primaryKey;column:first_name;type:varchar(100)"))
	assert.Equal(t, "varchar(100)", parseGormType("column:first_name;type:varchar(100);not null"))
	assert.Equal(t, "", parseGormType("column:id"))
	assert.Equal(t, "", parseGormColumn("foreignKey:AuthorID"))
}
