// Command download fetches the playthroughs uploaded to the database, writes
// each one to disk and prints its regression id, so that recordings made by
// an older release can be checked against the current simulation.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/marisvali/mason/play"
)

func main() {
	DownloadRecordings()
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { play.Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM mason_playthroughs")
	play.Check(err)
	defer func(rows *sql.Rows) { play.Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		play.Check(err)
		dbRows = append(dbRows, row)
	}
	play.Check(rows.Err())

	for i := range dbRows {
		dir := dbRows[i].user
		_ = os.Mkdir(dir, 0755)
		m := dbRows[i].startMoment
		// The extension holds both versions: .mason-1-1
		filename := fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.mason-%d-%d", dir,
			m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
			dbRows[i].simulationVersion, dbRows[i].inputVersion)
		play.Check(os.WriteFile(filename, dbRows[i].data, 0644))
		fmt.Printf("%s %s %s\n", filename, dbRows[i].id, regressionId(dbRows[i]))
	}
}

// regressionId replays the playthrough if this build can, and explains why it
// can't otherwise.
func regressionId(row dbRow) string {
	if row.simulationVersion != play.SimulationVersion ||
		row.inputVersion != play.InputVersion {
		return "skipped (different version)"
	}
	p, err := play.DeserializePlaythrough(row.data)
	if err != nil {
		return fmt.Sprintf("invalid: %v", err)
	}
	if p.Id != row.id {
		return fmt.Sprintf("invalid: id mismatch %s", p.Id)
	}
	id, err := play.RegressionId(&p)
	if err != nil {
		return fmt.Sprintf("invalid: %v", err)
	}
	return id
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("MASON_DBUSER"),
		Passwd:               os.Getenv("MASON_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("MASON_DBADDR"),
		DBName:               os.Getenv("MASON_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	play.Check(err)
	err = db.Ping()
	play.Check(err)
	return db
}
