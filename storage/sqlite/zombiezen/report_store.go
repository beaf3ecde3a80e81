package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revelaction/udclean/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const runColumns = "id, input, output, started, total, valid, invalid"

type ReportStore struct {
	pool *sqlitex.Pool
}

var _ storage.ReportRepository = (*ReportStore)(nil)

func NewReportStore(pool *sqlitex.Pool) *ReportStore {
	return &ReportStore{pool: pool}
}

func (h *ReportStore) Write(run storage.Run, rejections []storage.Rejection) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn,
		"INSERT OR REPLACE INTO runs ("+runColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{run.Id, run.Input, run.Output, run.Started.Unix(), run.Total, run.Valid, run.Invalid},
		})
	if err != nil {
		return fmt.Errorf("failed to write run %s: %w", run.Id, err)
	}

	err = sqlitex.Execute(conn, "DELETE FROM rejections WHERE run_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{run.Id},
	})
	if err != nil {
		return err
	}

	for _, rej := range rejections {
		errs, err := json.Marshal(rej.Errors)
		if err != nil {
			return err
		}
		lines, err := json.Marshal(rej.Lines)
		if err != nil {
			return err
		}

		err = sqlitex.Execute(conn,
			"INSERT INTO rejections (run_id, sent_id, line, errors, lines) VALUES (?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{run.Id, rej.SentId, rej.Line, string(errs), string(lines)},
			})
		if err != nil {
			return fmt.Errorf("failed to write rejection %s: %w", rej.SentId, err)
		}
	}

	return nil
}

func (h *ReportStore) Runs() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn, "SELECT "+runColumns+" FROM runs ORDER BY started, rowid", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			runs = append(runs, scanRun(stmt))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *ReportStore) Run(id string) (storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Run{}, err
	}
	defer h.pool.Put(conn)

	var run storage.Run
	found := false
	err = sqlitex.Execute(conn, "SELECT "+runColumns+" FROM runs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			run = scanRun(stmt)
			return nil
		},
	})
	if err != nil {
		return storage.Run{}, err
	}
	if !found {
		return storage.Run{}, fmt.Errorf("%w: %s", storage.ErrRunNotFound, id)
	}
	return run, nil
}

func (h *ReportStore) Rejections(runId string, match string) ([]storage.Rejection, error) {
	if _, err := h.Run(runId); err != nil {
		return nil, err
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT sent_id, line, errors, lines FROM rejections WHERE run_id = ?"
	args := []interface{}{runId}
	if match != "" {
		query += " AND instr(sent_id, ?) > 0"
		args = append(args, match)
	}
	query += " ORDER BY rowid"

	var res []storage.Rejection
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rej := storage.Rejection{
				RunId:  runId,
				SentId: stmt.ColumnText(0),
				Line:   stmt.ColumnInt(1),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &rej.Errors); err != nil {
				return err
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &rej.Lines); err != nil {
				return err
			}
			res = append(res, rej)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func scanRun(stmt *sqlite.Stmt) storage.Run {
	return storage.Run{
		Id:      stmt.ColumnText(0),
		Input:   stmt.ColumnText(1),
		Output:  stmt.ColumnText(2),
		Started: time.Unix(stmt.ColumnInt64(3), 0).UTC(),
		Total:   stmt.ColumnInt(4),
		Valid:   stmt.ColumnInt(5),
		Invalid: stmt.ColumnInt(6),
	}
}
