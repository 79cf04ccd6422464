package testmandb

import (
	"database/sql"
	"errors"

	"github.com/pingcap/log"
)

// TxnRollback is meant to be used with defer so a failed rollback is
// still logged after the surrounding function returns.
func TxnRollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Error(err.Error())
	}
}
