package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/propdesk-backend/internal/data/aggregates"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
)

// InjectedTxRunner counts units of work and injects failures without a real
// database. Bodies run with dbctx.Context{Tx: nil}.
type InjectedTxRunner struct {
	mu sync.Mutex

	FailBegin  error
	FailCommit error
	// FailCommitOnCall limits FailCommit to the Nth InTx call (1-based).
	// Zero applies it to every call.
	FailCommitOnCall int

	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	call := r.BeginCalls
	failBegin := r.FailBegin
	failCommit := r.FailCommit
	if r.FailCommitOnCall != 0 && r.FailCommitOnCall != call {
		failCommit = nil
	}
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}
	if fn != nil {
		if err := fn(dbctx.Context{Ctx: ctx}); err != nil {
			r.rollback()
			return err
		}
	}
	if failCommit != nil {
		r.rollback()
		return failCommit
	}
	r.mu.Lock()
	r.CommitCalls++
	r.mu.Unlock()
	return nil
}

func (r *InjectedTxRunner) rollback() {
	r.mu.Lock()
	r.RollbackCalls++
	r.mu.Unlock()
}
