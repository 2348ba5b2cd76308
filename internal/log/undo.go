package log

import (
	"errors"
	"fmt"
	"os"
)

// UndoResult summarizes a reversal of one journal session.
type UndoResult struct {
	SessionID string
	Reversed  int
	Skipped   int
	Errors    []error
}

// UndoLastSession reverses the successful renames of the most recent journal
// session, in reverse order. Files whose destination no longer exists are
// skipped. The reversal itself is journaled as a new session.
func UndoLastSession() (*UndoResult, error) {
	sessions, err := ReadSessions(1)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, errors.New("no sessions to undo")
	}
	return UndoSession(sessions[0])
}

// UndoSession reverses the successful rename operations of a session.
func UndoSession(session *LogSession) (*UndoResult, error) {
	result := &UndoResult{SessionID: session.Metadata.SessionID}

	if err := StartSession("undo", []string{session.Metadata.SessionID}); err != nil {
		return nil, err
	}
	defer EndSession()

	ops := session.Operations
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		if op.Type != OpRename || !op.Success || op.DestPath == "" {
			continue
		}

		// The renamed file may have been moved or deleted since.
		if _, err := os.Stat(op.DestPath); err != nil {
			result.Skipped++
			continue
		}
		if _, err := os.Stat(op.SourcePath); err == nil {
			err := fmt.Errorf("original path occupied: %s", op.SourcePath)
			LogUndo(op.DestPath, op.SourcePath, false, err)
			result.Errors = append(result.Errors, err)
			continue
		}

		if err := os.Rename(op.DestPath, op.SourcePath); err != nil {
			err := fmt.Errorf("failed to restore %s: %w", op.SourcePath, err)
			LogUndo(op.DestPath, op.SourcePath, false, err)
			result.Errors = append(result.Errors, err)
			continue
		}

		LogUndo(op.DestPath, op.SourcePath, true, nil)
		result.Reversed++
	}

	return result, nil
}
