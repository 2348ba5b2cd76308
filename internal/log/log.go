// Package log journals rename operations as JSON sessions so a batch can be
// inspected and undone later.
package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type OperationType string

const (
	OpRename OperationType = "rename"
	OpUndo   OperationType = "undo"
)

type OperationLog struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Type       OperationType `json:"type"`
	SourcePath string        `json:"source_path"`
	DestPath   string        `json:"dest_path,omitempty"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
}

type SessionMetadata struct {
	CommandArgs   []string  `json:"command_args"`
	WorkingDir    string    `json:"working_dir"`
	Timestamp     time.Time `json:"timestamp"`
	SessionID     string    `json:"session_id"`
	TotalOps      int       `json:"total_operations"`
	SuccessfulOps int       `json:"successful_operations"`
	FailedOps     int       `json:"failed_operations"`
}

type LogSession struct {
	Metadata   SessionMetadata `json:"metadata"`
	Operations []OperationLog  `json:"operations"`
}

var (
	currentSession *LogSession
	sessionMutex   sync.Mutex
	loggingEnabled = true
)

// Initialize sets up the journal and prunes sessions older than the
// retention window.
func Initialize(enabled bool, retentionDays int) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	loggingEnabled = enabled
	if enabled {
		if err := cleanupOldLogs(retentionDays); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to clean up old logs: %v\n", err)
		}
	}
}

// StartSession begins a new journal session for a command invocation.
func StartSession(command string, args []string) error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	now := time.Now()
	currentSession = &LogSession{
		Metadata: SessionMetadata{
			CommandArgs: append([]string{command}, args...),
			WorkingDir:  wd,
			Timestamp:   now,
			SessionID:   fmt.Sprintf("%s_%03d", now.Format("20060102_150405"), now.Nanosecond()/1000000),
		},
		Operations: []OperationLog{},
	}
	return nil
}

// EndSession writes the current session to disk.
func EndSession() error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return nil
	}

	updateStats()
	err := writeSession(currentSession)
	currentSession = nil
	return err
}

// LogRename records a rename attempt in the current session.
func LogRename(sourcePath, destPath string, success bool, opErr error) {
	logOperation(OpRename, sourcePath, destPath, success, opErr)
}

// LogUndo records a reversal of a previous rename.
func LogUndo(sourcePath, destPath string, success bool, opErr error) {
	logOperation(OpUndo, sourcePath, destPath, success, opErr)
}

func logOperation(opType OperationType, sourcePath, destPath string, success bool, opErr error) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return
	}

	op := OperationLog{
		ID:         fmt.Sprintf("%s_%d", currentSession.Metadata.SessionID, len(currentSession.Operations)),
		Timestamp:  time.Now(),
		Type:       opType,
		SourcePath: sourcePath,
		DestPath:   destPath,
		Success:    success,
	}
	if opErr != nil {
		op.Error = opErr.Error()
	}
	currentSession.Operations = append(currentSession.Operations, op)
}

func updateStats() {
	successful := 0
	for _, op := range currentSession.Operations {
		if op.Success {
			successful++
		}
	}
	currentSession.Metadata.TotalOps = len(currentSession.Operations)
	currentSession.Metadata.SuccessfulOps = successful
	currentSession.Metadata.FailedOps = len(currentSession.Operations) - successful
}

func logDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".reel", "logs"), nil
}

func writeSession(session *LogSession) error {
	dir, err := logDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	now := session.Metadata.Timestamp
	path := filepath.Join(dir, fmt.Sprintf("%s.%03d.json", now.Format("2006-01-02_150405"), now.Nanosecond()/1000000))

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return nil
}

// ReadSession loads one session file.
func ReadSession(path string) (*LogSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	var session LogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// ReadSessions returns up to limit sessions, newest first. Corrupted files
// are skipped.
func ReadSessions(limit int) ([]*LogSession, error) {
	dir, err := logDir()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []*LogSession{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	sessions := make([]*LogSession, 0, len(files))
	for _, file := range files {
		session, err := ReadSession(file)
		if err != nil {
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func cleanupOldLogs(retentionDays int) error {
	dir, err := logDir()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to remove old log file %s: %v\n", file, err)
			}
		}
	}
	return nil
}
