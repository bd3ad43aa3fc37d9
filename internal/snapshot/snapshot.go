// Package snapshot implements the named-snapshot mechanism: saving,
// loading, backing up and restoring the ledger data file by plain file
// copy. Snapshots never interpret ledger contents, so the same manager
// works for any file-backed store.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// backupName is the reserved snapshot used by Backup and Restore.
const backupName = "backup"

const snapshotExt = ".snapshot"

var (
	ErrInvalidName  = errors.New("invalid snapshot name")
	ErrReservedName = errors.New("snapshot name is reserved")
	ErrNotFound     = errors.New("snapshot not found")
)

// Manager copies the ledger data file to and from a snapshot directory.
type Manager struct {
	dataPath string
	dir      string
}

func NewManager(dataPath, dir string) *Manager {
	return &Manager{dataPath: dataPath, dir: dir}
}

// Save copies the live ledger file into the snapshot directory under name.
func (m *Manager) Save(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return m.write(name)
}

// Load replaces the live ledger file with the named snapshot. The current
// file is backed up first so a mistaken load is recoverable.
func (m *Manager) Load(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return m.read(name)
}

// Backup copies the live ledger file to the reserved backup snapshot.
func (m *Manager) Backup() error {
	return m.write(backupName)
}

// Restore replaces the live ledger file with the reserved backup snapshot.
func (m *Manager) Restore() error {
	return m.read(backupName)
}

func (m *Manager) write(name string) error {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	if err := copyFile(m.dataPath, m.snapshotPath(name)); err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return nil
}

func (m *Manager) read(name string) error {
	src := m.snapshotPath(name)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("stat snapshot %q: %w", name, err)
	}

	// Keep the current ledger recoverable, unless we are restoring the
	// backup itself.
	if name != backupName {
		if _, err := os.Stat(m.dataPath); err == nil {
			if err := m.write(backupName); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(m.dataPath), 0755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}
	if err := copyFile(src, m.dataPath); err != nil {
		return fmt.Errorf("load snapshot %q: %w", name, err)
	}
	return nil
}

func (m *Manager) snapshotPath(name string) string {
	return filepath.Join(m.dir, name+snapshotExt)
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return ErrInvalidName
	}
	if name == "." || name == ".." {
		return ErrInvalidName
	}
	if name == backupName {
		return fmt.Errorf("%w: %s", ErrReservedName, name)
	}
	return nil
}

// copyFile copies src over dst atomically: the data lands in a .tmp file
// that replaces dst with a rename.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}
