package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/logger"
)

const timestampLayout = "20060102-150405"

// backupName matches lifeadvance-YYYYMMDD-HHMMSS[-N].ext
var backupName = regexp.MustCompile(`^` + regexp.QuoteMeta(constants.BackupFilePrefix) + `(\d{8}-\d{6})(?:-(\d+))?\.(db|json)$`)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
	seq       int
}

// Name is the file name of the backup.
func (b BackupInfo) Name() string {
	return filepath.Base(b.Path)
}

// Manager snapshots the data file into a sibling backups directory. SQLite
// databases are copied with VACUUM INTO; JSON documents are copied as is.
type Manager struct {
	dataPath  string
	backupDir string
	sqlite    bool
	now       func() time.Time
}

// NewManager creates a manager for the data file at dataPath.
func NewManager(dataPath string) *Manager {
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(filepath.Dir(dataPath), constants.BackupDirName),
		sqlite:    !strings.EqualFold(filepath.Ext(dataPath), ".json"),
		now:       time.Now,
	}
}

// WithClock overrides the clock used to name backups.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// WithSQLite overrides the format guessed from the data file's extension.
func (m *Manager) WithSQLite(sqlite bool) *Manager {
	m.sqlite = sqlite
	return m
}

func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) suffix() string {
	if m.sqlite {
		return constants.BackupFileSuffix
	}
	return ".json"
}

// CreateBackup snapshots the data file and prunes the oldest backups beyond
// constants.MaxBackups.
func (m *Manager) CreateBackup() (BackupInfo, error) {
	info, err := m.createBackup()
	if err != nil {
		return BackupInfo{}, err
	}
	if err := m.rotateBackups(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return info, nil
}

func (m *Manager) createBackup() (BackupInfo, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dataPath); os.IsNotExist(err) {
		return BackupInfo{}, fmt.Errorf("data file does not exist: %s", m.dataPath)
	}

	path, err := m.nextPath(m.now())
	if err != nil {
		return BackupInfo{}, err
	}

	if m.sqlite {
		err = vacuumInto(m.dataPath, path)
	} else {
		err = copyFile(m.dataPath, path)
	}
	if err != nil {
		return BackupInfo{}, fmt.Errorf("failed to backup data file: %w", err)
	}
	logger.Info("Backup created", "path", path)

	return m.describe(path)
}

// nextPath picks a free file name for a backup taken at ts, appending a
// counter when several backups share the same second.
func (m *Manager) nextPath(ts time.Time) (string, error) {
	stamp := ts.Format(timestampLayout)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix())
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, m.suffix()))
	}
}

func (m *Manager) describe(path string) (BackupInfo, error) {
	match := backupName.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return BackupInfo{}, fmt.Errorf("not a backup file: %s", path)
	}
	ts, err := time.ParseInLocation(timestampLayout, match[1], time.Local)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("invalid backup timestamp in %s: %w", path, err)
	}
	seq := 0
	if match[2] != "" {
		if seq, err = strconv.Atoi(match[2]); err != nil {
			return BackupInfo{}, fmt.Errorf("invalid backup counter in %s: %w", path, err)
		}
	}
	stat, err := os.Stat(path)
	if err != nil {
		return BackupInfo{}, err
	}
	return BackupInfo{Path: path, Timestamp: ts, Size: stat.Size(), seq: seq}, nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := m.describe(filepath.Join(m.backupDir, entry.Name()))
		if err != nil {
			continue
		}
		backups = append(backups, info)
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Timestamp.After(backups[j].Timestamp)
		}
		return backups[i].seq > backups[j].seq
	})
	return backups, nil
}

// Find resolves a backup by file name or by path.
func (m *Manager) Find(name string) (BackupInfo, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		return m.describe(name)
	}
	backups, err := m.ListBackups()
	if err != nil {
		return BackupInfo{}, err
	}
	for _, b := range backups {
		if b.Name() == name {
			return b, nil
		}
	}
	return BackupInfo{}, fmt.Errorf("backup not found: %s", name)
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("Removed old backup", "path", backups[i].Path)
	}
	return nil
}

// RestoreBackup replaces the data file with the backup at backupPath. The
// current data file, if any, is snapshotted first and that snapshot's path
// is returned (empty when there was nothing to save).
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if m.sqlite {
		if err := verifySQLite(backupPath); err != nil {
			return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
		}
	}

	var saved string
	if _, err := os.Stat(m.dataPath); err == nil {
		// Not rotated, so the pre-restore snapshot cannot evict the backup being restored
		info, err := m.createBackup()
		if err != nil {
			return "", fmt.Errorf("failed to backup current data before restore: %w", err)
		}
		saved = info.Path
	}

	tempPath := m.dataPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return saved, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dataPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return saved, fmt.Errorf("failed to restore data file: %w", err)
	}
	// Stale WAL files from the replaced database must not be replayed over it
	if m.sqlite {
		for _, ext := range []string{"-wal", "-shm"} {
			if err := os.Remove(m.dataPath + ext); err != nil && !os.IsNotExist(err) {
				logger.Warn("Failed to remove stale journal file", "path", m.dataPath+ext, "error", err)
			}
		}
	}
	logger.Info("Backup restored", "from", backupPath)
	return saved, nil
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

// verifySQLite checks that path is a database holding the kv table.
func verifySQLite(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var name string
	return db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'").Scan(&name)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
