package localstorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveFile(t *testing.T) {
	tempDir := t.TempDir()
	dstDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "xaa")
	content := []byte("line 1\nline 2\n")
	require.NoError(t, os.WriteFile(srcPath, content, 0o600))

	storage := NewLocalStorage(dstDir)

	err := storage.SaveFile(context.Background(), srcPath, "xaa")
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	dstContent, err := os.ReadFile(filepath.Join(dstDir, "xaa"))
	if err != nil {
		t.Fatalf("Failed to read destination file: %v", err)
	}

	if string(dstContent) != string(content) {
		t.Errorf("File content mismatch. Expected %s, got %s", string(content), string(dstContent))
	}
}

func TestSaveFileTruncatesExisting(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	srcPath := filepath.Join(srcDir, "xab")
	require.NoError(t, os.WriteFile(srcPath, []byte("new"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "xab"), []byte("older and longer"), 0o600))

	err := NewLocalStorage(dstDir).SaveFile(context.Background(), srcPath, "xab")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dstDir, "xab"))
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestSaveFileWithMissingSource(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())

	err := storage.SaveFile(context.Background(), "file-that-does-not-exist", "dstFile")
	require.Error(t, err)
}

func TestSaveFileWithWrongDestinationFolder(t *testing.T) {
	storage := NewLocalStorage(filepath.Join(t.TempDir(), "does-not-exist"))

	srcPath := filepath.Join(t.TempDir(), "source")
	require.NoError(t, os.WriteFile(srcPath, []byte("data"), 0o600))

	err := storage.SaveFile(context.Background(), srcPath, "dstFile")
	require.Error(t, err)
}

// TestSaveFile_ContextCancellation verifies that SaveFile respects context cancellation.
func TestSaveFile_ContextCancellation(t *testing.T) {
	tempDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "source_large")
	content := make([]byte, 1024*100) // 100KB
	for i := range content {
		content[i] = byte(i % 256)
	}
	require.NoError(t, os.WriteFile(srcPath, content, 0o600))

	dstDir := t.TempDir()
	storage := NewLocalStorage(dstDir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	dstFilename := "dstFile"
	err := storage.SaveFile(ctx, srcPath, dstFilename)

	require.Error(t, err, "Expected error due to context cancellation")
	require.ErrorIs(t, err, context.Canceled, "Error should be context.Canceled")

	_, statErr := os.Stat(filepath.Join(dstDir, dstFilename))
	require.True(t, os.IsNotExist(statErr), "Destination file should not exist after cancellation")
}

func TestSaveFileOntoItself(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "xaa")
	content := []byte("line 1\nline 2\n")
	require.NoError(t, os.WriteFile(srcPath, content, 0o600))

	storage := NewLocalStorage(dir)
	err := storage.SaveFile(context.Background(), srcPath, "xaa")
	require.ErrorIs(t, err, ErrSameFile)

	data, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	require.Equal(t, content, data, "source must not be truncated")
}
