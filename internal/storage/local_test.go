package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfg "github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/config"
)

func TestLocal_PutWithKey(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/invoices/")

	res, err := l.Put(context.Background(), strings.NewReader("hello"), PutInput{
		Key:         "invoice-ORD-1.txt",
		ContentType: "text/plain",
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice-ORD-1.txt", res.Key)
	assert.Equal(t, "/invoices/invoice-ORD-1.txt", res.URL)

	f, err := l.Open(res.Key)
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	// overwrite keeps a single file
	_, err = l.Put(context.Background(), strings.NewReader("again"), PutInput{Key: "invoice-ORD-1.txt"})
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_KeyCannotEscape(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/x")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Key: "../../etc/passwd"})
	require.NoError(t, err)
	assert.Equal(t, "passwd", res.Key)
	_, err = os.Stat(filepath.Join(dir, "passwd"))
	assert.NoError(t, err)
}

func TestLocal_RandomKeyKeepsKnownExtension(t *testing.T) {
	l := NewLocal(t.TempDir(), "/x")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "Invoice.TXT"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".txt"))

	res, err = l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "run.sh"})
	require.NoError(t, err)
	assert.NotContains(t, res.Key, ".")
}

func TestNew(t *testing.T) {
	res, err := New(context.Background(), appcfg.StorageConfig{Driver: "local", LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "local", res.Driver)

	_, err = New(context.Background(), appcfg.StorageConfig{Driver: "s3"})
	assert.Error(t, err)

	_, err = New(context.Background(), appcfg.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}
