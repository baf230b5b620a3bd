package filesystem

import (
	"io"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/archief")
	mfs.AddFile("dossier.xml", "<MDTO/>")
	mfs.AddFile("bestanden/brief.pdf.bestand.xml", "<MDTO/>")

	dir, err := mfs.Open("/archief")
	require.NoError(t, err)
	assert.Equal(t, "/archief", dir.Path())

	var rel []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			rel = append(rel, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bestanden/brief.pdf.bestand.xml", "dossier.xml"}, rel)
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/archief")
	mfs.AddFile("dossier.xml", "<MDTO/>")

	for _, p := range []string{"/archief/dossier.xml", "dossier.xml", "./dossier.xml"} {
		content, err := mfs.ReadFile(p)
		require.NoError(t, err, p)
		assert.Equal(t, "<MDTO/>", string(content))
	}

	_, err := mfs.ReadFile("/archief")
	assert.Error(t, err)

	_, err = mfs.ReadFile("ontbreekt.xml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_OpenFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/archief")
	mfs.AddBytes("scan.tif", []byte{0x49, 0x49, 0x2a, 0x00}, time.Now())

	rc, err := mfs.OpenFile("scan.tif")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x49, 0x49, 0x2a, 0x00}, data)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/archief")
	modTime := time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC)
	mfs.AddBytes("bestanden/brief.pdf", []byte("%PDF-1.7"), modTime)

	info, err := mfs.Stat("bestanden/brief.pdf")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "brief.pdf", info.Name())
	assert.Equal(t, int64(8), info.Size())
	assert.Equal(t, modTime, info.ModTime())

	info, err = mfs.Stat("bestanden")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Open("bestanden/brief.pdf")
	assert.Error(t, err)
}

func TestFindDocuments(t *testing.T) {
	mfs := NewMemoryFileSystem("/archief")
	mfs.AddFile("b.xml", "<MDTO/>")
	mfs.AddFile("a.XML", "<MDTO/>")
	mfs.AddFile("sub/c.xml", "<MDTO/>")
	mfs.AddFile("sub/brief.pdf", "%PDF")

	paths, err := FindDocuments(mfs, "/archief")
	require.NoError(t, err)
	assert.Equal(t, []string{"/archief/a.XML", "/archief/b.xml", "/archief/sub/c.xml"}, paths)

	paths, err = FindDocuments(mfs, "sub/brief.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/brief.pdf"}, paths)

	_, err = FindDocuments(mfs, "nergens")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
