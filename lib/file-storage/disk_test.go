package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDiskStageCommitDiscard(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	storage := NewDiskInstance(base)

	t.Run("stage then commit", func(t *testing.T) {
		staged, err := storage.Stage(ctx, ApplicationsDir, "resume.PDF", "application/pdf", []byte("resume body"))
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(staged.RelPath, ".pdf"), "extension must be kept lowercased: %s", staged.RelPath)

		// the final path must not be readable before commit
		exists, err := storage.Exists(ctx, staged.RelPath)
		require.NoError(t, err)
		require.False(t, exists)
		_, err = os.Stat(filepath.FromSlash(staged.RelPath + ".part"))
		require.NoError(t, err)

		require.NoError(t, storage.Commit(ctx, staged))
		exists, err = storage.Exists(ctx, staged.RelPath)
		require.NoError(t, err)
		require.True(t, exists)

		content, err := os.ReadFile(filepath.FromSlash(staged.RelPath))
		require.NoError(t, err)
		require.Equal(t, []byte("resume body"), content)
	})

	t.Run("stage then discard", func(t *testing.T) {
		staged, err := storage.Stage(ctx, ApplicationsDir, "photo.png", "image/png", []byte{1, 2, 3})
		require.NoError(t, err)
		require.NoError(t, storage.Discard(ctx, staged))

		exists, err := storage.Exists(ctx, staged.RelPath)
		require.NoError(t, err)
		require.False(t, exists)
		_, err = os.Stat(filepath.FromSlash(staged.RelPath + ".part"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("discard is idempotent", func(t *testing.T) {
		staged, err := storage.Stage(ctx, ApplicationsDir, "pan.jpg", "image/jpeg", []byte{4})
		require.NoError(t, err)
		require.NoError(t, storage.Discard(ctx, staged))
		require.NoError(t, storage.Discard(ctx, staged))
	})
}

func TestDiskSaveRemove(t *testing.T) {
	ctx := context.Background()
	storage := NewDiskInstance(t.TempDir())

	relPath, err := storage.Save(ctx, CSRDir, "banner.png", "image/png", []byte("png bytes"))
	require.NoError(t, err)
	require.Contains(t, relPath, CSRDir+"/")

	exists, err := storage.Exists(ctx, relPath)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, storage.Remove(ctx, relPath))
	exists, err = storage.Exists(ctx, relPath)
	require.NoError(t, err)
	require.False(t, exists)

	// removing a path that is already gone is not an error
	require.NoError(t, storage.Remove(ctx, relPath))
}

func TestDiskUniqueStoredNames(t *testing.T) {
	ctx := context.Background()
	storage := NewDiskInstance(t.TempDir())

	first, err := storage.Save(ctx, CSRDir, "same.png", "image/png", []byte("a"))
	require.NoError(t, err)
	second, err := storage.Save(ctx, CSRDir, "same.png", "image/png", []byte("b"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestContentTypeAllowLists(t *testing.T) {
	t.Run("csr images", func(t *testing.T) {
		require.NoError(t, CheckCSRImageType("image/jpeg"))
		require.NoError(t, CheckCSRImageType("image/png"))
		require.NoError(t, CheckCSRImageType("IMAGE/PNG; charset=binary"))

		err := CheckCSRImageType("application/pdf")
		require.True(t, errors.Is(err, ErrUnsupportedMedia))
		require.True(t, errors.Is(CheckCSRImageType("image/gif"), ErrUnsupportedMedia))
		require.True(t, errors.Is(CheckCSRImageType(""), ErrUnsupportedMedia))
	})

	t.Run("application attachments", func(t *testing.T) {
		require.NoError(t, CheckAttachmentType("application/pdf"))
		require.NoError(t, CheckAttachmentType("image/jpeg"))
		require.NoError(t, CheckAttachmentType("image/png"))

		require.True(t, errors.Is(CheckAttachmentType("application/msword"), ErrUnsupportedMedia))
		require.True(t, errors.Is(CheckAttachmentType("text/html"), ErrUnsupportedMedia))
	})
}
