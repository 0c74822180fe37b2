package listfile

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pyvalid/pkg/errors"
)

func TestRead(t *testing.T) {
	t.Run("Should return names in file order", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "files/pip_packages.txt", []byte("requests\nflask\nnumpy"), 0o644))

		names, err := Read(fs, "files/pip_packages.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"requests", "flask", "numpy"}, names)
	})

	t.Run("Should trim lines and skip blanks", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "list.txt", []byte("  requests \r\n\r\n\tflask\n   \nnumpy\n"), 0o644))

		names, err := Read(fs, "list.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"requests", "flask", "numpy"}, names)
	})

	t.Run("Should keep duplicates", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "list.txt", []byte("a\nb\na"), 0o644))

		names, err := Read(fs, "list.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a"}, names)
	})

	t.Run("Should strip a UTF-8 byte order mark", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "list.txt", []byte("\xEF\xBB\xBFrequests\nflask"), 0o644))

		names, err := Read(fs, "list.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"requests", "flask"}, names)
	})

	t.Run("Should return no names for an empty file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "list.txt", nil, 0o644))

		names, err := Read(fs, "list.txt")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("Should report a missing file with a file-not-found code", func(t *testing.T) {
		_, err := Read(afero.NewMemMapFs(), "missing.txt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	})
}

func TestWrite(t *testing.T) {
	t.Run("Should join names without a trailing newline", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, Write(fs, "valid_pip_packages.txt", []string{"requests", "flask"}))

		data, err := afero.ReadFile(fs, "valid_pip_packages.txt")
		require.NoError(t, err)
		assert.Equal(t, "requests\nflask", string(data))
	})

	t.Run("Should write an empty file for an empty list", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, Write(fs, "out.txt", nil))

		data, err := afero.ReadFile(fs, "out.txt")
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("Should overwrite an existing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "out.txt", []byte("old\nlonger\ncontent\n"), 0o644))
		require.NoError(t, Write(fs, "out.txt", []string{"new"}))

		data, err := afero.ReadFile(fs, "out.txt")
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("Should create parent directories", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, Write(fs, "build/out/valid.txt", []string{"a"}))

		exists, err := afero.Exists(fs, "build/out/valid.txt")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Should round-trip through Read", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		want := []string{"requests", "flask", "requests"}
		require.NoError(t, Write(fs, "list.txt", want))

		got, err := Read(fs, "list.txt")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
