package gen_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matprop-generator/internal/description"
	"matprop-generator/internal/gen"
)

func TestExamples_Generate(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	paths, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*.*"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			doc, err := description.LoadFile(path)
			require.NoError(t, err)

			for _, name := range gen.InterfaceNames() {
				cfg, err := gen.LookupInterface(name)
				require.NoError(t, err)

				files, err := gen.NewGenerator(cfg).Generate(&doc.MaterialProperty, doc.File)
				require.NoError(t, err, "interface %s", name)
				require.Len(t, files, 2)
				assert.Contains(t, string(files[1].Content), cfg.FunctionName(&doc.MaterialProperty))
			}
		})
	}
}
