package store

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func writeSeedFile(t *testing.T, content []byte) string {
	dir, err := ioutil.TempDir("", "foodshare-seed")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	filename := filepath.Join(dir, "seed.yaml")
	if err := ioutil.WriteFile(filename, content, 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadSeedFile(t *testing.T) {
	data, err := yaml.Marshal(DefaultSeed())
	assert.NoError(t, err)

	seed, err := LoadSeedFile(writeSeedFile(t, data))
	assert.NoError(t, err)
	assert.NoError(t, seed.Validate())
	assert.Equal(t, DefaultSeed().Listings, seed.Listings)
	assert.Equal(t, DefaultSeed().Impact, seed.Impact)
}

func TestLoadSeedFileRejectsUnknownKeys(t *testing.T) {
	_, err := LoadSeedFile(writeSeedFile(t, []byte(`
listings:
  - id: 1
    food_type: Soup
    servings: 10
`)))
	assert.Error(t, err)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(os.TempDir(), "foodshare-does-not-exist.yaml"))
	assert.True(t, os.IsNotExist(err))
}
