package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mazzegi/finset/testx"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
}

func TestLoadDotenv(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub_1", "sub_2")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, ".env"), "FINSET_LOCALE=fr\nglobal=top\n# comment\n")
	writeFile(t, filepath.Join(root, "sub_1", ".env.toml"), "FINSET_LOCALE = \"de\"\nlevel = 1\n")
	writeFile(t, filepath.Join(sub, ".env"), "FINSET_CONFIG='sets.toml'\ndev\n")

	vs := LoadDotenv(sub)
	tx := testx.NewTx(t)
	tx.AssertEqual("sets.toml", vs["FINSET_CONFIG"])
	tx.AssertEqual(true, vs["dev"])
	tx.AssertEqual("de", vs["FINSET_LOCALE"])
	tx.AssertEqual(int64(1), vs["level"])
	tx.AssertEqual("top", vs["global"])
}

func TestLoadExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "base=/etc/finset\n")
	e := Load(dir,
		MkVar(KeyConfig, "{base}/sets.toml"),
		MkVar("n", "12"),
		MkVar("m", "x12"),
	)
	tx := testx.NewTx(t)
	tx.AssertEqual("/etc/finset/sets.toml", e.StringOrDefault(KeyConfig, ""))
	tx.AssertEqual(12, e.IntOrDefault("n", 0))
	tx.AssertEqual(7, e.IntOrDefault("m", 7))
	tx.AssertEqual("dflt", e.StringOrDefault("no-such-key-in-finset-env", "dflt"))
}

func TestDecodeConfig(t *testing.T) {
	tx := testx.NewTx(t)
	cfg, err := DecodeConfig(`
elements = [0, 1, 2]

[sets]
a = [3, 1, 2, 1]
b = ["2", 3]
`)
	tx.AssertNoErr(err)
	tx.AssertEqual(DefaultLocale, cfg.Locale)
	tx.AssertEqual([]int{3, 1, 2, 1}, cfg.Sets["a"])
	tx.AssertEqual([]int{2, 3}, cfg.Sets["b"])
	tx.AssertEqual([]int{0, 1, 2}, cfg.Elements)

	_, err = DecodeConfig("[sets]\na = [1.5]\n")
	tx.AssertErr(err)

	_, err = DecodeConfig("locale = ")
	tx.AssertErr(err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.toml")
	writeFile(t, path, "locale = \"de\"\n[sets]\nx = [1]\n")
	cfg, err := LoadConfig(path)
	testx.AssertNoErr(t, err)
	testx.AssertEqual(t, "de", cfg.Locale)
	testx.AssertEqual(t, map[string][]int{"x": {1}}, cfg.Sets)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	testx.AssertErr(t, err)
}
