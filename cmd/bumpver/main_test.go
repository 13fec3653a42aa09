package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// workdir creates a temp project with version.txt and .env and makes it the
// working directory.
func workdir(t *testing.T, ver, env string) string {
	t.Helper()
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	if err := os.WriteFile("version.txt", []byte(ver), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(".env", []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}
	return tmp
}

func TestRun_BumpMinor(t *testing.T) {
	workdir(t, "1.2.3", "REACT_APP_VERSION=1.2.3\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--minor", "--file", "version.txt"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output without -v, got %q", stdout.String())
	}

	got, _ := os.ReadFile("version.txt")
	if string(got) != "1.3.0" {
		t.Fatalf("version.txt = %q, want %q", got, "1.3.0")
	}
	env, _ := os.ReadFile(".env")
	if string(env) != "REACT_APP_VERSION=1.3.0\n" {
		t.Fatalf(".env = %q", env)
	}
}

func TestRun_Verbose(t *testing.T) {
	workdir(t, "5.9.9", "REACT_APP_VERSION=5.9.9\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--major", "--minor", "--micro", "--file", "version.txt", "-v"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	for _, want := range []string{"version.txt", "5.9.9", "6.1.1"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("verbose output missing %q: %q", want, stdout.String())
		}
	}
}

func TestRun_FromCommit(t *testing.T) {
	workdir(t, "0.4.2", "REACT_APP_VERSION=0.4.2\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--from-commit", "feat: add inspector panel", "--file", "version.txt"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	got, _ := os.ReadFile("version.txt")
	if string(got) != "0.5.0" {
		t.Fatalf("version.txt = %q, want %q", got, "0.5.0")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := workdir(t, "1.0.0", "")
	if err := os.Mkdir(filepath.Join(dir, "web"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("web", ".env"), []byte("VITE_VERSION=1.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	conf := "version_file = \"version.txt\"\nenv_file = \"web/.env\"\nenv_var = \"VITE_VERSION\"\n"
	if err := os.WriteFile(".bumpver.toml", []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer

	code := run([]string{"--micro"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	env, _ := os.ReadFile(filepath.Join("web", ".env"))
	if string(env) != "VITE_VERSION=1.0.1\n" {
		t.Fatalf("web/.env = %q", env)
	}
}

func TestRun_MalformedVersion(t *testing.T) {
	workdir(t, "1.2", "REACT_APP_VERSION=1.2\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--micro", "--file", "version.txt"}, strings.NewReader(""), &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if !strings.HasPrefix(stderr.String(), "bumpver: ") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	workdir(t, "1.0.0", "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--file", "nope.txt"}, strings.NewReader(""), &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit code")
	}
}

func TestRun_InteractiveNeedsTerminal(t *testing.T) {
	workdir(t, "1.0.0", "REACT_APP_VERSION=1.0.0\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-i", "--file", "version.txt"}, strings.NewReader(""), &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if !strings.Contains(stderr.String(), "terminal") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	got, _ := os.ReadFile("version.txt")
	if string(got) != "1.0.0" {
		t.Fatalf("version.txt changed to %q", got)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "--major") {
		t.Fatalf("help output missing flags: %q", stdout.String())
	}
}

func TestRun_InvalidFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--patch"}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "bumpver ") {
		t.Fatalf("stdout = %q", stdout.String())
	}
}
