package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTarGz(t *testing.T, path string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     path,
		Typeflag: tar.TypeReg,
		Size:     int64(len(content)),
		Mode:     0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func makeZip(t *testing.T, path string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(path)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestAssetFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         releaseAsset
		wantErr      bool
	}{
		{"darwin", "arm64", releaseAsset{name: "lexikid_Darwin_all.tar.gz", binary: "lexikid"}, false},
		{"darwin", "amd64", releaseAsset{name: "lexikid_Darwin_all.tar.gz", binary: "lexikid"}, false},
		{"linux", "amd64", releaseAsset{name: "lexikid_Linux_x86_64.tar.gz", binary: "lexikid"}, false},
		{"linux", "386", releaseAsset{name: "lexikid_Linux_i386.tar.gz", binary: "lexikid"}, false},
		{"windows", "arm64", releaseAsset{name: "lexikid_Windows_arm64.zip", binary: "lexikid.exe", zipped: true}, false},
		{"plan9", "amd64", releaseAsset{}, true},
		{"linux", "riscv64", releaseAsset{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("aaa  lexikid_Linux_x86_64.tar.gz\nnonsense line\nbbb  lexikid_Darwin_all.tar.gz\n")

	got, err := checksumFor(sums, "lexikid_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "bbb", got)

	_, err = checksumFor(sums, "lexikid_Windows_arm64.zip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no checksum published")
}

func TestUnpack(t *testing.T) {
	content := []byte("binary bits")

	t.Run("tar.gz with nested path", func(t *testing.T) {
		asset := releaseAsset{name: "lexikid_Linux_x86_64.tar.gz", binary: "lexikid"}
		got, err := unpack(makeTarGz(t, "lexikid_Linux_x86_64/lexikid", content), asset)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		asset := releaseAsset{name: "lexikid_Windows_arm64.zip", binary: "lexikid.exe", zipped: true}
		got, err := unpack(makeZip(t, "lexikid.exe", content), asset)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary absent", func(t *testing.T) {
		asset := releaseAsset{name: "lexikid_Linux_x86_64.tar.gz", binary: "lexikid"}
		_, err := unpack(makeTarGz(t, "README.md", content), asset)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in archive")
	})
}

func TestReplaceExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "lexikid")
	require.NoError(t, os.WriteFile(target, []byte("v1"), 0711))

	require.NoError(t, replaceExecutable(target, []byte("v2")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0711), info.Mode().Perm())

	t.Run("missing target", func(t *testing.T) {
		err := replaceExecutable(filepath.Join(dir, "absent"), []byte("v2"))
		require.Error(t, err)
	})
}

// releaseServer serves a fake tagged release: the platform archive and
// its checksums.txt.
func releaseServer(t *testing.T, tag string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/ewei/lexikid/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	})
	mux.HandleFunc(fmt.Sprintf("/ewei/lexikid/releases/download/%s/%s", tag, asset.name),
		func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write(archive) })
	mux.HandleFunc(fmt.Sprintf("/ewei/lexikid/releases/download/%s/checksums.txt", tag),
		func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(checksums)) })
	return httptest.NewServer(mux)
}

func TestUpdate(t *testing.T) {
	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	newBinary := []byte("fresh build")
	var archive []byte
	if asset.zipped {
		archive = makeZip(t, asset.binary, newBinary)
	} else {
		archive = makeTarGz(t, asset.binary, newBinary)
	}

	t.Run("full cycle", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), asset.binary)
		require.NoError(t, os.WriteFile(target, []byte("stale build"), 0755))

		server := releaseServer(t, "v3.1.0",
			archive, fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset.name))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v3.0.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)
		assert.Equal(t, []string{"check", "download", "verify", "install", "done"}, stages)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, newBinary, got)
	})

	t.Run("explicit target version skips the check", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), asset.binary)
		require.NoError(t, os.WriteFile(target, []byte("stale build"), 0755))

		server := releaseServer(t, "v2.9.0",
			archive, fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset.name))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL("http://never-called.invalid"),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v3.0.0", TargetVersion: "v2.9.0"},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)
		assert.NotContains(t, stages, "check")
	})

	t.Run("tampered archive", func(t *testing.T) {
		server := releaseServer(t, "v3.1.0",
			archive, fmt.Sprintf("%s  %s\n", sha256Hex([]byte("something else")), asset.name))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v3.0.0"},
			func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("checksum entry missing", func(t *testing.T) {
		server := releaseServer(t, "v3.1.0", archive, "deadbeef  some_other_file.tar.gz\n")
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v3.0.0"},
			func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum published")
	})

	t.Run("dev build refuses", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"},
			func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("nothing newer", func(t *testing.T) {
		server := releaseServer(t, "v3.0.0", archive, "")
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v3.0.0"},
			func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})
}
