package ociimage

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	digest "github.com/opencontainers/go-digest"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

func writeBlob(t *testing.T, imagePath string, content []byte) string {
	t.Helper()
	sum := sha256.Sum256(content)
	hexDigest := hex.EncodeToString(sum[:])
	blobDir := filepath.Join(imagePath, "blobs", "sha256")
	if err := os.MkdirAll(blobDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(blobDir, hexDigest), content, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return "sha256:" + hexDigest
}

func makeLayerTarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var tarBuf bytes.Buffer
	tw := tar.NewWriter(&tarBuf)
	for name, body := range files {
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(body))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("WriteHeader: %v", err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar Close: %v", err)
	}

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	if _, err := gw.Write(tarBuf.Bytes()); err != nil {
		t.Fatalf("gzip Write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip Close: %v", err)
	}
	return gzBuf.Bytes()
}

func buildOCIImage(t *testing.T, imagesDir, name string) {
	t.Helper()
	imagePath := filepath.Join(imagesDir, name)

	layerGz := makeLayerTarGz(t, map[string]string{"etc/hostname": "alpine\n"})
	layerDigest := writeBlob(t, imagePath, layerGz)

	manifest := specs.Manifest{
		Layers: []specs.Descriptor{{MediaType: "application/vnd.oci.image.layer.v1.tar+gzip", Digest: digest.Digest(layerDigest), Size: int64(len(layerGz))}},
	}
	manifestBytes, err := json.Marshal(manifest)
	if err != nil {
		t.Fatalf("marshal manifest: %v", err)
	}
	manifestDigest := writeBlob(t, imagePath, manifestBytes)

	index := specs.Index{
		Manifests: []specs.Descriptor{{MediaType: "application/vnd.oci.image.manifest.v1+json", Digest: digest.Digest(manifestDigest)}},
	}
	indexBytes, err := json.Marshal(index)
	if err != nil {
		t.Fatalf("marshal index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(imagePath, "index.json"), indexBytes, 0o644); err != nil {
		t.Fatalf("write index.json: %v", err)
	}
}

func TestPrepareRootfsOCILayout(t *testing.T) {
	root, err := os.MkdirTemp("", "ociimage-test")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(root)

	imagesDir := filepath.Join(root, "images")
	rootfsDir := filepath.Join(root, "rootfs")
	buildOCIImage(t, imagesDir, "alpine")

	m := New(imagesDir, rootfsDir)
	path, err := m.PrepareRootfs("alpine")
	if err != nil {
		t.Fatalf("PrepareRootfs: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(path, "etc/hostname"))
	if err != nil {
		t.Fatalf("reading unpacked file: %v", err)
	}
	if string(got) != "alpine\n" {
		t.Fatalf("unpacked content = %q, want %q", got, "alpine\n")
	}
}

func TestPrepareRootfsOCILayoutIsIdempotent(t *testing.T) {
	root, err := os.MkdirTemp("", "ociimage-test")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(root)

	imagesDir := filepath.Join(root, "images")
	rootfsDir := filepath.Join(root, "rootfs")
	buildOCIImage(t, imagesDir, "alpine")

	m := New(imagesDir, rootfsDir)
	if _, err := m.PrepareRootfs("alpine"); err != nil {
		t.Fatalf("first PrepareRootfs: %v", err)
	}
	// Leave a stray file behind to prove re-materialization removes it.
	strayPath := filepath.Join(rootfsDir, "alpine", "stray")
	if err := os.WriteFile(strayPath, []byte("leftover"), 0o644); err != nil {
		t.Fatalf("writing stray file: %v", err)
	}

	path, err := m.PrepareRootfs("alpine")
	if err != nil {
		t.Fatalf("second PrepareRootfs: %v", err)
	}
	if _, err := os.Stat(filepath.Join(path, "stray")); !os.IsNotExist(err) {
		t.Fatalf("expected stray file to be gone after re-materialization, stat err = %v", err)
	}
}

func TestPrepareRootfsPrebuilt(t *testing.T) {
	root, err := os.MkdirTemp("", "ociimage-test")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(root)

	imagesDir := filepath.Join(root, "images")
	rootfsDir := filepath.Join(root, "rootfs")
	prebuilt := filepath.Join(imagesDir, "busybox", "rootfs", "bin")
	if err := os.MkdirAll(prebuilt, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(prebuilt, "sh"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := New(imagesDir, rootfsDir)
	path, err := m.PrepareRootfs("busybox")
	if err != nil {
		t.Fatalf("PrepareRootfs: %v", err)
	}
	if _, err := os.Stat(filepath.Join(path, "bin", "sh")); err != nil {
		t.Fatalf("expected bin/sh to be copied: %v", err)
	}
}

func TestPrepareRootfsMalformedIndexNamesImage(t *testing.T) {
	root, err := os.MkdirTemp("", "ociimage-test")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(root)

	imagesDir := filepath.Join(root, "images")
	rootfsDir := filepath.Join(root, "rootfs")
	imagePath := filepath.Join(imagesDir, "broken")
	if err := os.MkdirAll(imagePath, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(imagePath, "index.json"), []byte("{not valid json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := New(imagesDir, rootfsDir)
	_, err = m.PrepareRootfs("broken")
	if err == nil {
		t.Fatalf("expected error for malformed index.json")
	}
	if got := err.Error(); !contains(got, "broken") {
		t.Fatalf("error %q does not mention image name %q", got, "broken")
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (func() bool {
		for i := 0; i+len(substr) <= len(s); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	})()
}
