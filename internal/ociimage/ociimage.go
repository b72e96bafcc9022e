// Package ociimage materializes a container rootfs from an on-disk image.
// Two layouts are recognized under ./images/<name>/: a prebuilt rootfs/
// directory, copied verbatim, or an OCI image layout (index.json + gzipped
// tar layers under blobs/sha256/), unpacked in manifest order.
package ociimage

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-containerregistry/pkg/v1/types"
	specs "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/aethelrun/aetheld/internal/aethelerr"
)

// Materializer prepares rootfs directory trees for named images rooted at
// ImagesDir, writing the materialized tree under RootfsDir.
type Materializer struct {
	ImagesDir string
	RootfsDir string
}

// New returns a Materializer rooted at the given images/rootfs directories.
func New(imagesDir, rootfsDir string) *Materializer {
	return &Materializer{ImagesDir: imagesDir, RootfsDir: rootfsDir}
}

// PrepareRootfs implements the image materializer contract (spec §4.1):
// given an image name, it returns a writable rootfs directory path ready to
// be pivot_root'd into.
func (m *Materializer) PrepareRootfs(imageName string) (string, error) {
	imagePath := filepath.Join(m.ImagesDir, imageName)
	rootfsPath := filepath.Join(m.RootfsDir, imageName)

	prebuilt := filepath.Join(imagePath, "rootfs")
	if fi, err := os.Stat(prebuilt); err == nil && fi.IsDir() {
		if err := os.RemoveAll(rootfsPath); err != nil {
			return "", aethelerr.New(aethelerr.KindIO, rootfsPath, fmt.Errorf("removing stale rootfs: %w", err))
		}
		if err := copyTree(prebuilt, rootfsPath); err != nil {
			return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("copying prebuilt rootfs: %w", err))
		}
		return rootfsPath, nil
	}

	return m.unpackOCILayout(imageName, imagePath, rootfsPath)
}

func (m *Materializer) unpackOCILayout(imageName, imagePath, rootfsPath string) (string, error) {
	indexPath := filepath.Join(imagePath, "index.json")
	indexFile, err := os.Open(indexPath)
	if err != nil {
		return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("opening index.json: %w", err))
	}
	defer indexFile.Close()

	var index specs.Index
	if err := json.NewDecoder(indexFile).Decode(&index); err != nil {
		return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("decoding index.json: %w", err))
	}
	if len(index.Manifests) == 0 {
		return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("no manifests found in index.json"))
	}

	manifestPath, err := blobPath(imagePath, string(index.Manifests[0].Digest))
	if err != nil {
		return "", aethelerr.New(aethelerr.KindImage, imageName, err)
	}
	manifestFile, err := os.Open(manifestPath)
	if err != nil {
		return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("opening manifest blob: %w", err))
	}
	defer manifestFile.Close()

	var manifest specs.Manifest
	if err := json.NewDecoder(manifestFile).Decode(&manifest); err != nil {
		return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("decoding manifest: %w", err))
	}

	if err := os.RemoveAll(rootfsPath); err != nil {
		return "", aethelerr.New(aethelerr.KindIO, rootfsPath, fmt.Errorf("removing stale rootfs: %w", err))
	}
	if err := os.MkdirAll(rootfsPath, 0o755); err != nil {
		return "", aethelerr.New(aethelerr.KindIO, rootfsPath, fmt.Errorf("creating rootfs dir: %w", err))
	}

	for _, layer := range manifest.Layers {
		layerPath, err := blobPath(imagePath, string(layer.Digest))
		if err != nil {
			return "", aethelerr.New(aethelerr.KindImage, imageName, err)
		}
		if err := unpackLayer(layerPath, rootfsPath, types.MediaType(layer.MediaType)); err != nil {
			return "", aethelerr.New(aethelerr.KindImage, imageName, fmt.Errorf("unpacking layer %s: %w", layerPath, err))
		}
	}

	return rootfsPath, nil
}

// blobPath resolves a "sha256:<hex>" digest string to its blob file path.
func blobPath(imagePath, digest string) (string, error) {
	const prefix = "sha256:"
	if !strings.HasPrefix(digest, prefix) {
		return "", fmt.Errorf("unsupported digest algorithm in %q", digest)
	}
	hex := strings.TrimPrefix(digest, prefix)
	return filepath.Join(imagePath, "blobs", "sha256", hex), nil
}

// unpackLayer decompresses a layer blob into dst, preserving tar semantics.
// Whiteouts are not honored (acknowledged limitation). mediaType selects
// whether the blob needs gunzipping first; uncompressed layer media types
// are read as a plain tar stream.
func unpackLayer(layerPath, dst string, mediaType types.MediaType) error {
	f, err := os.Open(layerPath)
	if err != nil {
		return fmt.Errorf("opening layer blob: %w", err)
	}
	defer f.Close()

	var tarStream io.Reader = f
	switch mediaType {
	case types.OCIUncompressedLayer, types.DockerUncompressedLayer:
		// already a plain tar stream
	default:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close()
		tarStream = gz
	}

	return untar(tarStream, dst)
}

// untar extracts a tar stream into dst. Grounded on the pure-Go untar used
// across the example pack: a switch on header type handling directories,
// regular files, and symlinks.
func untar(r io.Reader, dst string) error {
	tr := tar.NewReader(r)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dst, h.Name)
		if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
			return fmt.Errorf("tar entry %q escapes destination", h.Name)
		}

		switch h.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(h.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(h.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			_ = os.Remove(target)
			if err := os.Symlink(h.Linkname, target); err != nil {
				return err
			}
		default:
			// Other entry kinds (char/block devices, fifos, hardlinks) are
			// rare in userland image layers; skip rather than fail.
		}
	}
}

// copyTree mirrors a prebuilt rootfs directory tree into dst, creating
// parents and copying regular files (and symlinks) along the way.
func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			return os.MkdirAll(target, info.Mode())
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			in, err := os.Open(path)
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
			if err != nil {
				return err
			}
			defer out.Close()
			_, err = io.Copy(out, in)
			return err
		}
	})
}
