package osm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch resolves src to a local file. Existing local paths are returned as
// is; anything else (http, git, s3, gcs URLs) is downloaded into dir.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	if fi, err := os.Stat(src); err == nil && !fi.IsDir() {
		return src, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}

	dst := filepath.Join(dir, "ways"+filepath.Ext(src))
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", src, err)
	}
	return dst, nil
}

// Load fetches src and decodes the ways it contains.
func Load(ctx context.Context, src, dir string) ([]Way, error) {
	path, err := Fetch(ctx, src, dir)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ways: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
