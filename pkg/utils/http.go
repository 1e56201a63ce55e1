package utils

import (
	"context"

	"github.com/hashicorp/go-getter"
)

// DownloadFile fetches a single file without archive detection, so an
// executable is stored byte for byte as served.
func DownloadFile(ctx context.Context, source string, dst string) error {
	c := getter.Client{
		Ctx:           ctx,
		Src:           source,
		Dst:           dst,
		Mode:          getter.ClientModeFile,
		Decompressors: map[string]getter.Decompressor{},
	}

	return c.Get()
}
