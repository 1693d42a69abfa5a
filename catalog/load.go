package catalog

import (
	"context"
	"fmt"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/viant/afs"
	"path"
	"strings"
)

// Load reads and parses a catalog, the format is chosen by file extension
func Load(ctx context.Context, fs afs.Service, URL string) (*Catalog, error) {
	parse, err := parserFor(URL)
	if err != nil {
		return nil, err
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errs.Read(URL, err)
	}
	ret, err := parse(ctx, data)
	if err != nil {
		return nil, errs.Read(URL, err)
	}
	return ret, nil
}

func parserFor(URL string) (func(context.Context, []byte) (*Catalog, error), error) {
	switch ext := strings.ToLower(path.Ext(URL)); ext {
	case ".js":
		return ParseJS, nil
	case ".yaml", ".yml":
		return func(_ context.Context, data []byte) (*Catalog, error) {
			return ParseYAML(data)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog type: %s", ext)
	}
}
