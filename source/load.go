package source

import (
	"context"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"
	"sort"
)

// Load reads every matching file directly under dirURL, sorted by name.
// Any read failure is fatal and reported as errs.ReadError.
func Load(ctx context.Context, fs afs.Service, dirURL string, match MatcherFn) (*Set, error) {
	objects, err := fs.List(ctx, dirURL)
	if err != nil {
		return nil, errs.Read(dirURL, err)
	}
	var names []string
	for _, object := range objects {
		if object.IsDir() || !match(object) {
			continue
		}
		names = append(names, object.Name())
	}
	sort.Strings(names)

	files := make([]*File, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			URL := url.Join(dirURL, name)
			data, err := fs.DownloadWithURL(groupCtx, URL)
			if err != nil {
				return errs.Read(URL, err)
			}
			file := NewFile(name, string(data))
			file.URL = URL
			files[i] = file
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return NewSet(files...), nil
}
