// Package output manages the generated documentation tree.
package output

import (
	"bytes"
	"context"
	"fmt"
	"github.com/jonvuri/jshint-messages/catalog"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"
	"os"
	"sync"
)

// Stage identifies a step of Prepare
type Stage string

const (
	StageDelete Stage = "delete"
	StageRoot   Stage = "root"
	StageDir    Stage = "dir"
	StageReady  Stage = "ready"
	StageWrite  Stage = "write"
)

const (
	dirMode  = os.FileMode(0o755)
	fileMode = os.FileMode(0o644)
)

// Observer is notified after each completed stage with the affected URL
type Observer func(stage Stage, URL string)

// Option configures a Store
type Option func(*Store)

// WithObserver sets the stage observer
func WithObserver(observer Observer) Option {
	return func(s *Store) {
		s.observer = observer
	}
}

// Store writes <root>/<category dir>/<code>.md documents
type Store struct {
	fs       afs.Service
	root     string
	observer Observer
	mux      sync.RWMutex
	ready    bool
}

// New creates a store rooted at root
func New(fs afs.Service, root string, options ...Option) *Store {
	ret := &Store{fs: fs, root: root}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Root returns the store root URL
func (s *Store) Root() string {
	return s.root
}

// Prepare wipes the root and recreates it with one directory per category.
// Stages run strictly in order: delete, create root, create category dirs, ready.
func (s *Store) Prepare(ctx context.Context, categories []catalog.Category) error {
	s.mux.Lock()
	s.ready = false
	s.mux.Unlock()

	exists, err := s.fs.Exists(ctx, s.root)
	if err != nil {
		return errs.Write(s.root, err)
	}
	if exists {
		if err = s.fs.Delete(ctx, s.root); err != nil {
			return errs.Write(s.root, err)
		}
	}
	s.notify(StageDelete, s.root)

	if err = s.fs.Create(ctx, s.root, dirMode, true); err != nil {
		return errs.Write(s.root, err)
	}
	s.notify(StageRoot, s.root)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, category := range categories {
		category := category
		group.Go(func() error {
			URL := url.Join(s.root, category.Dir())
			if err := s.fs.Create(groupCtx, URL, dirMode, true); err != nil {
				return errs.Write(URL, err)
			}
			s.notify(StageDir, URL)
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return err
	}

	s.mux.Lock()
	s.ready = true
	s.mux.Unlock()
	s.notify(StageReady, s.root)
	return nil
}

// Location returns the document URL for code
func (s *Store) Location(category catalog.Category, code string) string {
	return url.Join(s.root, category.Dir(), code+".md")
}

// Write stores a rendered document
func (s *Store) Write(ctx context.Context, category catalog.Category, code string, body string) error {
	URL := s.Location(category, code)
	s.mux.RLock()
	ready := s.ready
	s.mux.RUnlock()
	if !ready {
		return errs.Write(URL, fmt.Errorf("output directory %v is not prepared", s.root))
	}
	if err := s.fs.Upload(ctx, URL, fileMode, bytes.NewReader([]byte(body))); err != nil {
		return errs.Write(URL, err)
	}
	s.notify(StageWrite, URL)
	return nil
}

func (s *Store) notify(stage Stage, URL string) {
	if s.observer != nil {
		s.observer(stage, URL)
	}
}
