// Package project identifies the documented JavaScript project and where its sources are hosted.
package project

import (
	"context"
	"fmt"
	"github.com/go-ini/ini"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/tidwall/gjson"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/mod/semver"
	"path"
	"regexp"
	"strings"
)

// Project represents information about a detected project
type Project struct {
	Root         string // root URL
	Name         string // package.json name, root base name otherwise
	Version      string // canonical semver without the leading v, or the raw package.json value
	VersionValid bool
	Origin       string // git remote origin URL
	SourceURL    string // browsable source directory derived from Origin, empty when unknown
}

var githubOrigin = regexp.MustCompile(`^(?:https?://(?:[^@/]+@)?github\.com/|git@github\.com:|ssh://git@github\.com/)([^/]+)/([^/]+?)(?:\.git)?/?$`)

// Detect inspects root for package.json and a git origin; root must exist
func Detect(ctx context.Context, fs afs.Service, root, srcDir, ref string) (*Project, error) {
	exists, err := fs.Exists(ctx, root)
	if err != nil {
		return nil, errs.Read(root, err)
	}
	if !exists {
		return nil, errs.Read(root, fmt.Errorf("project root does not exist"))
	}
	ret := &Project{Root: root, Name: path.Base(strings.TrimRight(root, "/"))}
	if err = ret.readPackage(ctx, fs); err != nil {
		return nil, err
	}
	if err = ret.readOrigin(ctx, fs); err != nil {
		return nil, err
	}
	ret.SourceURL = SourceURL(ret.Origin, ref, srcDir)
	return ret, nil
}

func (p *Project) readPackage(ctx context.Context, fs afs.Service) error {
	URL := url.Join(p.Root, "package.json")
	data, ok, err := download(ctx, fs, URL)
	if err != nil || !ok {
		return err
	}
	if !gjson.ValidBytes(data) {
		return errs.Read(URL, fmt.Errorf("invalid JSON"))
	}
	if name := gjson.GetBytes(data, "name").String(); name != "" {
		p.Name = name
	}
	p.Version, p.VersionValid = CanonicalVersion(gjson.GetBytes(data, "version").String())
	return nil
}

func (p *Project) readOrigin(ctx context.Context, fs afs.Service) error {
	URL := url.Join(p.Root, ".git", "config")
	data, ok, err := download(ctx, fs, URL)
	if err != nil || !ok {
		return err
	}
	p.Origin = GitOrigin(data)
	return nil
}

func download(ctx context.Context, fs afs.Service, URL string) ([]byte, bool, error) {
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, false, errs.Read(URL, err)
	}
	if !exists {
		return nil, false, nil
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, false, errs.Read(URL, err)
	}
	return data, true, nil
}

// GitOrigin extracts the remote "origin" url from git config content
func GitOrigin(config []byte) string {
	file, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true, SkipUnrecognizableLines: true}, config)
	if err != nil {
		return ""
	}
	for _, section := range file.Sections() {
		if strings.ReplaceAll(section.Name(), `"`, "") != "remote origin" {
			continue
		}
		return strings.TrimSpace(section.Key("url").String())
	}
	return ""
}

// CanonicalVersion canonicalizes a package version; invalid versions are returned verbatim with false
func CanonicalVersion(version string) (string, bool) {
	version = strings.TrimSpace(version)
	candidate := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(candidate) {
		return version, false
	}
	canonical := semver.Canonical(candidate)
	if build := semver.Build(candidate); build != "" {
		canonical += build
	}
	return strings.TrimPrefix(canonical, "v"), true
}

// SourceURL returns https://github.com/<owner>/<repo>/blob/<ref>/<srcDir>/ for GitHub origins
func SourceURL(origin, ref, srcDir string) string {
	matches := githubOrigin.FindStringSubmatch(strings.TrimSpace(origin))
	if len(matches) != 3 {
		return ""
	}
	if ref == "" {
		ref = "master"
	}
	ret := "https://github.com/" + matches[1] + "/" + matches[2] + "/blob/" + ref + "/"
	if srcDir = strings.Trim(srcDir, "/"); srcDir != "" {
		ret += srcDir + "/"
	}
	return ret
}
