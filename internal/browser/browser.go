// Package browser lets the user pick a file by walking a directory tree
// through numbered choice lists.
package browser

import (
	"os"
	"path/filepath"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/fsutil"
	"github.com/interutils/cli/internal/log"
	"github.com/interutils/cli/internal/prompt"
)

// Chooser presents a numbered list and returns an index or a prompt sentinel.
type Chooser interface {
	Choose(options []string, question string, defaultIndex int) int
}

// Browser walks directories with a Chooser.
type Browser struct {
	chooser Chooser
	out     domain.Reporter
}

// New returns a Browser asking through chooser and warning through out.
func New(chooser Chooser, out domain.Reporter) *Browser {
	return &Browser{chooser: chooser, out: out}
}

type outcome int

const (
	picked outcome = iota
	noSelection
	aborted
)

// Browse lets the user pick a file below root and returns its path, or ""
// when nothing was picked. An empty directory at root or an interrupt
// anywhere yields "". Failing to list root is an error; failing to list a
// subdirectory is reported and the parent is shown again.
//
// Backing out of a subdirectory (empty answer, or the subdirectory is
// empty) shows the parent directory again; picking a file or interrupting
// ends the whole walk.
func (b *Browser) Browse(root string) (string, error) {
	path, _, err := b.browse(root)
	return path, err
}

func (b *Browser) browse(dir string) (string, outcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", noSelection, err
	}
	if len(entries) == 0 {
		b.out.Report(domain.SeverityCaution, "Empty directory!")
		return "", noSelection, nil
	}

	for {
		labels := make([]string, len(entries))
		for i, e := range entries {
			labels[i] = label(dir, e)
		}

		c := b.chooser.Choose(labels, "Choose file:", prompt.Cancelled)
		switch {
		case c == prompt.Invalid:
			b.out.Report(domain.SeverityCaution, "Invalid selection!")
			continue
		case c == prompt.Aborted:
			log.Debug("browser: aborted in %s", dir)
			return "", aborted, nil
		case c < 0:
			return "", noSelection, nil
		}

		selected := filepath.Join(dir, entries[c].Name())
		if !isDir(selected) {
			return selected, picked, nil
		}

		path, result, err := b.browse(selected)
		if err != nil {
			b.out.Report(domain.SeverityError, err.Error())
			continue
		}
		if result == noSelection {
			continue
		}
		return path, result, nil
	}
}

// label renders a directory as its bare name and a file as
// "name\t(size, lines)". Metadata is read on every call.
func label(dir string, e os.DirEntry) string {
	p := filepath.Join(dir, e.Name())
	if isDir(p) {
		return e.Name()
	}
	v, err := fsutil.FileVolume(p)
	if err != nil {
		log.Debug("browser: no metadata for %s: %v", p, err)
		return e.Name() + "\t(unreadable)"
	}
	return e.Name() + "\t" + v.Summary()
}

// isDir follows symlinks, so a link to a directory is browsable.
func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
