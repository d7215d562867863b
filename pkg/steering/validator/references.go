package validator

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"kiro-hq/steerlint/pkg/steering/document"
	steeringerrors "kiro-hq/steerlint/pkg/steering/errors"
)

// validateFileReferences checks that every string entry in file_references
// resolves to an existing path, first relative to the directory containing
// the document and then relative to the repository root. Non-list values
// and non-string elements are skipped here; the field-type checks already
// report those.
func (v *Validator) validateFileReferences(errs *steeringerrors.ErrorList, path string, fm *document.Frontmatter) {
	mapping, ok := fm.Mapping()
	if !ok {
		return
	}
	raw, present := mapping["file_references"]
	if !present {
		return
	}
	refs, ok := raw.([]any)
	if !ok {
		return
	}

	baseDir := filepath.Dir(path)
	line := fm.Line("file_references")

	// The repository root is resolved lazily: most documents reference
	// files beside themselves.
	repoRoot := ""
	rootResolved := false

	for _, element := range refs {
		ref, ok := element.(string)
		if !ok {
			continue
		}
		if pathExists(filepath.Join(baseDir, ref)) {
			continue
		}
		if !rootResolved {
			repoRoot = RepositoryRoot(path)
			rootResolved = true
		}
		if repoRoot != "" && pathExists(filepath.Join(repoRoot, ref)) {
			continue
		}
		errs.AddErrorAt(path, steeringerrors.ErrorTypeMissingFileReference,
			fmt.Sprintf("Referenced file '%s' does not exist", ref), line)
	}
}

// RepositoryRoot locates the top-level directory of the version-controlled
// project containing path, walking parent directories upward until a .git
// marker is found. It returns "" when the document is not inside a
// repository or the repository has no worktree.
func RepositoryRoot(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(abs), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return ""
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return worktree.Filesystem.Root()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
