package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Info describes the repository state at a root.
type Info struct {
	SHA    string // short (7 char) HEAD hash
	Branch string // branch name, empty when detached
}

// Head returns HEAD info for the repository containing root. If root is not
// inside a git repository, it returns a zero Info and a non-nil error.
func Head(root string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, fmt.Errorf("open repo: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		return Info{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	info := Info{SHA: ref.Hash().String()[:7]}
	if ref.Name().IsBranch() {
		info.Branch = ref.Name().Short()
	}
	return info, nil
}
