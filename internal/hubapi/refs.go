package hubapi

// GitReference describes a branch or tag pointing at a specific commit.
type GitReference struct {
	Name         string `json:"name"`
	Ref          string `json:"ref"`
	TargetCommit string `json:"targetCommit"`
}

// RepositoryReferences groups the git references of a repository.
type RepositoryReferences struct {
	Branches []GitReference `json:"branches"`
	Tags     []GitReference `json:"tags"`
}
