package flags

const (
	// RepositoryTypeFlagName exposes the shared repository type flag name.
	RepositoryTypeFlagName = "type"
	// RepositoryTypeFlagUsage describes the shared repository type flag purpose.
	RepositoryTypeFlagUsage = "Repository type"
	// RevisionFlagName exposes the shared revision flag name.
	RevisionFlagName = "revision"
	// RevisionFlagUsage describes the shared revision flag purpose.
	RevisionFlagUsage = "Git revision the operation starts from"
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Preview operations without contacting the hub"
	// AssumeYesFlagName exposes the shared assume-yes flag name.
	AssumeYesFlagName = "yes"
	// AssumeYesFlagShorthand provides the shorthand for the assume-yes flag.
	AssumeYesFlagShorthand = "y"
	// AssumeYesFlagUsage describes the shared assume-yes flag purpose.
	AssumeYesFlagUsage = "Automatically confirm prompts"
)
