// Package release drives the branch-based release workflow.
//
// A run moves the repository from a clean development branch to a tagged
// release merged into master and back into development:
//
//	CleanCheck → TagCleanup → Sync → Negotiate → BranchGuard → BranchSetup →
//	VersionBump → MasterMerge → Tag → ReturnToDev [→ Publish]
//
// Steps run strictly in order. Any step failure ends the run and leaves the
// repository as the last successful step left it; there is no rollback.
package release
