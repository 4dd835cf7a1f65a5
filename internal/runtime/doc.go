// Package runtime provides the execution context for grelease commands.
//
// It encapsulates the dependencies a release run needs: repository root,
// configuration, git facade, prompter, manifest writer, logger and the
// optional GitHub publisher.
package runtime
