package safety

import "github.com/moby/sys/mountinfo"

// isMountRoot reports whether path is itself the root of a mounted
// filesystem. Trashing or renaming a mount root is never what the user
// meant, markers or not.
func isMountRoot(path string) (bool, error) {
	return mountinfo.Mounted(path)
}
