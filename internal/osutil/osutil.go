// Package osutil holds operating system constants shared across packages.
package osutil

// Windows is the runtime.GOOS value of Windows.
const Windows = "windows"

type exitCode int

// ExitError is the process status after a failed command.
const ExitError exitCode = 1

// DirPermission is used for every directory chime creates.
const DirPermission = 0o755
