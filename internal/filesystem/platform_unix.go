//go:build !windows

package filesystem

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

// creationTime returns the closest thing to a birth timestamp the platform
// exposes through os.FileInfo: the inode change time.
func creationTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
}

// lookupOwner resolves the owning account as HOST\user, mirroring the
// DOMAIN\account form used on Windows.
func lookupOwner(path string, info os.FileInfo) (string, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", fmt.Errorf("no stat data for %s", path)
	}

	owner, err := user.LookupId(strconv.FormatUint(uint64(stat.Uid), 10))
	if err != nil {
		return "", err
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	return host + `\` + owner.Username, nil
}

// accessMask maps POSIX permission bits into the shared capability mask
// space. A capability counts when any class (user, group, other) grants it,
// the way every ACE contributes to the union on Windows.
func accessMask(_ string, info os.FileInfo) (uint32, error) {
	perm := info.Mode().Perm()

	read := perm&0o444 != 0
	write := perm&0o222 != 0
	exec := perm&0o111 != 0

	var mask uint32
	if read {
		mask |= maskRead | maskReadAttributes | maskReadPermissions
	}
	if write {
		mask |= maskWrite | maskWriteAttributes | maskDelete
	}
	if exec {
		mask |= maskExecute
	}
	if read && exec {
		mask |= maskReadAndExecute
	}
	if write && exec {
		mask |= maskWriteAndExecute
	}
	if read && write && exec {
		mask |= maskChangePermissions | maskTakeOwnership | maskFullControl
	}

	return mask, nil
}
