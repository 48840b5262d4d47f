//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

// creationTime returns the file creation timestamp from the Win32 attribute
// data.
func creationTime(info os.FileInfo) time.Time {
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds())
}

// lookupOwner resolves the owning account as DOMAIN\account from the file's
// security descriptor.
func lookupOwner(path string, _ os.FileInfo) (string, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return "", err
	}

	sid, _, err := sd.Owner()
	if err != nil {
		return "", err
	}

	account, domain, _, err := sid.LookupAccount("")
	if err != nil {
		return "", err
	}

	return domain + `\` + account, nil
}

// accessMask returns the union of the access masks of every ACE in the
// file's DACL.
func accessMask(path string, _ os.FileInfo) (uint32, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.DACL_SECURITY_INFORMATION)
	if err != nil {
		return 0, err
	}

	dacl, _, err := sd.DACL()
	if err != nil {
		return 0, err
	}
	if dacl == nil {
		return 0, nil
	}

	var mask uint32
	for i := uint32(0); i < uint32(dacl.AceCount); i++ {
		var ace *windows.ACCESS_ALLOWED_ACE
		if err := windows.GetAce(dacl, i, &ace); err != nil {
			continue
		}
		mask |= uint32(ace.Mask)
	}

	return mask, nil
}
