package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ramakrishna-scripts/filediscovery/internal/fserrors"
	"github.com/Ramakrishna-scripts/filediscovery/pkg/models"
)

// Degraded-field placeholders. A failed owner or permission lookup keeps the
// record with these values instead of dropping it.
const (
	OwnerError       = "Error retrieving owner"
	PermissionsError = "Error retrieving permissions"
	NoPermissions    = "No Permissions"
)

// Capability bits of the permission resolver. The values mirror the Windows
// access-mask constants and are the portable contract: platform code
// produces a mask in this space, the resolver turns it into names.
const (
	maskRead              uint32 = 1
	maskWrite             uint32 = 2
	maskExecute           uint32 = 4
	maskReadAndExecute    uint32 = 16
	maskWriteAndExecute   uint32 = 32
	maskReadAttributes    uint32 = 256
	maskWriteAttributes   uint32 = 512
	maskDelete            uint32 = 8192
	maskReadPermissions   uint32 = 32768
	maskChangePermissions uint32 = 131072
	maskTakeOwnership     uint32 = 262144
	maskFullControl       uint32 = 16777216
)

var permissionNames = map[uint32]string{
	maskRead:              "Read",
	maskWrite:             "Write",
	maskExecute:           "Execute",
	maskReadAndExecute:    "ReadAndExecute",
	maskWriteAndExecute:   "WriteAndExecute",
	maskReadAttributes:    "ReadAttributes",
	maskWriteAttributes:   "WriteAttributes",
	maskDelete:            "Delete",
	maskReadPermissions:   "ReadPermissions",
	maskChangePermissions: "ChangePermissions",
	maskTakeOwnership:     "TakeOwnership",
	maskFullControl:       "FullControl",
}

// Metadata is the result of a single per-path lookup
type Metadata struct {
	Kind        models.EntryKind
	Size        int64 // files only
	Extension   string
	CreatedAt   time.Time
	ModifiedAt  time.Time
	Owner       string
	Permissions string
}

// MetadataProvider describes a single filesystem entry
type MetadataProvider interface {
	Describe(path string) (*Metadata, error)
}

// OSProvider resolves metadata from the local filesystem
type OSProvider struct {
	logger *zap.Logger
}

// NewOSProvider creates a provider backed by the local filesystem
func NewOSProvider(logger *zap.Logger) *OSProvider {
	return &OSProvider{
		logger: logger,
	}
}

// Describe returns metadata for path. A stat failure is fatal for the entry
// and returned to the caller; owner and permission failures degrade to
// placeholder strings instead.
func (p *OSProvider) Describe(path string) (*Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fserrors.NewEntryStatError(path, err)
	}

	md := &Metadata{
		ModifiedAt: info.ModTime(),
		CreatedAt:  creationTime(info),
	}

	if info.IsDir() {
		md.Kind = models.KindDirectory
	} else {
		md.Kind = models.KindFile
		md.Size = info.Size()
		md.Extension = filepath.Ext(path)
	}

	md.Owner = p.resolveOwner(path, info)
	md.Permissions = p.resolvePermissions(path, info)

	return md, nil
}

// resolveOwner returns the domain-qualified owning account, or the error
// placeholder when the lookup fails
func (p *OSProvider) resolveOwner(path string, info os.FileInfo) string {
	owner, err := lookupOwner(path, info)
	if err != nil {
		p.logger.Warn("Error retrieving owner",
			zap.String("path", path),
			zap.Error(fserrors.NewMetadataError(path, err)))
		return OwnerError
	}
	return owner
}

// resolvePermissions returns the named capability set granted on path, or
// the error placeholder when the access mask cannot be read
func (p *OSProvider) resolvePermissions(path string, info os.FileInfo) string {
	mask, err := accessMask(path, info)
	if err != nil {
		p.logger.Warn("Error retrieving permissions",
			zap.String("path", path),
			zap.Error(fserrors.NewMetadataError(path, err)))
		return PermissionsError
	}
	return PermissionNames(mask)
}

// PermissionNames expands an access mask into the sorted, comma-joined set
// of capability names. Duplicate grants collapse into one name; an empty
// mask renders as "No Permissions".
func PermissionNames(mask uint32) string {
	names := make([]string, 0, len(permissionNames))
	for bit, name := range permissionNames {
		if mask&bit != 0 {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return NoPermissions
	}

	sort.Strings(names)
	return strings.Join(names, ", ")
}
