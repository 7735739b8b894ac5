package reconcile

import (
	"fmt"

	apperrors "armsmith/internal/errors"
	"armsmith/pkg/resource"
)

// ResolvedMount pairs a container mount path with the group-level volume
// definition it resolved to.
type ResolvedMount struct {
	Volume    resource.Volume
	MountPath string
}

// ResolveMounts matches a container's volume mounts against the group's
// declared volumes by name. Resolution happens at assembly time, not at
// declaration time, because group volumes may be declared after the
// instances that reference them.
func ResolveMounts(group resource.ContainerGroupConfig, inst resource.ContainerInstanceConfig) ([]ResolvedMount, error) {
	byName := make(map[string]resource.Volume, len(group.Volumes))
	for _, v := range group.Volumes {
		byName[v.VolumeName()] = v
	}

	mounts := make([]ResolvedMount, 0, len(inst.VolumeMounts))
	for _, m := range inst.VolumeMounts {
		vol, ok := byName[m.VolumeName]
		if !ok {
			return nil, fmt.Errorf("%w: container %q mounts volume %q not declared on group %q",
				apperrors.ErrVolumeNotFound, inst.Name, m.VolumeName, group.GroupName)
		}
		mounts = append(mounts, ResolvedMount{Volume: vol, MountPath: m.MountPath})
	}
	return mounts, nil
}
