package protocol

import (
	"github.com/automoto/exterminator-wizard/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetWallCollider uint = 20
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called once at startup before any network operations.
func RegisterComponents() error {
	// Static geometry: no interpolation
	if err := esync.RegisterComponent(
		SyncIDNetWallCollider,
		netcomponents.NetWallColliderData{},
		netcomponents.NetWallCollider,
	); err != nil {
		return err
	}

	return nil
}
