package components

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its collision body. The body's Data field holds
// the entity back.
type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()
