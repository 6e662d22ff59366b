package component

import "github.com/weihouang/folio/scene"

// SceneGroup marks the one entity per section that owns the section's
// transition properties. The transition system steps it once per frame.
type SceneGroup struct {
	Group *scene.Group
}

var SceneGroupComponent = NewComponent[SceneGroup]()

// GroupMember links a drawable entity to the group whose property values it
// displays. Members never step the group themselves.
type GroupMember struct {
	Group *scene.Group
}

var GroupMemberComponent = NewComponent[GroupMember]()
