package input

import "github.com/Carmen-Shannon/oxy-showroom/common"

// Action is a logical input the simulation reads instead of raw key codes.
type Action string

const (
	ActionMoveForward  Action = "moveForward"
	ActionMoveBackward Action = "moveBackward"
	ActionMoveLeft     Action = "moveLeft"
	ActionMoveRight    Action = "moveRight"
	ActionJump         Action = "jump"
	ActionInteract     Action = "interact"
	ActionCancel       Action = "cancel"
)

// DefaultBindings maps WASD, the arrow keys, space, E and Escape to their actions.
func DefaultBindings() map[uint32]Action {
	return map[uint32]Action{
		common.KeyW:     ActionMoveForward,
		common.KeyUp:    ActionMoveForward,
		common.KeyS:     ActionMoveBackward,
		common.KeyDown:  ActionMoveBackward,
		common.KeyA:     ActionMoveLeft,
		common.KeyLeft:  ActionMoveLeft,
		common.KeyD:     ActionMoveRight,
		common.KeyRight: ActionMoveRight,
		common.KeySpace: ActionJump,
		common.KeyE:     ActionInteract,
		common.KeyEnter: ActionInteract,
		common.KeyEsc:   ActionCancel,
	}
}
