package gui

import "hash/fnv"

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same widget.
type ID uint64

// GetID generates a stable ID from a string label.
// The ID is unique within the current ID stack context: the parent ID
// and a per-frame call counter are mixed in so the same label can
// appear in different leaves (or in a loop) without colliding.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	parentID := ID(0)
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	h := fnv.New64a()
	h.Write([]byte(label))
	labelHash := h.Sum64()

	return ID(uint64(parentID)<<32 | uint64(ctx.idCounter)<<16 | labelHash&0xFFFF)
}

// StableID generates an ID from a label without the call counter.
// Use for state that must survive reordering, such as open menus.
func (ctx *Context) StableID(label string) ID {
	parentID := ID(0)
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(uint64(parentID)<<32 | h.Sum64()&0xFFFFFFFF)
}

// PushID pushes an ID onto the stack for nested widgets.
// All GetID calls will be relative to this parent ID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt pushes an integer-based ID onto the stack.
func (ctx *Context) PushIDInt(n int) {
	ctx.idCounter++
	parentID := ID(0)
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}
	ctx.idStack = append(ctx.idStack, ID(uint64(parentID)<<32|uint64(ctx.idCounter)<<16|uint64(n)&0xFFFF))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
