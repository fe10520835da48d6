package core

import "sync"

// EventContext carries the payload of a fired event. Which fields are
// meaningful depends on the code; unused fields are zero.
type EventContext struct {
	// Path names the file behind asset and capture events.
	Path string
	// U32 holds small numeric payloads such as sizes and frame counts.
	U32 [4]uint32
	// F64 holds timing payloads.
	F64 [2]float64
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A watched asset file was created or rewritten.
	// Context usage: Path = asset path relative to the working directory.
	EVENT_CODE_ASSET_CHANGED SystemEventCode = 0x02

	// The render target was reallocated.
	// Context usage: U32[0] = width, U32[1] = height.
	EVENT_CODE_TARGET_RESIZED SystemEventCode = 0x03

	// A frame was resolved and written to disk.
	// Context usage: Path = output image path, U32[0] = frame number.
	EVENT_CODE_FRAME_CAPTURED SystemEventCode = 0x04

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

const MAX_MESSAGE_CODES = 256

// Should return true if handled; handled events stop propagating.
type FnOnEvent func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	registered [MAX_MESSAGE_CODES][]*registeredEvent
}

var onceEvent sync.Once
var eventState *eventSystemState = nil

func EventInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{}
	})
	return true
}

func EventShutdown() error {
	if eventState == nil {
		return nil
	}
	for i := 0; i < MAX_MESSAGE_CODES; i++ {
		eventState.registered[i] = nil
	}
	return nil
}

// EventRegister subscribes a listener to a code. A duplicate listener on the
// same code is rejected and returns false.
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if eventState == nil {
		return false
	}
	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// EventUnregister removes a listener from a code. Returns false when no
// matching registration exists.
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	if eventState == nil {
		return false
	}
	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire delivers an event to every listener of the code, in registration
// order, until one reports it handled. Returns true when a listener handled
// the event.
func EventFire(code SystemEventCode, sender interface{}, context EventContext) bool {
	if eventState == nil {
		return false
	}
	for _, e := range eventState.registered[code] {
		if e.callback(code, sender, e.listener, context) {
			return true
		}
	}
	return false
}
