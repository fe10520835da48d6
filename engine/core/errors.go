package core

import (
	"errors"
)

var (
	ErrTargetResized  = errors.New("render target resized, frame dropped")
	ErrAssetNotFound  = errors.New("asset not found")
	ErrUnknownLoader  = errors.New("no loader registered for asset type")
	ErrManagerClosed  = errors.New("asset manager already closed")
	ErrEmptyDrawCall  = errors.New("draw call contains no geometry")
	ErrTextureUnbound = errors.New("draw call has no texture bound")
)
