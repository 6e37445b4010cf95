// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// interface a bui-specific name while keeping full compatibility with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// DefaultSurfaceFormat is the color target format used when the host has no
// surface attached.
const DefaultSurfaceFormat = gputypes.TextureFormatBGRA8Unorm

// StencilFormat is the format of the text stencil texture.
const StencilFormat = gputypes.TextureFormatDepth24PlusStencil8

// StencilTextureDescriptor returns the descriptor of the stencil texture the
// text programs draw into. The texture must match the surface size and is
// recreated on resize.
func StencilTextureDescriptor(width, height uint32) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label: "text_stencil",
		Size: gputypes.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        StencilFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	}
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for headless tools that only need pipeline descriptions.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports an unknown adapter.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// surfaceFormat returns the provider's surface format, falling back to
// DefaultSurfaceFormat when there is no provider or no surface.
func surfaceFormat(provider DeviceHandle) gputypes.TextureFormat {
	if provider == nil {
		return DefaultSurfaceFormat
	}
	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return DefaultSurfaceFormat
}
